// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the configuration
// has neither an HTTP nor a gRPC address, so the circuit runner would have
// no way to accept a request.
var errNoHandlersAreCreated = errors.New("no transport address configured")
