// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means neither an HTTP nor a gRPC address was
	// configured, or their handlers are missing.
	errNoServersAreCreated = errors.New("no servers are created")

	// errListen wraps a failure to bind the gRPC listener at startup.
	errListen = errors.New("cannot bind listener")
)
