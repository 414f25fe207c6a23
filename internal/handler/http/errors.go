// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request decoding errors. Callers can match against them with [errors.Is].
var (
	// ErrInvalidShotsParam is returned when the shots query parameter is not
	// an integer.
	ErrInvalidShotsParam = errors.New("shots must be an integer")

	// ErrInvalidRequestBody is returned when a submitted circuit cannot be
	// decoded as JSON.
	ErrInvalidRequestBody = errors.New("request body is not a valid circuit")
)
