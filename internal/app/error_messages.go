// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// circuit runner transport handlers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies and gRPC statuses when the underlying error text must not
// reach the caller. Keeping them in one place ensures both transports use
// the same wording.
package app

const (
	// MsgBackendUnavailable is returned when the simulator backend failed,
	// was cancelled or exceeded its limits.
	MsgBackendUnavailable = "simulator backend is unavailable, retry later"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal error"
)
