// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the circuit runner
// server.
//
// The primary abstraction is [CircuitRunnerAdapter], which decouples the
// terminal UI from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are decoded into the server's structured error body and
// mapped to the sentinel values in errors.go, so callers can use [errors.Is]
// (e.g. [ErrInvalidRequest] for 400, [ErrServiceUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-circuit-runner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CircuitRunnerAdapter defines transport-agnostic communication with the
// circuit runner server.
type CircuitRunnerAdapter interface {
	// RunCircuit asks the server to run the superposition circuit for shots
	// trials. A non-positive shots lets the server pick its default.
	RunCircuit(ctx context.Context, shots int) (models.RunCircuitResponse, error)

	// SubmitCircuit sends an arbitrary circuit for execution.
	SubmitCircuit(ctx context.Context, req models.RunCircuitRequest) (models.RunCircuitResponse, error)

	// GetServerVersion returns the server's version string.
	GetServerVersion(ctx context.Context) (string, error)

	// GetHealth returns the result of the server's latest backend probe.
	GetHealth(ctx context.Context) (models.HealthResponse, error)
}
