// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the structural invariants of a circuit and of
// the request that carries it.
//
// The circuit builder, the simulator backend and the HTTP and gRPC handlers
// all share one CircuitValidator, so a circuit is checked identically no
// matter where it enters the pipeline. Validate can be scoped to a subset of
// fields (FieldQubitCount, FieldShots, ...) when a caller only owns part of
// the input.
package validators

import "context"

// Validator checks a value and returns the first violated invariant.
type Validator interface {
	// Validate checks v, limited to fields when any are given.
	Validate(ctx context.Context, v any, fields ...string) error
}
