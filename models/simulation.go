// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SimulationMethod selects the strategy a simulator backend uses to evaluate
// a circuit.
type SimulationMethod string

const (
	// MethodDefault is the generic sampling method. It resolves to
	// MethodStatevector.
	MethodDefault SimulationMethod = "default"

	// MethodStatevector evolves the full amplitude vector and samples each
	// shot from the squared amplitudes.
	MethodStatevector SimulationMethod = "statevector"
)

// Resolve maps aliases to the concrete method they stand for. The empty
// method is treated as MethodDefault.
func (m SimulationMethod) Resolve() SimulationMethod {
	switch m {
	case "", MethodDefault:
		return MethodStatevector
	default:
		return m
	}
}

// SimulationResult is the outcome of a single pipeline invocation.
type SimulationResult struct {
	// RunID identifies this invocation in logs and responses.
	RunID string

	// Backend is the name of the backend that executed the circuit.
	Backend string

	// Method is the resolved simulation method.
	Method SimulationMethod

	// ShotsRun is the number of shots executed; equals Counts.Total().
	ShotsRun int

	// CircuitDescription is a human-readable summary of the circuit.
	CircuitDescription string

	// QASM is the OpenQASM 2.0 rendering of the circuit.
	QASM string

	// Counts is the aggregated outcome histogram.
	Counts Counts
}
