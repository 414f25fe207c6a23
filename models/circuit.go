// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OperationKind distinguishes coherent gate applications from measurements
// inside a [Circuit].
type OperationKind string

const (
	// OperationGate applies a single-qubit unitary gate to Operation.Qubit.
	OperationGate OperationKind = "gate"

	// OperationMeasure projects Operation.Qubit onto the computational basis
	// and stores the outcome in classical bit Operation.Bit. A measurement is
	// terminal for its qubit.
	OperationMeasure OperationKind = "measure"
)

// GateKind names a supported single-qubit gate.
type GateKind string

const (
	GateHadamard GateKind = "h"
	GatePauliX   GateKind = "x"
	GatePauliY   GateKind = "y"
	GatePauliZ   GateKind = "z"
	GatePhaseS   GateKind = "s"
	GatePhaseT   GateKind = "t"
)

// SupportedGates is the exhaustive list of gates accepted by the circuit
// validator and the simulator backend.
var SupportedGates = []GateKind{
	GateHadamard,
	GatePauliX,
	GatePauliY,
	GatePauliZ,
	GatePhaseS,
	GatePhaseT,
}

// Operation is a single step of a [Circuit].
//
// For OperationGate only Gate and Qubit are meaningful; for OperationMeasure
// only Qubit and Bit are.
type Operation struct {
	Kind  OperationKind `json:"kind"`
	Gate  GateKind      `json:"gate,omitempty"`
	Qubit int           `json:"qubit"`
	Bit   int           `json:"bit"`
}

// Circuit is an immutable description of a quantum circuit: the number of
// qubits and classical bits plus the ordered list of operations applied to
// them.
//
// A Circuit is created per invocation and never shared mutably. Callers that
// need to change a circuit build a new one through the circuit builder.
type Circuit struct {
	QubitCount int         `json:"qubit_count"`
	BitCount   int         `json:"bit_count"`
	Operations []Operation `json:"operations"`
}

// Clone returns a deep copy of c so that the operations slice can be handed
// to another goroutine without aliasing.
func (c Circuit) Clone() Circuit {
	ops := make([]Operation, len(c.Operations))
	copy(ops, c.Operations)

	return Circuit{
		QubitCount: c.QubitCount,
		BitCount:   c.BitCount,
		Operations: ops,
	}
}

// Measurements returns the measurement operations of c in circuit order.
func (c Circuit) Measurements() []Operation {
	var measurements []Operation
	for _, op := range c.Operations {
		if op.Kind == OperationMeasure {
			measurements = append(measurements, op)
		}
	}
	return measurements
}
