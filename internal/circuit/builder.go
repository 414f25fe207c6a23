package circuit

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-circuit-runner/internal/validators"
	"github.com/MKhiriev/go-circuit-runner/models"
)

// Builder accumulates operations for a circuit with fixed register sizes.
// A Builder is not safe for concurrent use; the circuits it builds are.
type Builder struct {
	qubits     int
	bits       int
	operations []models.Operation
	validator  validators.Validator
}

// NewBuilder starts a circuit with the given number of qubits and classical
// bits.
func NewBuilder(qubits, bits int) *Builder {
	return &Builder{
		qubits:    qubits,
		bits:      bits,
		validator: validators.NewCircuitValidator(),
	}
}

// Gate appends a gate application on qubit q.
func (b *Builder) Gate(kind models.GateKind, q int) *Builder {
	b.operations = append(b.operations, models.Operation{
		Kind:  models.OperationGate,
		Gate:  kind,
		Qubit: q,
	})
	return b
}

// H appends a Hadamard gate on qubit q.
func (b *Builder) H(q int) *Builder {
	return b.Gate(models.GateHadamard, q)
}

// X appends a Pauli-X gate on qubit q.
func (b *Builder) X(q int) *Builder {
	return b.Gate(models.GatePauliX, q)
}

// Measure appends a measurement of qubit q into classical bit c.
func (b *Builder) Measure(q, c int) *Builder {
	b.operations = append(b.operations, models.Operation{
		Kind:  models.OperationMeasure,
		Qubit: q,
		Bit:   c,
	})
	return b
}

// Operations appends ops as-is, e.g. when they come from a request body.
func (b *Builder) Operations(ops ...models.Operation) *Builder {
	b.operations = append(b.operations, ops...)
	return b
}

// Build validates the accumulated operations and returns an independent
// circuit. Further calls on b do not affect the returned value.
func (b *Builder) Build() (models.Circuit, error) {
	c := models.Circuit{
		QubitCount: b.qubits,
		BitCount:   b.bits,
		Operations: b.operations,
	}.Clone()

	if err := b.validator.Validate(context.Background(), c); err != nil {
		return models.Circuit{}, fmt.Errorf("%w: %w", ErrInvalidCircuit, err)
	}

	return c, nil
}

// BuildSuperpositionCircuit returns the canonical one-qubit circuit:
// a Hadamard on qubit 0 followed by a measurement of qubit 0 into bit 0.
func BuildSuperpositionCircuit() models.Circuit {
	return models.Circuit{
		QubitCount: 1,
		BitCount:   1,
		Operations: []models.Operation{
			{Kind: models.OperationGate, Gate: models.GateHadamard, Qubit: 0},
			{Kind: models.OperationMeasure, Qubit: 0, Bit: 0},
		},
	}
}
