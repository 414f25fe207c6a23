package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-circuit-runner/models"
)

// Field name constants used to restrict circuit validation to a subset of
// checks.
const (
	// FieldQubitCount targets Circuit.QubitCount.
	FieldQubitCount = "qubit_count"

	// FieldBitCount targets Circuit.BitCount.
	FieldBitCount = "bit_count"

	// FieldOperations targets the operation list: kinds, gates, index bounds
	// and measurement ordering.
	FieldOperations = "operations"

	// FieldMeasurements requires at least one measurement, without which a
	// run would only ever produce the all-zero bitstring.
	FieldMeasurements = "measurements"

	// FieldShots targets RunCircuitRequest.Shots.
	FieldShots = "shots"
)

// Default register limits. DefaultMaxQubits matches the largest state
// vector the simulator engine will allocate.
const (
	DefaultMaxQubits = 24
	DefaultMaxBits   = 64
)

// CircuitValidator implements the Validator interface for models.Circuit,
// models.Operation and models.RunCircuitRequest.
type CircuitValidator struct {
	maxQubits int
	maxBits   int
}

// Option customizes a CircuitValidator.
type Option func(*CircuitValidator)

// WithMaxQubits caps Circuit.QubitCount. Non-positive values keep the default.
func WithMaxQubits(n int) Option {
	return func(v *CircuitValidator) {
		if n > 0 {
			v.maxQubits = n
		}
	}
}

// WithMaxBits caps Circuit.BitCount. Non-positive values keep the default.
func WithMaxBits(n int) Option {
	return func(v *CircuitValidator) {
		if n > 0 {
			v.maxBits = n
		}
	}
}

// NewCircuitValidator constructs a new CircuitValidator and returns it as
// the Validator interface.
func NewCircuitValidator(opts ...Option) Validator {
	v := &CircuitValidator{
		maxQubits: DefaultMaxQubits,
		maxBits:   DefaultMaxBits,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of every supported model are accepted; anything else yields
// ErrUnsupportedType.
//
// With no fields given a circuit is checked for counts, operations and
// measurements.
func (v *CircuitValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Circuit:
		return v.validateCircuit(ctx, value, fields...)
	case *models.Circuit:
		return v.validateCircuit(ctx, *value, fields...)

	case models.RunCircuitRequest:
		return v.validateRunCircuitRequest(ctx, value, fields...)
	case *models.RunCircuitRequest:
		return v.validateRunCircuitRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CircuitValidator) validateCircuit(_ context.Context, c models.Circuit, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQubitCount, FieldBitCount, FieldOperations, FieldMeasurements}
	}

	for _, f := range fields {
		switch f {
		case FieldQubitCount:
			if c.QubitCount <= 0 {
				return ErrInvalidQubitCount
			}
			if c.QubitCount > v.maxQubits {
				return fmt.Errorf("%w: %d of %d", ErrTooManyQubits, c.QubitCount, v.maxQubits)
			}
		case FieldBitCount:
			if c.BitCount <= 0 {
				return ErrInvalidBitCount
			}
			if c.BitCount > v.maxBits {
				return fmt.Errorf("%w: %d of %d", ErrTooManyBits, c.BitCount, v.maxBits)
			}
		case FieldOperations:
			if err := validateOperations(c); err != nil {
				return err
			}
		case FieldMeasurements:
			if len(c.Measurements()) == 0 {
				return ErrNoMeasurements
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CircuitValidator) validateRunCircuitRequest(ctx context.Context, req models.RunCircuitRequest, fields ...string) error {
	circuitFields := make([]string, 0, len(fields))
	checkShots := len(fields) == 0
	for _, f := range fields {
		if f == FieldShots {
			checkShots = true
			continue
		}
		circuitFields = append(circuitFields, f)
	}

	if checkShots && req.Shots < 0 {
		return ErrInvalidShots
	}

	if len(fields) > 0 && len(circuitFields) == 0 {
		return nil
	}

	return v.validateCircuit(ctx, req.Circuit, circuitFields...)
}

// validateOperations walks the operation list once, tracking which qubits
// have already been measured. Allocation is bounded by the operation count,
// never by the declared register sizes.
func validateOperations(c models.Circuit) error {
	if len(c.Operations) == 0 {
		return ErrEmptyOperations
	}

	measured := make(map[int]bool, len(c.Operations))
	for i, op := range c.Operations {
		if op.Qubit < 0 || op.Qubit >= c.QubitCount {
			return fmt.Errorf("operation %d: %w: qubit %d of %d", i, ErrQubitOutOfRange, op.Qubit, c.QubitCount)
		}

		switch op.Kind {
		case models.OperationGate:
			if !slices.Contains(models.SupportedGates, op.Gate) {
				return fmt.Errorf("operation %d: %w: %q", i, ErrUnknownGate, op.Gate)
			}
			if measured[op.Qubit] {
				return fmt.Errorf("operation %d: %w: qubit %d", i, ErrGateAfterMeasurement, op.Qubit)
			}
		case models.OperationMeasure:
			if op.Bit < 0 || op.Bit >= c.BitCount {
				return fmt.Errorf("operation %d: %w: bit %d of %d", i, ErrBitOutOfRange, op.Bit, c.BitCount)
			}
			if measured[op.Qubit] {
				return fmt.Errorf("operation %d: %w: qubit %d", i, ErrQubitMeasuredTwice, op.Qubit)
			}
			measured[op.Qubit] = true
		default:
			return fmt.Errorf("operation %d: %w: %q", i, ErrUnknownOperation, op.Kind)
		}
	}

	return nil
}
