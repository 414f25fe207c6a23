// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package simulator

import (
	"context"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/MKhiriev/go-circuit-runner/internal/validators"
	"github.com/MKhiriev/go-circuit-runner/models"
)

const backendName = "statevector_simulator"

// statevectorBackend is immutable after GetDefaultBackend returns it.
type statevectorBackend struct {
	maxQubits   int
	parallelism int
	seed        uint64
	validator   validators.Validator
}

func (b *statevectorBackend) Name() string {
	return backendName
}

func (b *statevectorBackend) Method() models.SimulationMethod {
	return models.MethodStatevector
}

func (b *statevectorBackend) Execute(ctx context.Context, c models.Circuit, shots int) (outcomes models.Outcomes, err error) {
	if shots < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidShotCount, shots)
	}
	if err = b.validator.Validate(ctx, c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCircuit, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	defer func() {
		if r := recover(); r != nil {
			outcomes = nil
			err = fmt.Errorf("%w: engine panic: %v", ErrBackendUnavailable, r)
		}
	}()

	state := newStateVector(c.QubitCount)
	for _, op := range c.Operations {
		if op.Kind == models.OperationGate {
			state.apply(op.Gate, op.Qubit)
		}
	}

	dist := newDistribution(state.probabilities(), c.Measurements(), c.BitCount)

	outcomes, err = b.sample(ctx, dist, shots)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}
	return outcomes, nil
}

// stateVector holds 2^n amplitudes. Basis index i has qubit q set when
// bit q of i is 1.
type stateVector struct {
	amplitudes []complex128
}

func newStateVector(qubits int) *stateVector {
	amps := make([]complex128, 1<<qubits)
	amps[0] = 1
	return &stateVector{amplitudes: amps}
}

var (
	invSqrt2 = complex(1/math.Sqrt2, 0)
	phaseT   = cmplx.Exp(complex(0, math.Pi/4))
)

// apply runs a single-qubit gate in place. Each kernel visits the pairs
// (i, i|mask) where i has the target bit clear.
func (s *stateVector) apply(gate models.GateKind, qubit int) {
	mask := 1 << qubit
	amps := s.amplitudes

	switch gate {
	case models.GateHadamard:
		for i := range amps {
			if i&mask == 0 {
				j := i | mask
				a, b := amps[i], amps[j]
				amps[i] = (a + b) * invSqrt2
				amps[j] = (a - b) * invSqrt2
			}
		}
	case models.GatePauliX:
		for i := range amps {
			if i&mask == 0 {
				j := i | mask
				amps[i], amps[j] = amps[j], amps[i]
			}
		}
	case models.GatePauliY:
		for i := range amps {
			if i&mask == 0 {
				j := i | mask
				amps[i], amps[j] = -1i*amps[j], 1i*amps[i]
			}
		}
	case models.GatePauliZ:
		s.phase(mask, -1)
	case models.GatePhaseS:
		s.phase(mask, 1i)
	case models.GatePhaseT:
		s.phase(mask, phaseT)
	default:
		panic(fmt.Sprintf("unsupported gate %q", gate))
	}
}

// phase multiplies every amplitude with the target bit set by p.
func (s *stateVector) phase(mask int, p complex128) {
	for i := range s.amplitudes {
		if i&mask != 0 {
			s.amplitudes[i] *= p
		}
	}
}

func (s *stateVector) probabilities() []float64 {
	probs := make([]float64, len(s.amplitudes))
	for i, a := range s.amplitudes {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return probs
}
