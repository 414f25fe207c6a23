package simulator

import (
	"errors"

	"github.com/MKhiriev/go-circuit-runner/internal/circuit"
)

var (
	// ErrInvalidShotCount is returned when fewer than one shot is requested.
	ErrInvalidShotCount = errors.New("shot count must be at least 1")

	// ErrInvalidCircuit is the same sentinel the circuit builder uses, so a
	// caller can match either source with a single errors.Is.
	ErrInvalidCircuit = circuit.ErrInvalidCircuit

	// ErrBackendUnavailable covers every failure of the engine itself:
	// limits exceeded, initialisation failure, a crash or cancellation
	// mid-execution.
	ErrBackendUnavailable = errors.New("simulator backend unavailable")

	// ErrUnknownSimulationMethod is returned by GetDefaultBackend for a
	// method it does not implement.
	ErrUnknownSimulationMethod = errors.New("unknown simulation method")
)
