package simulator

import (
	"fmt"

	"github.com/MKhiriev/go-circuit-runner/internal/config"
	"github.com/MKhiriev/go-circuit-runner/internal/validators"
	"github.com/MKhiriev/go-circuit-runner/models"
)

const (
	// engineQubitLimit bounds MaxQubits: 2^24 complex128 amplitudes is
	// 256 MiB per execution.
	engineQubitLimit = 24

	defaultMaxQubits = 16
)

// GetDefaultBackend returns the backend described by cfg. It is the only
// supported way to acquire a Backend.
//
// An empty or "default" method resolves to the statevector method. Any other
// unknown method, including legacy backend names, is rejected with
// ErrUnknownSimulationMethod instead of being mapped to something that might
// behave differently.
func GetDefaultBackend(cfg config.Simulator) (Backend, error) {
	method := models.SimulationMethod(cfg.Method).Resolve()
	if method != models.MethodStatevector {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSimulationMethod, cfg.Method)
	}

	maxQubits := cfg.MaxQubits
	if maxQubits == 0 {
		maxQubits = defaultMaxQubits
	}
	if maxQubits < 0 || maxQubits > engineQubitLimit {
		return nil, fmt.Errorf("%w: max qubits %d outside 1..%d",
			ErrBackendUnavailable, maxQubits, engineQubitLimit)
	}

	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = 1
	}

	return &statevectorBackend{
		maxQubits:   maxQubits,
		parallelism: parallelism,
		seed:        cfg.Seed,
		validator:   validators.NewCircuitValidator(validators.WithMaxQubits(maxQubits)),
	}, nil
}
