package simulator

import (
	"context"

	"github.com/MKhiriev/go-circuit-runner/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_mock.go -package=mock

// Backend runs a circuit shot by shot.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type Backend interface {
	// Name identifies the backend in logs and responses.
	Name() string

	// Method reports the resolved simulation method.
	Method() models.SimulationMethod

	// Execute runs c shots times and returns exactly shots bitstrings of
	// length c.BitCount. It fails with ErrInvalidShotCount, ErrInvalidCircuit
	// or ErrBackendUnavailable and never returns a partial multiset.
	Execute(ctx context.Context, c models.Circuit, shots int) (models.Outcomes, error)
}
