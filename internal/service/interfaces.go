package service

import (
	"context"

	"github.com/MKhiriev/go-circuit-runner/models"
)

// SimulationService runs circuits end to end: execute on the backend, then
// aggregate the outcomes into counts.
type SimulationService interface {
	// Simulate runs c for shots trials. It is the composition
	// Aggregate(backend.Execute(c, shots)) plus the descriptive fields of the
	// result. Nothing is returned on failure.
	Simulate(ctx context.Context, c models.Circuit, shots int) (models.SimulationResult, error)

	// RunSuperposition builds the one-qubit Hadamard circuit and simulates it.
	RunSuperposition(ctx context.Context, shots int) (models.SimulationResult, error)

	// CheckMethod accepts an empty method or one that resolves to the
	// backend's method, and rejects anything else with ErrUnsupportedMethod.
	CheckMethod(method string) error

	// DefaultShots is the shot count used when a caller does not pick one.
	DefaultShots() int
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// SimulationServiceWrapper defines middleware composition for SimulationService.
// Implementations wrap an existing SimulationService to add behavior such as
// logging.
type SimulationServiceWrapper interface {
	Wrap(SimulationService) SimulationService // returns a decorated SimulationService applying additional behavior
}
