package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-circuit-runner/internal/circuit"
	"github.com/MKhiriev/go-circuit-runner/internal/config"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/internal/simulator"
	"github.com/MKhiriev/go-circuit-runner/internal/utils"
	"github.com/MKhiriev/go-circuit-runner/models"
)

type simulationService struct {
	backend      simulator.Backend
	defaultShots int
	maxShots     int
	ids          *utils.UUIDGenerator

	logger *logger.Logger
}

// NewSimulationService returns a SimulationService running every circuit on
// backend. The backend is shared and never replaced.
func NewSimulationService(backend simulator.Backend, cfg config.Simulator, logger *logger.Logger) (SimulationService, error) {
	if backend == nil {
		return nil, ErrNoBackend
	}

	return &simulationService{
		backend:      backend,
		defaultShots: cfg.DefaultShots,
		maxShots:     cfg.MaxShots,
		ids:          utils.NewUUIDGenerator(),
		logger:       logger,
	}, nil
}

func (s *simulationService) Simulate(ctx context.Context, c models.Circuit, shots int) (models.SimulationResult, error) {
	if shots < 1 {
		return models.SimulationResult{}, fmt.Errorf("%w: got %d", ErrInvalidShotCount, shots)
	}
	if s.maxShots > 0 && shots > s.maxShots {
		return models.SimulationResult{}, fmt.Errorf("%w: got %d, max %d", ErrShotCountTooLarge, shots, s.maxShots)
	}

	outcomes, err := s.backend.Execute(ctx, c, shots)
	if err != nil {
		return models.SimulationResult{}, fmt.Errorf("execute on %s: %w", s.backend.Name(), err)
	}
	if len(outcomes) != shots {
		return models.SimulationResult{}, fmt.Errorf("%w: backend returned %d outcomes for %d shots",
			ErrInvalidOutcome, len(outcomes), shots)
	}

	counts, err := Aggregate(outcomes, c.BitCount)
	if err != nil {
		return models.SimulationResult{}, err
	}

	return models.SimulationResult{
		RunID:              s.ids.Generate(),
		Backend:            s.backend.Name(),
		Method:             s.backend.Method(),
		ShotsRun:           counts.Total(),
		CircuitDescription: circuit.Describe(c),
		QASM:               circuit.QASM(c),
		Counts:             counts,
	}, nil
}

func (s *simulationService) RunSuperposition(ctx context.Context, shots int) (models.SimulationResult, error) {
	return s.Simulate(ctx, circuit.BuildSuperpositionCircuit(), shots)
}

func (s *simulationService) CheckMethod(method string) error {
	if method == "" {
		return nil
	}
	if models.SimulationMethod(method).Resolve() != s.backend.Method() {
		return fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}
	return nil
}

func (s *simulationService) DefaultShots() int {
	return s.defaultShots
}
