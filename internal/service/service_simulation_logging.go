package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/models"
	"github.com/rs/zerolog"
)

type simulationLoggingWrapper struct {
	logger *logger.Logger
}

// NewSimulationLoggingWrapper returns a SimulationServiceWrapper that logs
// each simulation with its run ID, shot count and duration. The logger
// stored in ctx (with the request trace ID) is preferred over the fallback.
func NewSimulationLoggingWrapper(logger *logger.Logger) SimulationServiceWrapper {
	return &simulationLoggingWrapper{logger: logger}
}

func (w *simulationLoggingWrapper) Wrap(next SimulationService) SimulationService {
	return &loggingSimulationService{next: next, logger: w.logger}
}

type loggingSimulationService struct {
	next   SimulationService
	logger *logger.Logger
}

func (l *loggingSimulationService) Simulate(ctx context.Context, c models.Circuit, shots int) (models.SimulationResult, error) {
	start := time.Now()
	result, err := l.next.Simulate(ctx, c, shots)
	l.log(ctx, "simulate", shots, start, result, err)
	return result, err
}

func (l *loggingSimulationService) RunSuperposition(ctx context.Context, shots int) (models.SimulationResult, error) {
	start := time.Now()
	result, err := l.next.RunSuperposition(ctx, shots)
	l.log(ctx, "run superposition", shots, start, result, err)
	return result, err
}

func (l *loggingSimulationService) CheckMethod(method string) error {
	return l.next.CheckMethod(method)
}

func (l *loggingSimulationService) DefaultShots() int {
	return l.next.DefaultShots()
}

func (l *loggingSimulationService) log(ctx context.Context, op string, shots int, start time.Time, result models.SimulationResult, err error) {
	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = l.logger
	}

	if err != nil {
		log.Err(err).
			Str("op", op).
			Int("shots", shots).
			Dur("duration", time.Since(start)).
			Msg("simulation failed")
		return
	}

	log.Info().
		Str("op", op).
		Str("run_id", result.RunID).
		Str("backend", result.Backend).
		Int("shots", result.ShotsRun).
		Int("distinct_outcomes", len(result.Counts)).
		Dur("duration", time.Since(start)).
		Msg("simulation finished")
}
