package service

import (
	"github.com/MKhiriev/go-circuit-runner/internal/config"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/internal/simulator"
)

type Services struct {
	AppInfoService    AppInfoService
	SimulationService SimulationService
}

// NewServices builds every service around the one backend created at
// startup. The simulation service is decorated with the wrappers in order,
// so the first wrapper is the outermost.
func NewServices(backend simulator.Backend, cfg config.StructuredConfig, logger *logger.Logger, wrappers ...SimulationServiceWrapper) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, backend, logger)
	if err != nil {
		return nil, err
	}

	simulation, err := NewSimulationService(backend, cfg.Simulator, logger)
	if err != nil {
		return nil, err
	}
	for i := len(wrappers) - 1; i >= 0; i-- {
		simulation = wrappers[i].Wrap(simulation)
	}

	return &Services{
		AppInfoService:    appInfo,
		SimulationService: simulation,
	}, nil
}
