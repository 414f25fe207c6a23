package http

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-circuit-runner/internal/circuit"
	"github.com/MKhiriev/go-circuit-runner/internal/config"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/internal/service"
	"github.com/MKhiriev/go-circuit-runner/models"
)

// ---- Mock: SimulationService ----

type stubSimulationService struct {
	result       models.SimulationResult
	err          error
	defaultShots int

	calls      int
	gotShots   int
	gotCircuit models.Circuit
}

func (s *stubSimulationService) Simulate(_ context.Context, c models.Circuit, shots int) (models.SimulationResult, error) {
	s.calls++
	s.gotCircuit = c
	s.gotShots = shots
	if s.err != nil {
		return models.SimulationResult{}, s.err
	}
	result := s.result
	result.QASM = circuit.QASM(c)
	return result, nil
}

func (s *stubSimulationService) RunSuperposition(ctx context.Context, shots int) (models.SimulationResult, error) {
	return s.Simulate(ctx, circuit.BuildSuperpositionCircuit(), shots)
}

func (s *stubSimulationService) CheckMethod(method string) error {
	switch method {
	case "", "default", "statevector":
		return nil
	default:
		return fmt.Errorf("%w: %q", service.ErrUnsupportedMethod, method)
	}
}

func (s *stubSimulationService) DefaultShots() int {
	return s.defaultShots
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetAppInfo(_ context.Context) models.AppInfo {
	return models.AppInfo{
		Version: m.version,
		Backend: "statevector_simulator",
		Method:  models.MethodStatevector,
	}
}

// ---- Mock: HealthReporter ----

type stubHealth struct {
	status models.ProbeStatus
}

func (s stubHealth) Status() models.ProbeStatus {
	return s.status
}

// ---- Builders ----

func successResult() models.SimulationResult {
	return models.SimulationResult{
		RunID:              "run-1",
		Backend:            "statevector_simulator",
		Method:             models.MethodStatevector,
		ShotsRun:           1024,
		CircuitDescription: circuit.Describe(circuit.BuildSuperpositionCircuit()),
		Counts:             models.Counts{"0": 509, "1": 515},
	}
}

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func newHandlerWithStubs(sim service.SimulationService, health HealthReporter, cfg config.StructuredConfig) *Handler {
	return NewHandler(&service.Services{
		AppInfoService:    &mockAppInfoService{version: "test-version"},
		SimulationService: sim,
	}, health, cfg, logger.Nop())
}
