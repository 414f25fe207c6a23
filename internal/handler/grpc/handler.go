package grpc

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-circuit-runner/internal/circuit"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/internal/service"
	"github.com/MKhiriev/go-circuit-runner/internal/validators"
	"github.com/MKhiriev/go-circuit-runner/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler.
//
// It serves the circuit runner service and the standard gRPC health service.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services  *service.Services
	validator validators.Validator
	health    *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Health starts as NOT_SERVING until the
// first probe result arrives through UpdateHealth. maxQubits caps the
// register size of submitted circuits; zero keeps the validator default.
func NewHandler(services *service.Services, maxQubits int, logger *logger.Logger) *Handler {
	h := &Handler{
		services:  services,
		validator: validators.NewCircuitValidator(validators.WithMaxQubits(maxQubits)),
		health:    health.NewServer(),
		logger:    logger,
	}
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the circuit runner and health services to s.
func (h *Handler) Register(s *grpc.Server) {
	s.RegisterService(&ServiceDesc, h)
	healthpb.RegisterHealthServer(s, h.health)
}

// UpdateHealth publishes a probe result to the health service.
func (h *Handler) UpdateHealth(probe models.ProbeStatus) {
	servingStatus := healthpb.HealthCheckResponse_NOT_SERVING
	if probe.Healthy {
		servingStatus = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(ServiceName, servingStatus)
	h.health.SetServingStatus("", servingStatus)
}

// Shutdown marks every service NOT_SERVING so clients stop routing here.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// RunCircuit implements CircuitRunnerServer.
func (h *Handler) RunCircuit(ctx context.Context, req *RunCircuitRequest) (*models.RunCircuitResponse, error) {
	simulation := h.services.SimulationService

	if err := simulation.CheckMethod(req.Method); err != nil {
		return nil, toStatus(err)
	}

	shots := req.Shots
	if shots == 0 {
		shots = simulation.DefaultShots()
	}

	var (
		result models.SimulationResult
		err    error
	)
	if req.Circuit == nil {
		result, err = simulation.RunSuperposition(ctx, shots)
	} else {
		if err = h.validator.Validate(ctx, *req.Circuit); err != nil {
			return nil, toStatus(fmt.Errorf("%w: %w", circuit.ErrInvalidCircuit, err))
		}
		result, err = simulation.Simulate(ctx, *req.Circuit, shots)
	}
	if err != nil {
		return nil, toStatus(err)
	}

	response := models.NewRunCircuitResponse(result)
	if req.Circuit != nil {
		response.QASM = result.QASM
	}
	return &response, nil
}
