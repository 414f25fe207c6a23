package handler

import (
	"github.com/MKhiriev/go-circuit-runner/internal/config"
	"github.com/MKhiriev/go-circuit-runner/internal/handler/grpc"
	"github.com/MKhiriev/go-circuit-runner/internal/handler/http"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for every configured address.
// health feeds GET /health and may be nil.
func NewHandlers(services *service.Services, health http.HealthReporter, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, health, cfg, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, cfg.Simulator.MaxQubits, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
