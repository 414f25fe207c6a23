package http

import (
	"time"

	"github.com/MKhiriev/go-circuit-runner/internal/config"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/internal/service"
	"github.com/MKhiriev/go-circuit-runner/internal/utils"
	"github.com/MKhiriev/go-circuit-runner/internal/validators"
	"github.com/MKhiriev/go-circuit-runner/models"
)

// HealthReporter exposes the most recent backend probe result.
type HealthReporter interface {
	Status() models.ProbeStatus
}

type Handler struct {
	services  *service.Services
	health    HealthReporter
	validator validators.Validator

	hashKey        string
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. health may be nil, in which case
// GET /health reports the backend identity only.
func NewHandler(services *service.Services, health HealthReporter, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		health:         health,
		validator:      validators.NewCircuitValidator(validators.WithMaxQubits(cfg.Simulator.MaxQubits)),
		hashKey:        cfg.App.HashKey,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
