package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-circuit-runner/internal/config"
	"github.com/MKhiriev/go-circuit-runner/internal/handler"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/internal/server"
	"github.com/MKhiriev/go-circuit-runner/internal/service"
	"github.com/MKhiriev/go-circuit-runner/internal/simulator"
	"github.com/MKhiriev/go-circuit-runner/internal/workers"
	"github.com/MKhiriev/go-circuit-runner/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("circuit-runner-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// the one backend instance for the whole process
	backend, err := simulator.GetDefaultBackend(cfg.Simulator)
	if err != nil {
		log.Fatal().Err(err).Msg("error acquiring simulator backend")
	}
	log.Info().
		Str("backend", backend.Name()).
		Str("method", string(backend.Method())).
		Msg("simulator backend ready")

	services, err := service.NewServices(backend, *cfg, log, service.NewSimulationLoggingWrapper(log))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	probe := workers.NewBackendProbe(services.SimulationService, cfg.Workers, log)

	handlers, err := handler.NewHandlers(services, probe, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}
	if handlers.GRPC != nil {
		probe.Subscribe(handlers.GRPC.UpdateHealth)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	jobs := workers.NewWorkers(probe)
	jobs.Start(context.Background())
	defer jobs.Stop()

	srv.RunServer()
}
