package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-circuit-runner/internal/adapter"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
)

const startupCheckTimeout = 5 * time.Second

var ErrNilDependency = errors.New("client: nil dependency")

type App struct {
	adapter adapter.CircuitRunnerAdapter
	ui      UI
	logger  *logger.Logger
}

func NewApp(adapter adapter.CircuitRunnerAdapter, ui UI, logger *logger.Logger) (*App, error) {
	if adapter == nil || ui == nil {
		return nil, ErrNilDependency
	}
	return &App{adapter: adapter, ui: ui, logger: logger}, nil
}

// Run logs the server health and then runs the UI. An unreachable or
// degraded server is not fatal: the UI reports errors per run.
func (a *App) Run(ctx context.Context) error {
	checkCtx, cancel := context.WithTimeout(ctx, startupCheckTimeout)
	health, err := a.adapter.GetHealth(checkCtx)
	cancel()

	if err != nil {
		a.logger.Warn().Err(err).Str("status", health.Status).Msg("server health check failed")
	} else {
		a.logger.Info().
			Str("status", health.Status).
			Str("backend", health.Backend).
			Str("method", health.Method).
			Msg("server is reachable")
	}

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
