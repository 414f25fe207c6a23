package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-circuit-runner/internal/adapter"
	"github.com/MKhiriev/go-circuit-runner/internal/config"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal front end of the circuit runner client.
type TUI struct {
	adapter   adapter.CircuitRunnerAdapter
	shots     int
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(adapter adapter.CircuitRunnerAdapter, cfg config.ClientApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if adapter == nil {
		return nil, fmt.Errorf("tui: nil adapter")
	}

	shots := cfg.DefaultShots
	if shots < minShots {
		shots = config.DefaultShots
	}

	return &TUI{adapter: adapter, shots: shots, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newRunnerModel(ctx, t.adapter, t.shots, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(runnerModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	t.logger.Debug().Int("runs", result.runs).Msg("tui closed")

	return nil
}
