package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-circuit-runner/internal/adapter"
	"github.com/MKhiriev/go-circuit-runner/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minShots = 1
	maxShots = 1 << 20
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// runnerModel is the single screen of the client: a shot counter, the last
// run's histogram and a status line.
type runnerModel struct {
	ctx     context.Context
	adapter adapter.CircuitRunnerAdapter

	shots   int
	spinner spinner.Model
	running bool
	runs    int

	result        *models.RunCircuitResponse
	err           error
	status        string
	serverVersion string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	width         int
}

// newRunnerModel returns a model that starts its first run from Init.
func newRunnerModel(ctx context.Context, adapter adapter.CircuitRunnerAdapter, shots int, buildInfo models.AppBuildInfo) runnerModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return runnerModel{
		ctx:       ctx,
		adapter:   adapter,
		shots:     min(max(shots, minShots), maxShots),
		spinner:   s,
		running:   true,
		buildInfo: buildInfo,
	}
}

func (m runnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdVersion(), m.cmdRun())
}

func (m runnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case runDoneMsg:
		m.running = false
		m.runs++
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		resp := msg.resp
		m.result = &resp
		m.err = nil
		return m, nil
	case versionMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Copied!"
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m runnerModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.run):
		if m.running {
			return m, nil
		}
		m.running = true
		return m, tea.Batch(m.spinner.Tick, m.cmdRun())
	case key.Matches(msg, keys.more):
		m.shots = min(m.shots*2, maxShots)
	case key.Matches(msg, keys.less):
		m.shots = max(m.shots/2, minShots)
	case key.Matches(msg, keys.copy):
		if m.result == nil {
			m.status = "Nothing to copy yet"
			return m, cmdClearStatus()
		}
		return m, cmdCopyToClipboard(m.result.MeasurementCounts)
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m runnerModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Server: %s\n", valueOrNA(m.serverVersion))
	fmt.Fprintf(&b, "Shots:  %d\n\n", m.shots)

	switch {
	case m.running:
		b.WriteString(m.spinner.View())
		b.WriteString(" Running circuit...\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + humanizeServerUnavailableError(m.err)))
		b.WriteString("\n")
	}

	if m.result != nil {
		if m.running || m.err != nil {
			b.WriteString("\nPrevious run:\n")
		}
		b.WriteString(fitText(m.result.CircuitDescription, max(m.width-4, 0)))
		b.WriteString("\n")
		fmt.Fprintf(&b, "Run %s: %d shots on %s\n\n", valueOrNA(m.result.RunID), m.result.ShotsRun, valueOrNA(string(m.result.Method)))
		b.WriteString(renderHistogram(m.result.MeasurementCounts, barWidthFor(m.width)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage("CIRCUIT RUNNER", b.String(), hotKeysHelp)
}

func (m runnerModel) cmdRun() tea.Cmd {
	ctx := m.ctx
	a := m.adapter
	shots := m.shots
	return func() tea.Msg {
		resp, err := a.RunCircuit(ctx, shots)
		return runDoneMsg{resp: resp, err: err}
	}
}

func (m runnerModel) cmdVersion() tea.Cmd {
	ctx := m.ctx
	a := m.adapter
	return func() tea.Msg {
		version, err := a.GetServerVersion(ctx)
		return versionMsg{version: version, err: err}
	}
}

func cmdCopyToClipboard(counts models.Counts) tea.Cmd {
	return func() tea.Msg {
		text, err := json.Marshal(counts)
		if err != nil {
			return copiedMsg{err: err}
		}
		if err = writeClipboard(string(text)); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
