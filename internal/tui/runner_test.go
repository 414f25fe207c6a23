package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-circuit-runner/internal/adapter"
	"github.com/MKhiriev/go-circuit-runner/internal/mock"
	"github.com/MKhiriev/go-circuit-runner/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleResult() models.RunCircuitResponse {
	return models.RunCircuitResponse{
		Status:             models.StatusSuccess,
		RunID:              "run-42",
		Method:             models.MethodStatevector,
		ShotsRun:           1024,
		CircuitDescription: "1 qubit, 1 classical bit: h q[0]; measure q[0] -> c[0]",
		MeasurementCounts:  models.Counts{"0": 512, "1": 512},
	}
}

func newTestModel(t *testing.T) (runnerModel, *mock.MockCircuitRunnerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	a := mock.NewMockCircuitRunnerAdapter(ctrl)
	return newRunnerModel(context.Background(), a, 1024, models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123")), a
}

func update(t *testing.T, m runnerModel, msg tea.Msg) (runnerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	rm, ok := next.(runnerModel)
	require.True(t, ok)
	return rm, cmd
}

func TestNewRunnerModel_ClampsShots(t *testing.T) {
	assert.Equal(t, minShots, newRunnerModel(context.Background(), nil, 0, models.AppBuildInfo{}).shots)
	assert.Equal(t, maxShots, newRunnerModel(context.Background(), nil, maxShots*4, models.AppBuildInfo{}).shots)
}

func TestRunnerModel_Commands(t *testing.T) {
	m, a := newTestModel(t)
	a.EXPECT().RunCircuit(gomock.Any(), 1024).Return(sampleResult(), nil)
	a.EXPECT().GetServerVersion(gomock.Any()).Return("1.2.3", nil)

	run := m.cmdRun()()
	assert.Equal(t, runDoneMsg{resp: sampleResult()}, run)

	version := m.cmdVersion()()
	assert.Equal(t, versionMsg{version: "1.2.3"}, version)

	assert.NotNil(t, m.Init())
}

func TestRunnerModel_RunDone(t *testing.T) {
	m, _ := newTestModel(t)
	require.True(t, m.running)

	m, _ = update(t, m, runDoneMsg{resp: sampleResult()})

	assert.False(t, m.running)
	assert.Equal(t, 1, m.runs)
	require.NotNil(t, m.result)
	assert.Equal(t, "run-42", m.result.RunID)

	view := m.View()
	assert.Contains(t, view, "run-42")
	assert.Contains(t, view, "512 (50.0%)")
	assert.Contains(t, view, "h q[0]")
}

func TestRunnerModel_RunFailedKeepsPreviousResult(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, runDoneMsg{resp: sampleResult()})

	m.running = true
	m, _ = update(t, m, runDoneMsg{err: adapter.ErrServiceUnavailable})

	assert.ErrorIs(t, m.err, adapter.ErrServiceUnavailable)
	require.NotNil(t, m.result)

	view := m.View()
	assert.Contains(t, view, "Simulator backend is unavailable")
	assert.Contains(t, view, "Previous run:")
}

func TestRunnerModel_RunKey(t *testing.T) {
	m, a := newTestModel(t)
	m.running = false

	m, cmd := update(t, m, runeKey("r"))
	assert.True(t, m.running)
	assert.NotNil(t, cmd)

	// a second press while running is ignored
	_, cmd = update(t, m, runeKey("r"))
	assert.Nil(t, cmd)

	a.EXPECT().RunCircuit(gomock.Any(), 1024).Return(models.RunCircuitResponse{}, errors.New("dial tcp: connection refused"))
	msg := m.cmdRun()()
	m, _ = update(t, m, msg)
	assert.Contains(t, m.View(), "No network or server unavailable")
}

func TestRunnerModel_ShotKeys(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, runeKey("+"))
	assert.Equal(t, 2048, m.shots)

	m, _ = update(t, m, runeKey("-"))
	m, _ = update(t, m, runeKey("-"))
	assert.Equal(t, 512, m.shots)

	m.shots = 1
	m, _ = update(t, m, runeKey("-"))
	assert.Equal(t, 1, m.shots)

	m.shots = maxShots
	m, _ = update(t, m, runeKey("+"))
	assert.Equal(t, maxShots, m.shots)
}

func TestRunnerModel_Copy(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	m, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey("c"))
	assert.Equal(t, "Nothing to copy yet", m.status)
	assert.NotNil(t, cmd)

	m, _ = update(t, m, runDoneMsg{resp: sampleResult()})
	_, cmd = update(t, m, runeKey("c"))
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, copiedMsg{}, msg)
	assert.Equal(t, `{"0":512,"1":512}`, copied)

	m, _ = update(t, m, msg)
	assert.Equal(t, "Copied!", m.status)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestRunnerModel_CopyFailure(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = orig })

	msg := cmdCopyToClipboard(models.Counts{"0": 1})()

	m, _ := newTestModel(t)
	m, _ = update(t, m, msg)
	assert.Contains(t, m.status, "no clipboard")
}

func TestRunnerModel_BuildInfo(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, versionMsg{version: "2.0.0"})

	m, _ = update(t, m, runeKey("v"))
	require.True(t, m.showBuildInfo)

	view := m.View()
	assert.Contains(t, view, "Version: 1.0.0")
	assert.Contains(t, view, "Commit: abc123")
	assert.Contains(t, view, "Server version: 2.0.0")

	// other keys are swallowed while the window is open
	m, _ = update(t, m, runeKey("+"))
	assert.Equal(t, 1024, m.shots)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

func TestRunnerModel_VersionErrorIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, versionMsg{err: errors.New("boom")})

	assert.Contains(t, m.View(), "Server: N/A")
}

func TestRunnerModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := update(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRunnerModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 80, m.width)
}
