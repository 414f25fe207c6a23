package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-circuit-runner/internal/config"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/internal/service"
	"github.com/MKhiriev/go-circuit-runner/internal/simulator"
	"github.com/MKhiriev/go-circuit-runner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSimulation is a minimal SimulationService returning canned results.
type stubSimulation struct {
	mu    sync.Mutex
	calls int
	err   error
	total int
}

func (s *stubSimulation) Simulate(ctx context.Context, _ models.Circuit, shots int) (models.SimulationResult, error) {
	return s.RunSuperposition(ctx, shots)
}

func (s *stubSimulation) RunSuperposition(_ context.Context, shots int) (models.SimulationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return models.SimulationResult{}, s.err
	}
	total := shots
	if s.total != 0 {
		total = s.total
	}
	return models.SimulationResult{ShotsRun: total, Counts: models.Counts{"0": total}}, nil
}

func (s *stubSimulation) CheckMethod(string) error { return nil }
func (s *stubSimulation) DefaultShots() int       { return 1024 }

func (s *stubSimulation) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestNewBackendProbe_Defaults(t *testing.T) {
	p := NewBackendProbe(&stubSimulation{}, config.Workers{}, logger.Nop())

	assert.Equal(t, defaultProbeInterval, p.interval)
	assert.Equal(t, defaultProbeShots, p.shots)
	assert.Equal(t, models.HealthStarting, p.Status().State())
}

func TestBackendProbe_ProbeResults(t *testing.T) {
	tests := []struct {
		name        string
		sim         *stubSimulation
		wantHealthy bool
		wantErr     string
	}{
		{name: "healthy", sim: &stubSimulation{}, wantHealthy: true},
		{name: "backend error", sim: &stubSimulation{err: simulator.ErrBackendUnavailable}, wantErr: "simulator backend unavailable"},
		{name: "short histogram", sim: &stubSimulation{total: 3}, wantErr: "probe counted 3 of 8 shots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewBackendProbe(tt.sim, config.Workers{ProbeInterval: time.Hour, ProbeShots: 8}, logger.Nop())

			var got []models.ProbeStatus
			p.Subscribe(func(s models.ProbeStatus) { got = append(got, s) })

			p.probe(context.Background())

			status := p.Status()
			assert.Equal(t, tt.wantHealthy, status.Healthy)
			assert.Equal(t, tt.wantErr, status.Err)
			assert.False(t, status.CheckedAt.IsZero())
			require.Len(t, got, 1)
			assert.Equal(t, status, got[0])
		})
	}
}

func TestBackendProbe_CancelledProbeKeepsStatus(t *testing.T) {
	sim := &stubSimulation{err: context.Canceled}
	p := NewBackendProbe(sim, config.Workers{ProbeInterval: time.Hour}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.probe(ctx)

	assert.Equal(t, models.HealthStarting, p.Status().State())
}

func TestBackendProbe_StartProbesImmediatelyAndOnTicker(t *testing.T) {
	sim := &stubSimulation{}
	p := NewBackendProbe(sim, config.Workers{ProbeInterval: 10 * time.Millisecond, ProbeShots: 4}, logger.Nop())

	p.Start(context.Background())
	assert.Eventually(t, func() bool { return sim.callCount() >= 3 }, 2*time.Second, 5*time.Millisecond)
	p.Stop()

	calls := sim.callCount()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, sim.callCount(), "no probes after Stop")
	assert.True(t, p.Status().Healthy)
}

func TestBackendProbe_StopIsIdempotent(t *testing.T) {
	p := NewBackendProbe(&stubSimulation{}, config.Workers{ProbeInterval: time.Hour}, logger.Nop())

	p.Stop()
	p.Start(context.Background())
	p.Stop()
	p.Stop()
}

func TestBackendProbe_RealBackend(t *testing.T) {
	backend, err := simulator.GetDefaultBackend(config.Simulator{})
	require.NoError(t, err)
	sim, err := service.NewSimulationService(backend, config.Simulator{MaxShots: 1000}, logger.Nop())
	require.NoError(t, err)

	p := NewBackendProbe(sim, config.Workers{ProbeInterval: time.Hour, ProbeShots: 32}, logger.Nop())
	p.probe(context.Background())

	assert.Equal(t, models.HealthOK, p.Status().State())
}
