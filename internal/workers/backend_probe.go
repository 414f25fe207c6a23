package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-circuit-runner/internal/config"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/internal/service"
	"github.com/MKhiriev/go-circuit-runner/models"
)

const (
	defaultProbeInterval = time.Minute
	defaultProbeShots    = 64
)

// BackendProbe runs the superposition circuit on a ticker and records
// whether the backend produced a valid histogram. The latest result is
// readable at any time through Status.
type BackendProbe struct {
	simulation service.SimulationService
	interval   time.Duration
	shots      int

	status      atomic.Pointer[models.ProbeStatus]
	subscribers []func(models.ProbeStatus)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewBackendProbe creates an idle probe. Non-positive settings fall back to
// one probe of 64 shots per minute.
func NewBackendProbe(simulation service.SimulationService, cfg config.Workers, logger *logger.Logger) *BackendProbe {
	interval := cfg.ProbeInterval
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	shots := cfg.ProbeShots
	if shots <= 0 {
		shots = defaultProbeShots
	}

	p := &BackendProbe{
		simulation: simulation,
		interval:   interval,
		shots:      shots,
		logger:     logger,
	}
	p.status.Store(&models.ProbeStatus{})
	return p
}

// Subscribe registers fn to receive every probe result. It must be called
// before Start.
func (p *BackendProbe) Subscribe(fn func(models.ProbeStatus)) {
	p.subscribers = append(p.subscribers, fn)
}

// Status returns the most recent probe result.
func (p *BackendProbe) Status() models.ProbeStatus {
	return *p.status.Load()
}

// Start stops any previous run, probes once immediately and then every
// interval until ctx is cancelled or Stop is called.
func (p *BackendProbe) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.probe(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.probe(jobCtx)
			}
		}
	}()
}

// Stop cancels the probe goroutine and waits for it to exit.
func (p *BackendProbe) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

// probe runs one canonical simulation bounded by the probe interval.
func (p *BackendProbe) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	status := models.ProbeStatus{Healthy: true}

	result, err := p.simulation.RunSuperposition(ctx, p.shots)
	switch {
	case err != nil && errors.Is(ctx.Err(), context.Canceled):
		// shutting down, keep the previous status
		return
	case err != nil:
		status = models.ProbeStatus{Err: err.Error()}
	case result.Counts.Total() != p.shots:
		status = models.ProbeStatus{Err: fmt.Sprintf("probe counted %d of %d shots", result.Counts.Total(), p.shots)}
	}
	status.CheckedAt = time.Now()

	p.status.Store(&status)
	for _, fn := range p.subscribers {
		fn(status)
	}

	if !status.Healthy {
		p.logger.Warn().Str("error", status.Err).Msg("backend probe failed")
		return
	}
	p.logger.Debug().Int("shots", p.shots).Msg("backend probe passed")
}
