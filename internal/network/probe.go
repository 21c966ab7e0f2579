package network

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-deck-sync/internal/logger"
)

const defaultProbeTimeout = 5 * time.Second

// ProbeMonitor is a [Monitor] that pings the remote store on a ticker. It
// starts offline; Start runs the first probe before returning.
type ProbeMonitor struct {
	*broadcaster

	prober   Prober
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewProbeMonitor returns a stopped monitor probing every interval.
func NewProbeMonitor(prober Prober, interval time.Duration, log *logger.Logger) *ProbeMonitor {
	timeout := defaultProbeTimeout
	if interval < timeout {
		timeout = interval
	}

	return &ProbeMonitor{
		broadcaster: newBroadcaster(false),
		prober:      prober,
		interval:    interval,
		timeout:     timeout,
		logger:      log,
	}
}

// Start probes once and then keeps probing in the background until Stop is
// called or ctx is done. Calling Start on a running monitor is a no-op.
func (m *ProbeMonitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	m.probe(ctx)

	go m.loop(ctx, m.done)

	m.logger.Info().Dur("interval", m.interval).Msg("network probe monitor started")
	return nil
}

// Stop halts probing and waits for the background goroutine.
func (m *ProbeMonitor) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel, m.done = nil, nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
	m.logger.Info().Msg("network probe monitor stopped")
}

func (m *ProbeMonitor) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *ProbeMonitor) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.prober.Ping(probeCtx)
	if ctx.Err() != nil {
		return
	}

	if changed := m.set(err == nil); changed {
		if err != nil {
			m.logger.Warn().Err(err).Msg("remote store unreachable, switching to offline")
		} else {
			m.logger.Info().Msg("remote store reachable, switching to online")
		}
	}
}
