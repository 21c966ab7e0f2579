package service

import (
	"context"
	"time"
)

// Start implements SyncManager. It subscribes to the network monitor and
// launches a background goroutine that runs a cycle on every transition to
// online and then every interval while online. An offline transition stops
// the ticker. Calling Start on a running manager is a no-op.
func (m *syncManager) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		return nil
	}

	jobCtx, cancel := context.WithCancel(ctx)
	updates, unsubscribe := m.monitor.Subscribe()
	m.cancel = cancel
	m.run++
	run := m.run
	m.wg.Add(1)

	go func() {
		defer m.wg.Done()
		defer unsubscribe()
		m.watchNetwork(jobCtx, updates)
		m.finishRun(run)
	}()

	m.logger.Info().Dur("interval", m.interval).Msg("sync manager started")
	return nil
}

// Stop implements SyncManager. It cancels the background goroutine and
// blocks until it has exited, which includes a cycle in progress. Safe to
// call when the manager is not running.
func (m *syncManager) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// finishRun marks the manager stopped after the goroutine of run exits on
// its own, so a cancelled parent context allows a later Start. A newer run
// started after Stop is left alone.
func (m *syncManager) finishRun(run uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.run == run && m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *syncManager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancel != nil
}

func (m *syncManager) watchNetwork(ctx context.Context, updates <-chan bool) {
	var (
		ticker *time.Ticker
		tick   <-chan time.Time
	)

	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tick = nil, nil
		}
	}
	defer stopTicker()

	online := func() {
		if ticker == nil {
			ticker = time.NewTicker(m.interval)
			tick = ticker.C
		}
		m.SyncNow(ctx)
	}

	if m.monitor.IsOnline() {
		online()
	}

	for {
		select {
		case <-ctx.Done():
			return

		case isOnline, ok := <-updates:
			if !ok {
				return
			}
			if isOnline {
				m.logger.Info().Msg("network online, syncing")
				online()
			} else {
				m.logger.Info().Msg("network offline, periodic sync paused")
				stopTicker()
			}

		case <-tick:
			m.SyncNow(ctx)
		}
	}
}
