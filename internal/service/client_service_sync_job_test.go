package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-deck-sync/internal/logger"
	"github.com/MKhiriev/go-deck-sync/internal/network"
	"github.com/MKhiriev/go-deck-sync/models"
)

// completions subscribes to OnSyncComplete and returns a channel fed by
// every finished cycle.
func completions(m SyncManager) <-chan models.SyncResult {
	ch := make(chan models.SyncResult, 16)
	m.OnSyncComplete(func(r models.SyncResult) {
		select {
		case ch <- r:
		default:
		}
	})
	return ch
}

func waitCycle(t *testing.T, ch <-chan models.SyncResult) models.SyncResult {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("sync cycle did not run")
		return models.SyncResult{}
	}
}

func assertNoCycle(t *testing.T, ch <-chan models.SyncResult, wait time.Duration) {
	t.Helper()
	select {
	case <-ch:
		t.Fatal("unexpected sync cycle")
	case <-time.After(wait):
	}
}

func TestSyncManager_StartOnlineRunsCycle(t *testing.T) {
	gateway := newMemoryGateway()
	m, data := newTestSyncManager(t, gateway, network.NewManualMonitor(true))
	done := completions(m)

	_, err := data.CreateDeck(context.Background(), testUser, "Trip", "deck-1")
	require.NoError(t, err)

	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(m.Stop)
	assert.True(t, m.IsRunning())

	result := waitCycle(t, done)
	assert.True(t, result.Success)
	_, ok := gateway.deck("deck-1")
	assert.True(t, ok)
}

func TestSyncManager_StartOfflineWaitsForNetwork(t *testing.T) {
	gateway := newMemoryGateway()
	monitor := network.NewManualMonitor(false)
	m, _ := newTestSyncManager(t, gateway, monitor)
	done := completions(m)

	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(m.Stop)

	assertNoCycle(t, done, 50*time.Millisecond)
	assert.Equal(t, 0, gateway.callCount("GetUserDecks"))

	monitor.SetOnline(true)
	waitCycle(t, done)
	assert.Equal(t, 1, gateway.callCount("GetUserDecks"))
}

func TestSyncManager_PeriodicSync(t *testing.T) {
	gateway := newMemoryGateway()
	monitor := network.NewManualMonitor(true)
	data, _ := newTestLocalData(t)
	m := NewSyncManager(data, gateway, monitor, SyncManagerOptions{
		UserID:         testUser,
		Interval:       20 * time.Millisecond,
		RetryBaseDelay: time.Millisecond,
	}, logger.Nop())
	done := completions(m)

	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(m.Stop)

	// первый цикл при старте, затем по тикеру
	waitCycle(t, done)
	waitCycle(t, done)
	waitCycle(t, done)

	// офлайн останавливает тикер
	monitor.SetOnline(false)
	time.Sleep(50 * time.Millisecond)
	for len(done) > 0 {
		<-done
	}
	assertNoCycle(t, done, 80*time.Millisecond)
}

func TestSyncManager_StopIsIdempotent(t *testing.T) {
	m, _ := newTestSyncManager(t, newMemoryGateway(), network.NewManualMonitor(true))

	assert.False(t, m.IsRunning())
	m.Stop()

	require.NoError(t, m.Start(context.Background()))
	require.NoError(t, m.Start(context.Background()), "second Start is a no-op")
	assert.True(t, m.IsRunning())

	m.Stop()
	m.Stop()
	assert.False(t, m.IsRunning())
}

func TestSyncManager_StartWithCancelledContext(t *testing.T) {
	m, _ := newTestSyncManager(t, newMemoryGateway(), network.NewManualMonitor(true))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, m.Start(ctx), context.Canceled)
	assert.False(t, m.IsRunning())
}

func TestSyncManager_ContextCancelStopsJob(t *testing.T) {
	gateway := newMemoryGateway()
	monitor := network.NewManualMonitor(false)
	m, _ := newTestSyncManager(t, gateway, monitor)
	done := completions(m)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, m.Start(ctx))
	cancel()

	// без Stop: менеджер сам помечает себя остановленным
	require.Eventually(t, func() bool { return !m.IsRunning() }, time.Second, 5*time.Millisecond)

	monitor.SetOnline(true)
	assertNoCycle(t, done, 50*time.Millisecond)

	require.NoError(t, m.Start(context.Background()), "a stopped manager can be started again")
	t.Cleanup(m.Stop)
	assert.True(t, m.IsRunning())
	waitCycle(t, done)
}

func TestNewSyncManager_Defaults(t *testing.T) {
	data, _ := newTestLocalData(t)
	m := NewSyncManager(data, newMemoryGateway(), network.NewManualMonitor(true), SyncManagerOptions{}, logger.Nop()).(*syncManager)

	assert.Equal(t, defaultSyncInterval, m.interval)
	assert.Equal(t, defaultRetryBaseDelay, m.baseDelay)
	assert.Equal(t, uint64(defaultMaxRetries), m.maxRetries)
	assert.Equal(t, SyncIdle, m.State())
	assert.Equal(t, "idle", m.State().String())
	assert.Equal(t, "error_backoff", SyncErrorBackoff.String())
}
