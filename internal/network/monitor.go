package network

import (
	"context"
	"sync"
)

// Monitor publishes connectivity changes.
type Monitor interface {
	// IsOnline reports the last known state.
	IsOnline() bool

	// Subscribe returns a channel receiving every state change and a func
	// that unsubscribes and closes the channel. A slow subscriber only
	// observes the latest state.
	Subscribe() (<-chan bool, func())
}

// Prober checks that the remote store answers.
type Prober interface {
	Ping(ctx context.Context) error
}

// broadcaster holds the current state and the subscriber channels.
type broadcaster struct {
	mu     sync.Mutex
	online bool
	subs   map[int]chan bool
	nextID int
}

func newBroadcaster(online bool) *broadcaster {
	return &broadcaster{online: online, subs: make(map[int]chan bool)}
}

func (b *broadcaster) IsOnline() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.online
}

func (b *broadcaster) Subscribe() (<-chan bool, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan bool, 1)
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
}

// set stores online and notifies subscribers if the state changed.
func (b *broadcaster) set(online bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.online == online {
		return false
	}
	b.online = online

	for _, ch := range b.subs {
		publishLatest(ch, online)
	}
	return true
}

// publishLatest replaces an undelivered value so a send never blocks.
func publishLatest(ch chan bool, v bool) {
	select {
	case ch <- v:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}

	select {
	case ch <- v:
	default:
	}
}

// ManualMonitor is a [Monitor] whose state is set by the caller.
type ManualMonitor struct {
	*broadcaster
}

// NewManualMonitor returns a monitor starting in the given state.
func NewManualMonitor(online bool) *ManualMonitor {
	return &ManualMonitor{broadcaster: newBroadcaster(online)}
}

// SetOnline changes the state and notifies subscribers on a change.
func (m *ManualMonitor) SetOnline(online bool) {
	m.set(online)
}
