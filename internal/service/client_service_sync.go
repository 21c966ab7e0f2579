package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-deck-sync/internal/adapter"
	"github.com/MKhiriev/go-deck-sync/internal/logger"
	"github.com/MKhiriev/go-deck-sync/internal/network"
	"github.com/MKhiriev/go-deck-sync/models"
)

const (
	defaultSyncInterval   = 5 * time.Minute
	defaultRetryBaseDelay = time.Second
	defaultMaxRetries     = 3

	syncFlightKey = "sync"
)

// SyncManagerOptions tunes a [SyncManager]. Zero values select the defaults:
// a 5 minute interval and 3 retries starting at 1 second.
type SyncManagerOptions struct {
	UserID         string
	Interval       time.Duration
	RetryBaseDelay time.Duration
	MaxRetries     int
}

type syncManager struct {
	data    SyncDataSource
	gateway adapter.RemoteDataGateway
	monitor network.Monitor

	interval   time.Duration
	baseDelay  time.Duration
	maxRetries uint64
	now        func() time.Time

	userMu sync.RWMutex
	userID string

	flight singleflight.Group

	stateMu sync.RWMutex
	state   SyncState

	observersMu sync.RWMutex
	onStart     []func()
	onComplete  []func(models.SyncResult)
	onError     []func(error)

	mu     sync.Mutex
	cancel context.CancelFunc
	run    uint64
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSyncManager creates an idle sync manager. Cycles only call the gateway
// while monitor reports online.
func NewSyncManager(data SyncDataSource, gateway adapter.RemoteDataGateway, monitor network.Monitor, opts SyncManagerOptions, logger *logger.Logger) SyncManager {
	if opts.Interval <= 0 {
		opts.Interval = defaultSyncInterval
	}
	if opts.RetryBaseDelay <= 0 {
		opts.RetryBaseDelay = defaultRetryBaseDelay
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = defaultMaxRetries
	}

	return &syncManager{
		data:       data,
		gateway:    gateway,
		monitor:    monitor,
		interval:   opts.Interval,
		baseDelay:  opts.RetryBaseDelay,
		maxRetries: uint64(opts.MaxRetries),
		now:        func() time.Time { return time.Now().UTC() },
		userID:     opts.UserID,
		logger:     logger,
	}
}

func (m *syncManager) SetUser(userID string) {
	m.userMu.Lock()
	defer m.userMu.Unlock()
	m.userID = userID
}

func (m *syncManager) currentUser() string {
	m.userMu.RLock()
	defer m.userMu.RUnlock()
	return m.userID
}

func (m *syncManager) State() SyncState {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	return m.state
}

func (m *syncManager) setState(state SyncState) {
	m.stateMu.Lock()
	defer m.stateMu.Unlock()
	m.state = state
}

// SyncNow implements SyncManager. The cycle is detached from ctx
// cancellation and always runs to completion.
func (m *syncManager) SyncNow(ctx context.Context) models.SyncResult {
	v, _, _ := m.flight.Do(syncFlightKey, func() (any, error) {
		return m.runCycle(context.WithoutCancel(ctx)), nil
	})

	return v.(models.SyncResult)
}

func (m *syncManager) runCycle(ctx context.Context) models.SyncResult {
	result := models.SyncResult{StartedAt: m.now()}

	if !m.monitor.IsOnline() {
		m.logger.Debug().Msg("sync skipped: offline")
		m.emitError(&SyncError{Kind: SyncErrorTransient, Err: ErrOffline})
		result.FinishedAt = m.now()
		return result
	}

	userID := m.currentUser()
	if userID == "" {
		m.emitError(&SyncError{Kind: SyncErrorPermanent, Err: ErrNoUser})
		result.FinishedAt = m.now()
		return result
	}

	m.setState(SyncSyncing)
	m.emitStart()

	up := m.upload(ctx, userID)
	downloaded, downOK := m.download(ctx, userID, up.sent)

	result.Uploaded = up.uploaded
	result.Failed = up.failed
	result.Downloaded = downloaded
	result.ItemsSynced = up.uploaded + downloaded
	result.Success = up.ok && downOK
	result.FinishedAt = m.now()

	if result.Success {
		m.setState(SyncIdle)
	} else {
		m.setState(SyncErrorBackoff)
	}

	m.logger.Info().
		Bool("success", result.Success).
		Int("uploaded", result.Uploaded).
		Int("downloaded", result.Downloaded).
		Int("failed", result.Failed).
		Dur("took", result.FinishedAt.Sub(result.StartedAt)).
		Msg("sync cycle finished")

	m.emitComplete(result)
	return result
}

// uploadResult is the outcome of the upload phase. sent holds the ids of
// records confirmed by the remote store during the phase.
type uploadResult struct {
	uploaded int
	failed   int
	ok       bool
	sent     map[string]struct{}
}

func (m *syncManager) upload(ctx context.Context, userID string) uploadResult {
	res := uploadResult{ok: true, sent: make(map[string]struct{})}

	entries, err := m.data.GetSyncQueue(ctx)
	if err != nil {
		m.emitError(&SyncError{Kind: SyncErrorTransient, Err: fmt.Errorf("error reading sync queue: %w", err)})
		res.ok = false
		return res
	}

	for _, entry := range entries {
		sent, err := m.pushEntry(ctx, entry, userID)
		if err != nil {
			m.logger.Warn().Err(err).
				Str("entity_type", string(entry.EntityType)).
				Str("entity_id", entry.EntityID).
				Str("operation", string(entry.Operation)).
				Msg("queue entry left for the next cycle")
			m.emitError(err)
			res.failed++
			res.ok = false
			continue
		}
		if sent {
			res.uploaded++
			res.sent[entry.EntityID] = struct{}{}
		}
	}

	return res
}

// pushEntry replays one queue entry. It reports false without error when
// the entry was discarded because its local record is gone.
func (m *syncManager) pushEntry(ctx context.Context, entry models.SyncQueueEntry, userID string) (bool, error) {
	owner := entry.UserID
	if owner == "" {
		owner = userID
	}

	var call func(ctx context.Context) error

	switch {
	case entry.EntityType == models.EntityDeck && entry.Operation.IsUpsert():
		deck, err := m.data.GetDeck(ctx, entry.EntityID)
		if errors.Is(err, ErrNotFound) {
			return false, m.discard(ctx, entry)
		}
		if err != nil {
			return false, localSyncError(entry, err)
		}
		if deck.UserID != "" {
			owner = deck.UserID
		}
		call = func(ctx context.Context) error {
			return m.gateway.SetDeck(ctx, owner, deck.ID, deck.ForRemote())
		}

	case entry.EntityType == models.EntityCard && entry.Operation.IsUpsert():
		card, err := m.data.GetCard(ctx, entry.EntityID)
		if errors.Is(err, ErrNotFound) {
			return false, m.discard(ctx, entry)
		}
		if err != nil {
			return false, localSyncError(entry, err)
		}
		if card.UserID != "" {
			owner = card.UserID
		}
		call = func(ctx context.Context) error {
			return m.gateway.SetCard(ctx, owner, card.ID, card.ForRemote())
		}

	case entry.EntityType == models.EntityDeck && entry.Operation == models.OperationDelete:
		call = func(ctx context.Context) error {
			return m.gateway.DeleteDeck(ctx, owner, entry.EntityID)
		}

	case entry.EntityType == models.EntityCard && entry.Operation == models.OperationDelete:
		call = func(ctx context.Context) error {
			return m.gateway.DeleteCard(ctx, owner, entry.EntityID)
		}

	default:
		m.logger.Warn().Str("entity_type", string(entry.EntityType)).Str("operation", string(entry.Operation)).
			Msg("unknown queue entry discarded")
		return false, m.discard(ctx, entry)
	}

	attempts, err := m.withRetry(ctx, call)
	if err != nil {
		return false, &SyncError{
			Kind:       classifyGatewayError(err),
			EntityType: entry.EntityType,
			EntityID:   entry.EntityID,
			Operation:  entry.Operation,
			Attempts:   attempts,
			Err:        err,
		}
	}

	if err = m.data.RemoveSyncQueueEntry(ctx, entry.ID); err != nil {
		return false, localSyncError(entry, err)
	}

	pending, err := m.data.HasQueuedEntries(ctx, entry.EntityID)
	if err != nil {
		return true, localSyncError(entry, err)
	}
	if !pending && entry.Operation.IsUpsert() {
		if err = m.data.MarkSynced(ctx, entry.EntityType, entry.EntityID); err != nil {
			return true, localSyncError(entry, err)
		}
	}

	return true, nil
}

func (m *syncManager) discard(ctx context.Context, entry models.SyncQueueEntry) error {
	if err := m.data.RemoveSyncQueueEntry(ctx, entry.ID); err != nil {
		return localSyncError(entry, err)
	}
	return nil
}

// withRetry calls fn until it succeeds, fails permanently or the retry
// budget is spent. Once the monitor reports offline a failed call is not
// retried. It returns the number of calls made.
func (m *syncManager) withRetry(ctx context.Context, fn func(ctx context.Context) error) (int, error) {
	attempts := 0
	backoff := retry.WithMaxRetries(m.maxRetries, retry.NewExponential(m.baseDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		err := fn(ctx)
		if err != nil && classifyGatewayError(err) == SyncErrorTransient && m.monitor.IsOnline() {
			return retry.RetryableError(err)
		}
		return err
	})

	return attempts, err
}

// localSyncError wraps a local store failure met while replaying entry.
func localSyncError(entry models.SyncQueueEntry, err error) *SyncError {
	return &SyncError{
		Kind:       SyncErrorTransient,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Operation:  entry.Operation,
		Err:        err,
	}
}

// download pulls the remote collections and reconciles them with the local
// store by last-write-wins. Records in sent were confirmed during this cycle
// and are never pruned.
func (m *syncManager) download(ctx context.Context, userID string, sent map[string]struct{}) (int, bool) {
	var (
		remoteDecks []models.Deck
		remoteCards []models.Card
	)

	attempts, err := m.withRetry(ctx, func(ctx context.Context) error {
		var err error
		remoteDecks, err = m.gateway.GetUserDecks(ctx, userID)
		return err
	})
	if err != nil {
		m.emitError(&SyncError{Kind: classifyGatewayError(err), Attempts: attempts, Err: fmt.Errorf("error downloading decks: %w", err)})
		return 0, false
	}

	attempts, err = m.withRetry(ctx, func(ctx context.Context) error {
		var err error
		remoteCards, err = m.gateway.GetUserCards(ctx, userID)
		return err
	})
	if err != nil {
		m.emitError(&SyncError{Kind: classifyGatewayError(err), Attempts: attempts, Err: fmt.Errorf("error downloading cards: %w", err)})
		return 0, false
	}

	queue, err := m.data.GetSyncQueue(ctx)
	if err != nil {
		m.emitError(&SyncError{Kind: SyncErrorTransient, Err: fmt.Errorf("error reading sync queue: %w", err)})
		return 0, false
	}
	pending := make(map[string][]models.SyncQueueEntry, len(queue))
	for _, entry := range queue {
		pending[entry.EntityID] = append(pending[entry.EntityID], entry)
	}

	r := &reconciler{m: m, ctx: ctx, userID: userID, pending: pending, sent: sent, ok: true}
	decks := r.decks(remoteDecks)
	r.cards(remoteCards, decks)

	for deckID := range decks {
		if err = m.data.RecountCards(ctx, deckID); err != nil {
			r.fail(models.EntityDeck, deckID, err)
		}
	}

	return r.applied, r.ok
}

// reconciler holds the state of one download phase.
type reconciler struct {
	m       *syncManager
	ctx     context.Context
	userID  string
	pending map[string][]models.SyncQueueEntry
	sent    map[string]struct{}

	applied int
	ok      bool
}

// decks reconciles the deck collection and returns the ids of the decks
// present locally afterwards.
func (r *reconciler) decks(remote []models.Deck) map[string]struct{} {
	present := make(map[string]struct{})

	local, err := r.m.data.GetAllDecks(r.ctx, r.userID)
	if err != nil {
		r.fail(models.EntityDeck, "", err)
		return present
	}

	byID := make(map[string]models.Deck, len(local))
	for _, deck := range local {
		byID[deck.ID] = deck
		present[deck.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(remote))
	for _, deck := range remote {
		seen[deck.ID] = struct{}{}

		current, ok := byID[deck.ID]
		switch r.resolve(deck.ID, ok, current.Timestamp(), deck.Timestamp(), models.EntityDeck, current.UserID) {
		case takeRemote:
			if deck.UserID == "" {
				deck.UserID = r.userID
			}
			if err = r.m.data.ApplyRemoteDeck(r.ctx, deck); err != nil {
				r.fail(models.EntityDeck, deck.ID, err)
				continue
			}
			r.applied++
			present[deck.ID] = struct{}{}
		}
	}

	for _, deck := range local {
		if _, ok := seen[deck.ID]; ok || !r.prunable(deck.ID, deck.Synced) {
			continue
		}
		if err = r.m.data.DropDeck(r.ctx, deck.ID); err != nil {
			r.fail(models.EntityDeck, deck.ID, err)
			continue
		}
		delete(present, deck.ID)
	}

	return present
}

func (r *reconciler) cards(remote []models.Card, decks map[string]struct{}) {
	local, err := r.m.data.GetAllCards(r.ctx, r.userID)
	if err != nil {
		r.fail(models.EntityCard, "", err)
		return
	}

	byID := make(map[string]models.Card, len(local))
	for _, card := range local {
		byID[card.ID] = card
	}

	seen := make(map[string]struct{}, len(remote))
	for _, card := range remote {
		seen[card.ID] = struct{}{}

		if _, ok := decks[card.DeckID]; !ok {
			r.m.logger.Debug().Str("card_id", card.ID).Str("deck_id", card.DeckID).Msg("orphan remote card ignored")
			continue
		}

		current, ok := byID[card.ID]
		switch r.resolve(card.ID, ok, current.Timestamp(), card.Timestamp(), models.EntityCard, current.UserID) {
		case takeRemote:
			if card.UserID == "" {
				card.UserID = r.userID
			}
			if err = r.m.data.ApplyRemoteCard(r.ctx, card); err != nil {
				r.fail(models.EntityCard, card.ID, err)
				continue
			}
			r.applied++
		}
	}

	for _, card := range local {
		if _, ok := seen[card.ID]; ok || !r.prunable(card.ID, card.Synced) {
			continue
		}
		if err = r.m.data.DropCard(r.ctx, card.ID); err != nil {
			r.fail(models.EntityCard, card.ID, err)
		}
	}
}

type resolution int

const (
	keepLocal resolution = iota
	takeRemote
)

// resolve applies last-write-wins to one record. Equal timestamps keep the
// local copy. A local copy that is strictly newer and not queued is queued
// again so the next cycle uploads it.
func (r *reconciler) resolve(id string, exists bool, localTS, remoteTS time.Time, entityType models.EntityType, owner string) resolution {
	queued := r.pending[id]

	if !exists {
		// a queued delete that has not reached the remote store yet
		if len(queued) > 0 {
			return keepLocal
		}
		return takeRemote
	}

	switch {
	case remoteTS.After(localTS):
		for _, entry := range queued {
			if err := r.m.data.RemoveSyncQueueEntry(r.ctx, entry.ID); err != nil {
				r.fail(entityType, id, err)
			}
		}
		return takeRemote

	case localTS.After(remoteTS) && len(queued) == 0:
		if owner == "" {
			owner = r.userID
		}
		if err := r.m.data.RequeueUpdate(r.ctx, entityType, id, owner); err != nil {
			r.fail(entityType, id, err)
		}
	}

	return keepLocal
}

// prunable reports whether a local record missing from the remote store was
// deleted remotely rather than never uploaded.
func (r *reconciler) prunable(id string, synced bool) bool {
	if !synced || len(r.pending[id]) > 0 {
		return false
	}
	_, justSent := r.sent[id]
	return !justSent
}

func (r *reconciler) fail(entityType models.EntityType, id string, err error) {
	r.ok = false
	r.m.emitError(&SyncError{Kind: SyncErrorTransient, EntityType: entityType, EntityID: id, Err: err})
}

func (m *syncManager) OnSyncStart(fn func()) {
	m.observersMu.Lock()
	defer m.observersMu.Unlock()
	m.onStart = append(m.onStart, fn)
}

func (m *syncManager) OnSyncComplete(fn func(models.SyncResult)) {
	m.observersMu.Lock()
	defer m.observersMu.Unlock()
	m.onComplete = append(m.onComplete, fn)
}

func (m *syncManager) OnSyncError(fn func(error)) {
	m.observersMu.Lock()
	defer m.observersMu.Unlock()
	m.onError = append(m.onError, fn)
}

func (m *syncManager) emitStart() {
	m.observersMu.RLock()
	subs := append([]func(){}, m.onStart...)
	m.observersMu.RUnlock()

	for _, fn := range subs {
		m.notify("OnSyncStart", fn)
	}
}

func (m *syncManager) emitComplete(result models.SyncResult) {
	m.observersMu.RLock()
	subs := append([]func(models.SyncResult){}, m.onComplete...)
	m.observersMu.RUnlock()

	for _, fn := range subs {
		m.notify("OnSyncComplete", func() { fn(result) })
	}
}

func (m *syncManager) emitError(err error) {
	m.observersMu.RLock()
	subs := append([]func(error){}, m.onError...)
	m.observersMu.RUnlock()

	for _, fn := range subs {
		m.notify("OnSyncError", func() { fn(err) })
	}
}

// notify runs one subscriber; a panic is logged and swallowed.
func (m *syncManager) notify(event string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error().Interface("panic", r).Str("event", event).Msg("sync subscriber panicked")
		}
	}()
	fn()
}
