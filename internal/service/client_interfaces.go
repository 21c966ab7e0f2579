package service

import (
	"context"

	"github.com/MKhiriev/go-deck-sync/models"
)

// LocalDataService defines the client-side contract for managing decks and
// cards. Every mutating call writes the local store and records a matching
// sync queue entry; nothing here touches the network, so calls succeed while
// offline.
type LocalDataService interface {
	// CreateDeck stores a new dirty deck and enqueues a create entry. An empty
	// id is replaced by a generated one; a taken id yields ErrAlreadyExists
	// and leaves the stored deck untouched.
	CreateDeck(ctx context.Context, userID, title, id string) (models.Deck, error)

	// UpdateDeck merges upd into the deck, bumps LastUpdated and enqueues an
	// update entry. Returns ErrNotFound if the deck does not exist.
	UpdateDeck(ctx context.Context, id string, upd models.DeckUpdate) (models.Deck, error)

	// DeleteDeck removes the deck, its cards and their queued entries, then
	// enqueues a single delete entry for the deck.
	// Returns ErrNotFound if the deck does not exist.
	DeleteDeck(ctx context.Context, id string) error

	// CreateCard stores a new dirty card in deckID, recomputes the deck's
	// CardCount and enqueues a create entry. Returns ErrNotFound if the deck
	// does not exist and ErrAlreadyExists if id is taken by any card.
	CreateCard(ctx context.Context, userID, deckID, title, category, content, id string) (models.Card, error)

	// UpdateCard merges upd into the card, bumps UpdatedAt and enqueues an
	// update entry. Moving the card to another deck recomputes the counts of
	// both decks.
	UpdateCard(ctx context.Context, id string, upd models.CardUpdate) (models.Card, error)

	// DeleteCard removes the card and its queued entries, recomputes the
	// deck's CardCount and enqueues a delete entry.
	DeleteCard(ctx context.Context, id string) error

	GetDeck(ctx context.Context, id string) (models.Deck, error)
	GetCard(ctx context.Context, id string) (models.Card, error)

	// GetAllDecks returns the decks of userID, most recently updated first.
	GetAllDecks(ctx context.Context, userID string) ([]models.Deck, error)

	// GetCardsByDeckID returns the cards of a deck in insertion order.
	GetCardsByDeckID(ctx context.Context, deckID string) ([]models.Card, error)

	GetSyncQueue(ctx context.Context) ([]models.SyncQueueEntry, error)
	ClearSyncQueue(ctx context.Context) error
	RemoveSyncQueueEntry(ctx context.Context, id string) error
}

// SyncDataSource is the local surface used by the sync manager. Its writes
// never record queue entries, except RequeueUpdate.
type SyncDataSource interface {
	GetDeck(ctx context.Context, id string) (models.Deck, error)
	GetCard(ctx context.Context, id string) (models.Card, error)
	GetAllDecks(ctx context.Context, userID string) ([]models.Deck, error)
	GetAllCards(ctx context.Context, userID string) ([]models.Card, error)

	GetSyncQueue(ctx context.Context) ([]models.SyncQueueEntry, error)
	RemoveSyncQueueEntry(ctx context.Context, id string) error
	// HasQueuedEntries reports whether any entry refers to entityID.
	HasQueuedEntries(ctx context.Context, entityID string) (bool, error)

	// MarkSynced flags the record clean. A missing record is ignored.
	MarkSynced(ctx context.Context, entityType models.EntityType, id string) error

	// ApplyRemoteDeck and ApplyRemoteCard insert or overwrite a record
	// received from the remote store and flag it clean.
	ApplyRemoteDeck(ctx context.Context, deck models.Deck) error
	ApplyRemoteCard(ctx context.Context, card models.Card) error

	DropDeck(ctx context.Context, id string) error
	DropCard(ctx context.Context, id string) error

	// RequeueUpdate enqueues an update entry for a record that is newer
	// locally than remotely.
	RequeueUpdate(ctx context.Context, entityType models.EntityType, id, userID string) error

	// RecountCards recomputes the CardCount of a deck without marking it
	// dirty.
	RecountCards(ctx context.Context, deckID string) error
}

// ClientDataService is implemented by the local data service, which serves
// both the UI-facing and the sync-facing surface.
type ClientDataService interface {
	LocalDataService
	SyncDataSource
}

// SyncState is the state of a [SyncManager].
type SyncState int

const (
	SyncIdle SyncState = iota
	SyncSyncing
	// SyncErrorBackoff is entered after a cycle that did not fully succeed
	// and left when the next cycle starts.
	SyncErrorBackoff
)

func (s SyncState) String() string {
	switch s {
	case SyncSyncing:
		return "syncing"
	case SyncErrorBackoff:
		return "error_backoff"
	}
	return "idle"
}

// SyncManager reconciles the local store with the remote store. Errors never
// escape its methods; they are delivered to OnSyncError subscribers.
type SyncManager interface {
	// Start subscribes to the network monitor. While online a cycle runs
	// immediately and then on every interval tick.
	Start(ctx context.Context) error
	// Stop cancels the subscription and the ticker and waits for a running
	// cycle to finish.
	Stop()
	IsRunning() bool
	State() SyncState

	// SyncNow runs one cycle. Calls made while a cycle is in flight join it
	// and receive the same result.
	SyncNow(ctx context.Context) models.SyncResult

	// SetUser changes the user whose records are synchronised.
	SetUser(userID string)

	OnSyncStart(fn func())
	OnSyncComplete(fn func(models.SyncResult))
	OnSyncError(fn func(error))
}
