package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deck-sync/internal/config"
	"github.com/MKhiriev/go-deck-sync/internal/logger"
	"github.com/MKhiriev/go-deck-sync/models"
)

// ClientStorages groups the client-side local store and its typed views so
// they can be passed to the service layer as one value.
type ClientStorages struct {
	// Store is the SQLite-backed record store. It is owned by
	// ClientStorages and closed by [ClientStorages.Close].
	Store LocalStore

	Decks *Collection[models.Deck]
	Cards *Collection[models.Card]
	Queue *SyncQueue
}

// NewClientStorages opens the local store at cfg.DB.DSN, applies pending
// migrations and builds the typed collections on top of it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	localStore := NewLocalStore(cfg.DB.DSN, logger)
	if err := localStore.Open(ctx); err != nil {
		return nil, fmt.Errorf("local store error: %w", err)
	}

	return NewClientStoragesFromStore(localStore), nil
}

// NewClientStoragesFromStore builds the typed views over an already opened
// store.
func NewClientStoragesFromStore(localStore LocalStore) *ClientStorages {
	return &ClientStorages{
		Store: localStore,
		Decks: NewCollection[models.Deck](localStore, CollectionDecks),
		Cards: NewCollection[models.Card](localStore, CollectionCards),
		Queue: NewSyncQueue(localStore),
	}
}

// Close closes the underlying store.
func (s *ClientStorages) Close() error {
	return s.Store.Close()
}
