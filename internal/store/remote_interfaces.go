package store

import (
	"context"

	"github.com/MKhiriev/go-deck-sync/models"
)

//go:generate mockgen -source=remote_interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteRepository is the authoritative deck and card storage of the remote
// store server.
type RemoteRepository interface {
	GetDecks(ctx context.Context, userID string) ([]models.Deck, error)
	GetCards(ctx context.Context, userID string) ([]models.Card, error)
	UpsertDeck(ctx context.Context, deck models.Deck) error
	UpsertCard(ctx context.Context, card models.Card) error
	// DeleteDeck removes the deck together with its cards.
	DeleteDeck(ctx context.Context, userID, id string) error
	DeleteCard(ctx context.Context, userID, id string) error
}
