package service

import (
	"context"

	"github.com/MKhiriev/go-deck-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RemoteDataService is the server-side contract behind the REST endpoints
// consumed by the client gateway. Writes are upserts; the path parameters
// userID and id override the values in the body.
type RemoteDataService interface {
	GetDecks(ctx context.Context, userID string) ([]models.Deck, error)
	GetCards(ctx context.Context, userID string) ([]models.Card, error)

	SetDeck(ctx context.Context, userID, id string, deck models.Deck) error
	SetCard(ctx context.Context, userID, id string, card models.Card) error

	// DeleteDeck removes the deck and its cards.
	DeleteDeck(ctx context.Context, userID, id string) error
	DeleteCard(ctx context.Context, userID, id string) error
}

// RemoteDataServiceWrapper defines middleware composition for
// RemoteDataService. Implementations wrap an existing RemoteDataService to
// add behavior such as validation.
type RemoteDataServiceWrapper interface {
	Wrap(RemoteDataService) RemoteDataService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
