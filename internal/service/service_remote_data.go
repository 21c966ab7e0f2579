package service

import (
	"context"

	"github.com/MKhiriev/go-deck-sync/internal/logger"
	"github.com/MKhiriev/go-deck-sync/internal/store"
	"github.com/MKhiriev/go-deck-sync/models"
)

type remoteDataService struct {
	repository store.RemoteRepository

	logger *logger.Logger
}

func NewRemoteDataService(repository store.RemoteRepository, logger *logger.Logger) RemoteDataService {
	return &remoteDataService{
		repository: repository,
		logger:     logger,
	}
}

func (s *remoteDataService) GetDecks(ctx context.Context, userID string) ([]models.Deck, error) {
	return s.repository.GetDecks(ctx, userID)
}

func (s *remoteDataService) GetCards(ctx context.Context, userID string) ([]models.Card, error) {
	return s.repository.GetCards(ctx, userID)
}

func (s *remoteDataService) SetDeck(ctx context.Context, userID, id string, deck models.Deck) error {
	deck = deck.ForRemote()
	deck.UserID, deck.ID = userID, id
	if deck.CreatedAt.IsZero() {
		deck.CreatedAt = deck.LastUpdated
	}

	return s.repository.UpsertDeck(ctx, deck)
}

func (s *remoteDataService) SetCard(ctx context.Context, userID, id string, card models.Card) error {
	card = card.ForRemote()
	card.UserID, card.ID = userID, id
	if card.CreatedAt.IsZero() {
		card.CreatedAt = card.UpdatedAt
	}

	return s.repository.UpsertCard(ctx, card)
}

func (s *remoteDataService) DeleteDeck(ctx context.Context, userID, id string) error {
	return s.repository.DeleteDeck(ctx, userID, id)
}

func (s *remoteDataService) DeleteCard(ctx context.Context, userID, id string) error {
	return s.repository.DeleteCard(ctx, userID, id)
}
