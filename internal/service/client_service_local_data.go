// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-deck-sync/internal/logger"
	"github.com/MKhiriev/go-deck-sync/internal/store"
	"github.com/MKhiriev/go-deck-sync/internal/utils"
	"github.com/MKhiriev/go-deck-sync/models"
)

type localDataService struct {
	decks *store.Collection[models.Deck]
	cards *store.Collection[models.Card]
	queue *store.SyncQueue

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewLocalDataService builds the deck and card service over the client
// storages. The returned value also implements [SyncDataSource].
func NewLocalDataService(storages *store.ClientStorages, logger *logger.Logger) ClientDataService {
	return &localDataService{
		decks:  storages.Decks,
		cards:  storages.Cards,
		queue:  storages.Queue,
		ids:    utils.NewUUIDGenerator(),
		now:    localNow,
		logger: logger,
	}
}

// localNow truncates to milliseconds so timestamps survive the round trip
// through the remote store unchanged.
func localNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *localDataService) CreateDeck(ctx context.Context, userID, title, id string) (models.Deck, error) {
	if id == "" {
		id = s.ids.Generate()
	} else if err := s.checkFreeID(ctx, "CreateDeck", s.decks, id); err != nil {
		return models.Deck{}, err
	}

	now := s.now()
	deck := models.Deck{
		ID:          id,
		Title:       title,
		UserID:      userID,
		CreatedAt:   now,
		LastUpdated: now,
	}
	deck.SyncState = models.MarkDirty(deck.SyncState)

	// orphan cards left by an interrupted deck delete still count
	count, err := s.cards.CountByIndex(ctx, store.IndexDeckID, id)
	if err != nil {
		return models.Deck{}, s.fail(ctx, "CreateDeck", fmt.Errorf("error counting cards of deck %s: %w", id, err))
	}
	deck.CardCount = count

	if _, err = s.decks.Put(ctx, deck); err != nil {
		return models.Deck{}, s.fail(ctx, "CreateDeck", fmt.Errorf("error saving deck: %w", err))
	}

	if err = s.enqueue(ctx, models.EntityDeck, id, models.OperationCreate, userID); err != nil {
		return models.Deck{}, s.fail(ctx, "CreateDeck", err)
	}

	return deck, nil
}

func (s *localDataService) UpdateDeck(ctx context.Context, id string, upd models.DeckUpdate) (models.Deck, error) {
	deck, err := s.GetDeck(ctx, id)
	if err != nil {
		return models.Deck{}, err
	}

	deck = upd.Apply(deck)
	deck.LastUpdated = s.now()
	deck.SyncState = models.MarkDirty(deck.SyncState)

	if _, err = s.decks.Put(ctx, deck); err != nil {
		return models.Deck{}, s.fail(ctx, "UpdateDeck", fmt.Errorf("error saving deck %s: %w", id, err))
	}

	if err = s.enqueue(ctx, models.EntityDeck, id, models.OperationUpdate, deck.UserID); err != nil {
		return models.Deck{}, s.fail(ctx, "UpdateDeck", err)
	}

	return deck, nil
}

func (s *localDataService) DeleteDeck(ctx context.Context, id string) error {
	deck, err := s.GetDeck(ctx, id)
	if err != nil {
		return err
	}

	cards, err := s.cards.ByIndex(ctx, store.IndexDeckID, id)
	if err != nil {
		return s.fail(ctx, "DeleteDeck", fmt.Errorf("error loading cards of deck %s: %w", id, err))
	}

	cardIDs := make([]string, 0, len(cards))
	for _, card := range cards {
		cardIDs = append(cardIDs, card.ID)
	}

	if err = s.cards.DeleteMany(ctx, cardIDs...); err != nil {
		return s.fail(ctx, "DeleteDeck", fmt.Errorf("error deleting cards of deck %s: %w", id, err))
	}

	if err = s.queue.RemoveForEntities(ctx, append([]string{id}, cardIDs...)...); err != nil {
		return s.fail(ctx, "DeleteDeck", fmt.Errorf("error removing queued entries of deck %s: %w", id, err))
	}

	if err = s.decks.Delete(ctx, id); err != nil {
		return s.fail(ctx, "DeleteDeck", fmt.Errorf("error deleting deck %s: %w", id, err))
	}

	// the remote store removes the cards together with the deck
	if err = s.enqueue(ctx, models.EntityDeck, id, models.OperationDelete, deck.UserID); err != nil {
		return s.fail(ctx, "DeleteDeck", err)
	}

	return nil
}

func (s *localDataService) CreateCard(ctx context.Context, userID, deckID, title, category, content, id string) (models.Card, error) {
	if _, err := s.GetDeck(ctx, deckID); err != nil {
		return models.Card{}, err
	}

	if id == "" {
		id = s.ids.Generate()
	} else if err := s.checkFreeID(ctx, "CreateCard", s.cards, id); err != nil {
		return models.Card{}, err
	}

	now := s.now()
	card := models.Card{
		ID:        id,
		DeckID:    deckID,
		Title:     title,
		Category:  category,
		Content:   content,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	card.SyncState = models.MarkDirty(card.SyncState)

	if _, err := s.cards.Put(ctx, card); err != nil {
		return models.Card{}, s.fail(ctx, "CreateCard", fmt.Errorf("error saving card: %w", err))
	}

	if err := s.RecountCards(ctx, deckID); err != nil {
		return models.Card{}, err
	}

	if err := s.enqueue(ctx, models.EntityCard, id, models.OperationCreate, userID); err != nil {
		return models.Card{}, s.fail(ctx, "CreateCard", err)
	}

	return card, nil
}

func (s *localDataService) UpdateCard(ctx context.Context, id string, upd models.CardUpdate) (models.Card, error) {
	card, err := s.GetCard(ctx, id)
	if err != nil {
		return models.Card{}, err
	}

	fromDeck := card.DeckID
	moved := upd.DeckID != nil && *upd.DeckID != fromDeck
	if moved {
		if _, err = s.GetDeck(ctx, *upd.DeckID); err != nil {
			return models.Card{}, err
		}
	}

	card = upd.Apply(card)
	card.UpdatedAt = s.now()
	card.SyncState = models.MarkDirty(card.SyncState)

	if _, err = s.cards.Put(ctx, card); err != nil {
		return models.Card{}, s.fail(ctx, "UpdateCard", fmt.Errorf("error saving card %s: %w", id, err))
	}

	if moved {
		if err = s.RecountCards(ctx, fromDeck); err != nil {
			return models.Card{}, err
		}
		if err = s.RecountCards(ctx, card.DeckID); err != nil {
			return models.Card{}, err
		}
	}

	if err = s.enqueue(ctx, models.EntityCard, id, models.OperationUpdate, card.UserID); err != nil {
		return models.Card{}, s.fail(ctx, "UpdateCard", err)
	}

	return card, nil
}

func (s *localDataService) DeleteCard(ctx context.Context, id string) error {
	card, err := s.GetCard(ctx, id)
	if err != nil {
		return err
	}

	if err = s.cards.Delete(ctx, id); err != nil {
		return s.fail(ctx, "DeleteCard", fmt.Errorf("error deleting card %s: %w", id, err))
	}

	if err = s.queue.RemoveForEntities(ctx, id); err != nil {
		return s.fail(ctx, "DeleteCard", fmt.Errorf("error removing queued entries of card %s: %w", id, err))
	}

	if err = s.RecountCards(ctx, card.DeckID); err != nil {
		return err
	}

	if err = s.enqueue(ctx, models.EntityCard, id, models.OperationDelete, card.UserID); err != nil {
		return s.fail(ctx, "DeleteCard", err)
	}

	return nil
}

func (s *localDataService) GetDeck(ctx context.Context, id string) (models.Deck, error) {
	deck, ok, err := s.decks.Get(ctx, id)
	if err != nil {
		return models.Deck{}, s.fail(ctx, "GetDeck", fmt.Errorf("error loading deck %s: %w", id, err))
	}
	if !ok {
		return models.Deck{}, fmt.Errorf("deck %s: %w", id, ErrNotFound)
	}

	return deck, nil
}

func (s *localDataService) GetCard(ctx context.Context, id string) (models.Card, error) {
	card, ok, err := s.cards.Get(ctx, id)
	if err != nil {
		return models.Card{}, s.fail(ctx, "GetCard", fmt.Errorf("error loading card %s: %w", id, err))
	}
	if !ok {
		return models.Card{}, fmt.Errorf("card %s: %w", id, ErrNotFound)
	}

	return card, nil
}

func (s *localDataService) GetAllDecks(ctx context.Context, userID string) ([]models.Deck, error) {
	decks, err := s.decks.ByIndex(ctx, store.IndexUserID, userID)
	if err != nil {
		return nil, s.fail(ctx, "GetAllDecks", fmt.Errorf("error loading decks of user %s: %w", userID, err))
	}

	slices.SortStableFunc(decks, func(a, b models.Deck) int {
		return b.LastUpdated.Compare(a.LastUpdated)
	})

	return decks, nil
}

func (s *localDataService) GetAllCards(ctx context.Context, userID string) ([]models.Card, error) {
	cards, err := s.cards.ByIndex(ctx, store.IndexUserID, userID)
	if err != nil {
		return nil, s.fail(ctx, "GetAllCards", fmt.Errorf("error loading cards of user %s: %w", userID, err))
	}

	return cards, nil
}

func (s *localDataService) GetCardsByDeckID(ctx context.Context, deckID string) ([]models.Card, error) {
	cards, err := s.cards.ByIndex(ctx, store.IndexDeckID, deckID)
	if err != nil {
		return nil, s.fail(ctx, "GetCardsByDeckID", fmt.Errorf("error loading cards of deck %s: %w", deckID, err))
	}

	return cards, nil
}

func (s *localDataService) GetSyncQueue(ctx context.Context) ([]models.SyncQueueEntry, error) {
	return s.queue.All(ctx)
}

func (s *localDataService) ClearSyncQueue(ctx context.Context) error {
	return s.queue.Clear(ctx)
}

func (s *localDataService) RemoveSyncQueueEntry(ctx context.Context, id string) error {
	return s.queue.Remove(ctx, id)
}

func (s *localDataService) HasQueuedEntries(ctx context.Context, entityID string) (bool, error) {
	entries, err := s.queue.ForEntity(ctx, entityID)
	if err != nil {
		return false, err
	}

	return len(entries) > 0, nil
}

func (s *localDataService) MarkSynced(ctx context.Context, entityType models.EntityType, id string) error {
	switch entityType {
	case models.EntityDeck:
		deck, ok, err := s.decks.Get(ctx, id)
		if err != nil || !ok {
			return err
		}
		deck.SyncState = models.MarkClean(deck.SyncState)
		_, err = s.decks.Put(ctx, deck)
		return err

	case models.EntityCard:
		card, ok, err := s.cards.Get(ctx, id)
		if err != nil || !ok {
			return err
		}
		card.SyncState = models.MarkClean(card.SyncState)
		_, err = s.cards.Put(ctx, card)
		return err
	}

	return fmt.Errorf("unknown entity type %q: %w", entityType, ErrInvalidDataProvided)
}

func (s *localDataService) ApplyRemoteDeck(ctx context.Context, deck models.Deck) error {
	deck.SyncState = models.MarkClean(deck.SyncState)
	if _, err := s.decks.Put(ctx, deck); err != nil {
		return s.fail(ctx, "ApplyRemoteDeck", fmt.Errorf("error saving remote deck %s: %w", deck.ID, err))
	}

	return nil
}

func (s *localDataService) ApplyRemoteCard(ctx context.Context, card models.Card) error {
	card.SyncState = models.MarkClean(card.SyncState)
	if _, err := s.cards.Put(ctx, card); err != nil {
		return s.fail(ctx, "ApplyRemoteCard", fmt.Errorf("error saving remote card %s: %w", card.ID, err))
	}

	return nil
}

func (s *localDataService) DropDeck(ctx context.Context, id string) error {
	return s.decks.Delete(ctx, id)
}

func (s *localDataService) DropCard(ctx context.Context, id string) error {
	return s.cards.Delete(ctx, id)
}

func (s *localDataService) RequeueUpdate(ctx context.Context, entityType models.EntityType, id, userID string) error {
	return s.enqueue(ctx, entityType, id, models.OperationUpdate, userID)
}

func (s *localDataService) RecountCards(ctx context.Context, deckID string) error {
	deck, ok, err := s.decks.Get(ctx, deckID)
	if err != nil {
		return s.fail(ctx, "RecountCards", fmt.Errorf("error loading deck %s: %w", deckID, err))
	}
	if !ok {
		return nil
	}

	count, err := s.cards.CountByIndex(ctx, store.IndexDeckID, deckID)
	if err != nil {
		return s.fail(ctx, "RecountCards", fmt.Errorf("error counting cards of deck %s: %w", deckID, err))
	}
	if deck.CardCount == count {
		return nil
	}

	deck.CardCount = count
	if _, err = s.decks.Put(ctx, deck); err != nil {
		return s.fail(ctx, "RecountCards", fmt.Errorf("error saving deck %s: %w", deckID, err))
	}

	return nil
}

func (s *localDataService) enqueue(ctx context.Context, entityType models.EntityType, id string, op models.Operation, userID string) error {
	_, err := s.queue.Enqueue(ctx, models.SyncQueueEntry{
		EntityType: entityType,
		EntityID:   id,
		Operation:  op,
		UserID:     userID,
	})
	return err
}

type idLookup interface {
	Has(ctx context.Context, id string) (bool, error)
}

// checkFreeID returns ErrAlreadyExists when id is taken in the collection.
func (s *localDataService) checkFreeID(ctx context.Context, funcName string, c idLookup, id string) error {
	taken, err := c.Has(ctx, id)
	if err != nil {
		return s.fail(ctx, funcName, fmt.Errorf("error checking id %s: %w", id, err))
	}
	if taken {
		return fmt.Errorf("%s: %w", id, ErrAlreadyExists)
	}
	return nil
}

func (s *localDataService) fail(_ context.Context, funcName string, err error) error {
	s.logger.Err(err).Str("func", "localDataService."+funcName).Msg("local data operation failed")
	return err
}
