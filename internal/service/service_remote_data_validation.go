package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deck-sync/internal/validators"
	"github.com/MKhiriev/go-deck-sync/models"
)

type RemoteDataValidationService struct {
	inner     RemoteDataService
	validator validators.Validator
}

func NewRemoteDataValidationService() RemoteDataServiceWrapper {
	return &RemoteDataValidationService{
		validator: validators.NewDeckCardValidator(),
	}
}

func (v *RemoteDataValidationService) GetDecks(ctx context.Context, userID string) ([]models.Deck, error) {
	if err := v.checkKeys(userID); err != nil {
		return nil, err
	}
	return v.inner.GetDecks(ctx, userID)
}

func (v *RemoteDataValidationService) GetCards(ctx context.Context, userID string) ([]models.Card, error) {
	if err := v.checkKeys(userID); err != nil {
		return nil, err
	}
	return v.inner.GetCards(ctx, userID)
}

func (v *RemoteDataValidationService) SetDeck(ctx context.Context, userID, id string, deck models.Deck) error {
	// path parameters are authoritative
	deck.UserID, deck.ID = userID, id
	if err := v.validator.Validate(ctx, deck); err != nil {
		return fmt.Errorf("%w: deck %s: %w", ErrInvalidDataProvided, id, err)
	}

	return v.inner.SetDeck(ctx, userID, id, deck)
}

func (v *RemoteDataValidationService) SetCard(ctx context.Context, userID, id string, card models.Card) error {
	card.UserID, card.ID = userID, id
	if err := v.validator.Validate(ctx, card); err != nil {
		return fmt.Errorf("%w: card %s: %w", ErrInvalidDataProvided, id, err)
	}

	return v.inner.SetCard(ctx, userID, id, card)
}

func (v *RemoteDataValidationService) DeleteDeck(ctx context.Context, userID, id string) error {
	if err := v.checkKeys(userID, id); err != nil {
		return err
	}
	return v.inner.DeleteDeck(ctx, userID, id)
}

func (v *RemoteDataValidationService) DeleteCard(ctx context.Context, userID, id string) error {
	if err := v.checkKeys(userID, id); err != nil {
		return err
	}
	return v.inner.DeleteCard(ctx, userID, id)
}

func (v *RemoteDataValidationService) Wrap(wrapped RemoteDataService) RemoteDataService {
	v.inner = wrapped
	return v
}

// checkKeys validates the identifiers taken from the request path: the
// user id first, then the record id.
func (v *RemoteDataValidationService) checkKeys(userID string, id ...string) error {
	if userID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}
	for _, value := range id {
		if value == "" {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidID)
		}
	}
	return nil
}
