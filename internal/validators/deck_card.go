package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-deck-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the client-generated identifier of a deck or card.
	FieldID = "id"

	// FieldUserID targets the owner of a deck or card.
	FieldUserID = "user_id"

	// FieldDeckID targets the parent deck of a card.
	FieldDeckID = "deck_id"

	// FieldTitle targets the human-readable title.
	FieldTitle = "title"

	// FieldContent targets the card body.
	FieldContent = "content"

	// FieldCardCount targets the derived card count of a deck.
	FieldCardCount = "card_count"

	// FieldTimestamp targets LastUpdated of a deck or UpdatedAt of a card,
	// the values compared by last-write-wins.
	FieldTimestamp = "timestamp"
)

const (
	maxTitleLength   = 256
	maxContentLength = 64 * 1024
)

// DeckCardValidator implements [Validator] for models.Deck and models.Card,
// in value and pointer form.
type DeckCardValidator struct {
}

// NewDeckCardValidator constructs a DeckCardValidator.
func NewDeckCardValidator() Validator {
	return &DeckCardValidator{}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for anything but decks and cards. When no fields are given every field of
// the record is checked.
func (v *DeckCardValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Deck:
		return v.validateDeck(ctx, value, fields...)
	case *models.Deck:
		return v.validateDeck(ctx, *value, fields...)

	case models.Card:
		return v.validateCard(ctx, value, fields...)
	case *models.Card:
		return v.validateCard(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DeckCardValidator) validateDeck(_ context.Context, deck models.Deck, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldTitle, FieldCardCount, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if isBlank(deck.ID) {
				return ErrInvalidID
			}
		case FieldUserID:
			if isBlank(deck.UserID) {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if err := validateTitle(deck.Title); err != nil {
				return err
			}
		case FieldCardCount:
			if deck.CardCount < 0 {
				return ErrInvalidCardCount
			}
		case FieldTimestamp:
			if deck.LastUpdated.IsZero() {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DeckCardValidator) validateCard(_ context.Context, card models.Card, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldDeckID, FieldTitle, FieldContent, FieldTimestamp}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if isBlank(card.ID) {
				return ErrInvalidID
			}
		case FieldUserID:
			if isBlank(card.UserID) {
				return ErrInvalidUserID
			}
		case FieldDeckID:
			if isBlank(card.DeckID) {
				return ErrInvalidDeckID
			}
		case FieldTitle:
			if err := validateTitle(card.Title); err != nil {
				return err
			}
		case FieldContent:
			if len(card.Content) > maxContentLength {
				return ErrContentTooLong
			}
		case FieldTimestamp:
			if card.UpdatedAt.IsZero() {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTitle(title string) error {
	if isBlank(title) {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
