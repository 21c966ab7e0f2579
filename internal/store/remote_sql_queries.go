package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-deck-sync/models"
)

var postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	deckColumns = []string{"id", "user_id", "title", "card_count", "created_at", "last_updated"}
	cardColumns = []string{"id", "deck_id", "user_id", "title", "category", "content", "created_at", "updated_at"}
)

func buildSelectDecksQuery(userID string) (string, []any, error) {
	return postgresBuilder.
		Select(deckColumns...).
		From("decks").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildSelectCardsQuery(userID string) (string, []any, error) {
	return postgresBuilder.
		Select(cardColumns...).
		From("cards").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildUpsertDeckQuery(deck models.Deck) (string, []any, error) {
	return postgresBuilder.
		Insert("decks").
		Columns(deckColumns...).
		Values(deck.ID, deck.UserID, deck.Title, deck.CardCount, deck.CreatedAt, deck.LastUpdated).
		Suffix(`ON CONFLICT (user_id, id) DO UPDATE SET
			title = EXCLUDED.title,
			card_count = EXCLUDED.card_count,
			last_updated = EXCLUDED.last_updated`).
		ToSql()
}

func buildUpsertCardQuery(card models.Card) (string, []any, error) {
	return postgresBuilder.
		Insert("cards").
		Columns(cardColumns...).
		Values(card.ID, card.DeckID, card.UserID, card.Title, card.Category, card.Content, card.CreatedAt, card.UpdatedAt).
		Suffix(`ON CONFLICT (user_id, id) DO UPDATE SET
			deck_id = EXCLUDED.deck_id,
			title = EXCLUDED.title,
			category = EXCLUDED.category,
			content = EXCLUDED.content,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
}

func buildDeleteDeckQuery(userID, id string) (string, []any, error) {
	return postgresBuilder.
		Delete("decks").
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}

func buildDeleteDeckCardsQuery(userID, deckID string) (string, []any, error) {
	return postgresBuilder.
		Delete("cards").
		Where(sq.Eq{"user_id": userID, "deck_id": deckID}).
		ToSql()
}

func buildDeleteCardQuery(userID, id string) (string, []any, error) {
	return postgresBuilder.
		Delete("cards").
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
}
