package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-deck-sync/internal/logger"
	"github.com/MKhiriev/go-deck-sync/models"
)

// remoteRepository is the PostgreSQL-backed implementation of
// [RemoteRepository]. Every method obtains a context-scoped logger via
// [logger.FromContext] so failures are traced with the request id.
type remoteRepository struct {
	*DB
	logger *logger.Logger
}

// NewRemoteRepository constructs a [RemoteRepository] backed by db.
func NewRemoteRepository(db *DB, logger *logger.Logger) RemoteRepository {
	logger.Debug().Msg("creating remote repository")
	return &remoteRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *remoteRepository) GetDecks(ctx context.Context, userID string) ([]models.Deck, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDecksQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "remoteRepository.GetDecks").Str("user_id", userID).Msg("failed to query decks")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	decks := make([]models.Deck, 0)
	for rows.Next() {
		var deck models.Deck
		if err = rows.Scan(&deck.ID, &deck.UserID, &deck.Title, &deck.CardCount, &deck.CreatedAt, &deck.LastUpdated); err != nil {
			log.Err(err).Str("func", "remoteRepository.GetDecks").Str("user_id", userID).Msg("failed to scan deck row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		decks = append(decks, deck)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "remoteRepository.GetDecks").Str("user_id", userID).Msg("error iterating deck rows")
		return nil, r.wrap(ErrScanningRows, err)
	}

	return decks, nil
}

func (r *remoteRepository) GetCards(ctx context.Context, userID string) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCardsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "remoteRepository.GetCards").Str("user_id", userID).Msg("failed to query cards")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	cards := make([]models.Card, 0)
	for rows.Next() {
		var card models.Card
		if err = rows.Scan(&card.ID, &card.DeckID, &card.UserID, &card.Title, &card.Category, &card.Content, &card.CreatedAt, &card.UpdatedAt); err != nil {
			log.Err(err).Str("func", "remoteRepository.GetCards").Str("user_id", userID).Msg("failed to scan card row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		cards = append(cards, card)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "remoteRepository.GetCards").Str("user_id", userID).Msg("error iterating card rows")
		return nil, r.wrap(ErrScanningRows, err)
	}

	return cards, nil
}

func (r *remoteRepository) UpsertDeck(ctx context.Context, deck models.Deck) error {
	query, args, err := buildUpsertDeckQuery(deck)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteRepository.UpsertDeck").
			Str("user_id", deck.UserID).
			Str("id", deck.ID).
			Msg("failed to upsert deck")
		return r.wrap(ErrExecutingStatement, err)
	}

	return nil
}

func (r *remoteRepository) UpsertCard(ctx context.Context, card models.Card) error {
	query, args, err := buildUpsertCardQuery(card)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteRepository.UpsertCard").
			Str("user_id", card.UserID).
			Str("id", card.ID).
			Msg("failed to upsert card")
		return r.wrap(ErrExecutingStatement, err)
	}

	return nil
}

// DeleteDeck removes the deck's cards and then the deck in one transaction.
// A missing deck yields [ErrRecordNotFound] and nothing is removed.
func (r *remoteRepository) DeleteDeck(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "remoteRepository.DeleteDeck").Msg("failed to begin transaction")
		return r.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteDeckCardsQuery(userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "remoteRepository.DeleteDeck").Str("id", id).Msg("failed to delete deck cards")
		return r.wrap(ErrExecutingStatement, err)
	}
	cardsDeleted, _ := res.RowsAffected()

	query, args, err = buildDeleteDeckQuery(userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	res, err = tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "remoteRepository.DeleteDeck").Str("id", id).Msg("failed to delete deck")
		return r.wrap(ErrExecutingStatement, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrRecordNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "remoteRepository.DeleteDeck").Msg("failed to commit transaction")
		return r.wrap(ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "remoteRepository.DeleteDeck").
		Str("id", id).
		Int64("cards_deleted", cardsDeleted).
		Msg("deck deleted")

	return nil
}

func (r *remoteRepository) DeleteCard(ctx context.Context, userID, id string) error {
	query, args, err := buildDeleteCardQuery(userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteRepository.DeleteCard").
			Str("id", id).
			Msg("failed to delete card")
		return r.wrap(ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// wrap attaches op to err and marks retryable driver failures with
// [ErrStorageUnavailable].
func (r *remoteRepository) wrap(op, err error) error {
	if r.errorClassificator != nil && r.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, op, err)
	}

	if errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, op, err)
	}

	return fmt.Errorf("%w: %w", op, err)
}
