package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-deck-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_TypedAccess(t *testing.T) {
	ctx := context.Background()
	decks := NewCollection[models.Deck](newOpenLocalStore(t), CollectionDecks)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	deck := models.Deck{
		ID: "d1", UserID: "u1", Title: "Verbs", CardCount: 2,
		CreatedAt: now, LastUpdated: now,
		SyncState: models.SyncState{PendingChanges: true},
	}

	_, err := decks.Put(ctx, deck)
	require.NoError(t, err)

	got, ok, err := decks.Get(ctx, "d1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, deck, got)

	_, ok, err = decks.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = decks.Has(ctx, "d1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = decks.Has(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = decks.PutMany(ctx, models.Deck{ID: "d2", UserID: "u2", Title: "Nouns"})
	require.NoError(t, err)

	byUser, err := decks.ByIndex(ctx, IndexUserID, "u2")
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "Nouns", byUser[0].Title)

	n, err := decks.CountByIndex(ctx, IndexUserID, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, decks.DeleteMany(ctx, "d1", "d2"))
	all, err := decks.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Equal(t, CollectionDecks, decks.Name())
}
