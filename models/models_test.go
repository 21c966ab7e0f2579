package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckUpdate_Apply(t *testing.T) {
	deck := Deck{ID: "d1", Title: "old", CardCount: 3}

	title := "new"
	assert.Equal(t, "new", DeckUpdate{Title: &title}.Apply(deck).Title)
	assert.Equal(t, deck, DeckUpdate{}.Apply(deck), "an empty update changes nothing")
}

func TestCardUpdate_Apply(t *testing.T) {
	card := Card{ID: "c1", DeckID: "d1", Title: "t", Category: "cat", Content: "body"}

	empty, deck := "", "d2"
	got := CardUpdate{DeckID: &deck, Content: &empty}.Apply(card)

	assert.Equal(t, "d2", got.DeckID)
	assert.Equal(t, "", got.Content, "an explicit empty string is applied")
	assert.Equal(t, "t", got.Title)
	assert.Equal(t, "cat", got.Category)
}

func TestForRemote_DropsSyncFlags(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	deck := Deck{ID: "d1", LastUpdated: ts, SyncState: SyncState{Synced: true}}
	assert.Equal(t, SyncState{}, deck.ForRemote().SyncState)
	assert.True(t, deck.Synced, "the receiver is not modified")
	assert.Equal(t, ts, deck.Timestamp())

	card := Card{ID: "c1", UpdatedAt: ts, SyncState: SyncState{PendingChanges: true}}
	assert.Equal(t, SyncState{}, card.ForRemote().SyncState)
	assert.Equal(t, ts, card.Timestamp())
}

func TestSyncStateTransitions(t *testing.T) {
	for _, s := range []SyncState{{}, {Synced: true}, {PendingChanges: true}} {
		assert.Equal(t, SyncState{PendingChanges: true}, MarkDirty(s))
		assert.Equal(t, SyncState{Synced: true}, MarkClean(s))
	}
}

func TestDeck_JSONShape(t *testing.T) {
	deck := Deck{ID: "d1", Title: "Trip", CardCount: 1, UserID: "u1"}

	b, err := json.Marshal(deck)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(b, &fields))
	for _, key := range []string{"id", "title", "cardCount", "userId", "createdAt", "lastUpdated", "synced", "pendingChanges"} {
		assert.Contains(t, fields, key)
	}
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, EntityDeck.Valid())
	assert.True(t, EntityCard.Valid())
	assert.False(t, EntityType("note").Valid())

	assert.True(t, OperationDelete.Valid())
	assert.False(t, Operation("upsert").Valid())
	assert.True(t, OperationCreate.IsUpsert())
	assert.True(t, OperationUpdate.IsUpsert())
	assert.False(t, OperationDelete.IsUpsert())
}

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc123")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}
