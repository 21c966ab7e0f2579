// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Card is a single flashcard. It belongs to exactly one [Deck] through
// DeckID; the relation is enforced by the local data service, not by the
// store.
type Card struct {
	ID       string `json:"id"`
	DeckID   string `json:"deckId"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
	UserID   string `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp compared by last-write-wins conflict
	// resolution.
	UpdatedAt time.Time `json:"updatedAt"`

	SyncState
}

// Timestamp returns the value compared during conflict resolution.
func (c Card) Timestamp() time.Time {
	return c.UpdatedAt
}

// ForRemote returns a copy of c without local-only sync flags.
func (c Card) ForRemote() Card {
	c.SyncState = SyncState{}
	return c
}

// CardUpdate is a partial update of a card. Only non-nil fields are applied.
// Setting DeckID moves the card to another deck.
type CardUpdate struct {
	DeckID   *string `json:"deckId,omitempty"`
	Title    *string `json:"title,omitempty"`
	Category *string `json:"category,omitempty"`
	Content  *string `json:"content,omitempty"`
}

// Apply merges the non-nil fields of u into c.
func (u CardUpdate) Apply(c Card) Card {
	if u.DeckID != nil {
		c.DeckID = *u.DeckID
	}
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Category != nil {
		c.Category = *u.Category
	}
	if u.Content != nil {
		c.Content = *u.Content
	}
	return c
}
