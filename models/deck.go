// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Deck is a named collection of cards owned by a single user.
//
// CardCount is derived: it always equals the number of cards whose DeckID
// equals the deck's ID. It is maintained by the local data service and is
// never accepted from partial updates.
type Deck struct {
	// ID is the client-generated identifier of the deck.
	ID string `json:"id"`

	// Title is the human-readable name of the deck.
	Title string `json:"title"`

	// CardCount is the number of cards that belong to the deck.
	CardCount int `json:"cardCount"`

	// UserID is the owner of the deck.
	UserID string `json:"userId"`

	// CreatedAt is the moment the deck was created.
	CreatedAt time.Time `json:"createdAt"`

	// LastUpdated is the moment of the last modification. It is the
	// timestamp compared by last-write-wins conflict resolution.
	LastUpdated time.Time `json:"lastUpdated"`

	SyncState
}

// Timestamp returns the value compared during conflict resolution.
func (d Deck) Timestamp() time.Time {
	return d.LastUpdated
}

// ForRemote returns a copy of d without local-only sync flags.
func (d Deck) ForRemote() Deck {
	d.SyncState = SyncState{}
	return d
}

// DeckUpdate is a partial update of a deck. Only non-nil fields are applied.
type DeckUpdate struct {
	Title *string `json:"title,omitempty"`
}

// Apply merges the non-nil fields of u into d.
func (u DeckUpdate) Apply(d Deck) Deck {
	if u.Title != nil {
		d.Title = *u.Title
	}
	return d
}
