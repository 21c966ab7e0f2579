// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport boundary between the sync engine and
// the remote deck and card store.
//
// The primary abstraction is [RemoteDataGateway]; the package ships a REST
// implementation ([NewHTTPRemoteGateway]). Status codes are mapped to the
// sentinel values in errors.go by mapHTTPError so callers can use
// [errors.Is] without knowing the protocol.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-deck-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_gateway_mock.go -package=mock

// RemoteDataGateway is the remotely hosted, authoritative copy of a user's
// decks and cards.
type RemoteDataGateway interface {
	// GetUserDecks returns every deck of userID.
	GetUserDecks(ctx context.Context, userID string) ([]models.Deck, error)

	// GetUserCards returns every card of userID.
	GetUserCards(ctx context.Context, userID string) ([]models.Card, error)

	// SetDeck creates or overwrites the deck id of userID.
	SetDeck(ctx context.Context, userID, id string, deck models.Deck) error

	// DeleteDeck removes a deck; the remote store removes its cards too.
	// Deleting a deck that does not exist succeeds.
	DeleteDeck(ctx context.Context, userID, id string) error

	// SetCard creates or overwrites the card id of userID.
	SetCard(ctx context.Context, userID, id string, card models.Card) error

	// DeleteCard removes a card. Deleting a card that does not exist
	// succeeds.
	DeleteCard(ctx context.Context, userID, id string) error

	// Ping reports whether the remote store is reachable.
	Ping(ctx context.Context) error
}
