// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EntityType names the kind of domain record a [SyncQueueEntry] refers to.
type EntityType string

const (
	// EntityDeck marks queue entries that refer to a [Deck].
	EntityDeck EntityType = "deck"

	// EntityCard marks queue entries that refer to a [Card].
	EntityCard EntityType = "card"
)

// Valid reports whether t is one of the known entity types.
func (t EntityType) Valid() bool {
	return t == EntityDeck || t == EntityCard
}

// Operation is the kind of local mutation recorded in the sync queue.
type Operation string

const (
	// OperationCreate is recorded when a record is created locally.
	OperationCreate Operation = "create"

	// OperationUpdate is recorded when an existing record is modified locally.
	OperationUpdate Operation = "update"

	// OperationDelete is recorded when a record is deleted locally.
	OperationDelete Operation = "delete"
)

// Valid reports whether o is one of the known operations.
func (o Operation) Valid() bool {
	switch o {
	case OperationCreate, OperationUpdate, OperationDelete:
		return true
	}
	return false
}

// IsUpsert reports whether o is replayed against the remote store as an
// upsert (create and update) rather than a delete.
func (o Operation) IsUpsert() bool {
	return o == OperationCreate || o == OperationUpdate
}
