package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-deck-sync/internal/utils"
	"github.com/MKhiriev/go-deck-sync/models"
)

// SyncQueue is the FIFO log of local mutations that still have to be
// replayed against the remote store. It is stored in the syncQueue
// collection; entries come back in insertion order.
type SyncQueue struct {
	entries *Collection[models.SyncQueueEntry]
	ids     *utils.UUIDGenerator
	now     func() time.Time
}

// NewSyncQueue wraps the syncQueue collection of store.
func NewSyncQueue(store LocalStore) *SyncQueue {
	return &SyncQueue{
		entries: NewCollection[models.SyncQueueEntry](store, CollectionSyncQueue),
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
	}
}

// Enqueue appends entry to the queue. A missing ID is generated and a zero
// Timestamp is set to the current time. The stored entry is returned.
func (q *SyncQueue) Enqueue(ctx context.Context, entry models.SyncQueueEntry) (models.SyncQueueEntry, error) {
	if entry.ID == "" {
		entry.ID = q.ids.Generate()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = q.now().UTC()
	}

	if _, err := q.entries.Put(ctx, entry); err != nil {
		return models.SyncQueueEntry{}, fmt.Errorf("error enqueueing %s %s %s: %w", entry.Operation, entry.EntityType, entry.EntityID, err)
	}

	return entry, nil
}

// All returns the queued entries in FIFO order.
func (q *SyncQueue) All(ctx context.Context) ([]models.SyncQueueEntry, error) {
	return q.entries.All(ctx)
}

// ForEntity returns the entries queued for one deck or card, oldest first.
func (q *SyncQueue) ForEntity(ctx context.Context, entityID string) ([]models.SyncQueueEntry, error) {
	return q.entries.ByIndex(ctx, IndexEntityID, entityID)
}

func (q *SyncQueue) Remove(ctx context.Context, id string) error {
	return q.entries.Delete(ctx, id)
}

func (q *SyncQueue) RemoveMany(ctx context.Context, ids ...string) error {
	return q.entries.DeleteMany(ctx, ids...)
}

// RemoveForEntities drops every entry that refers to one of entityIDs.
func (q *SyncQueue) RemoveForEntities(ctx context.Context, entityIDs ...string) error {
	var ids []string
	for _, entityID := range entityIDs {
		entries, err := q.ForEntity(ctx, entityID)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			ids = append(ids, entry.ID)
		}
	}

	return q.RemoveMany(ctx, ids...)
}

func (q *SyncQueue) Clear(ctx context.Context) error {
	return q.entries.Clear(ctx)
}

// Len returns the number of queued entries.
func (q *SyncQueue) Len(ctx context.Context) (int, error) {
	return q.entries.Count(ctx)
}
