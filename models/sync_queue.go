// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncQueueEntry is one outstanding local mutation that has not yet been
// confirmed by the remote store. Entries are created by the local data
// service on every mutating call and removed by the sync manager once the
// matching remote write succeeds.
type SyncQueueEntry struct {
	ID         string     `json:"id"`
	EntityType EntityType `json:"entityType"`
	EntityID   string     `json:"entityId"`
	Operation  Operation  `json:"operation"`
	Timestamp  time.Time  `json:"timestamp"`

	// UserID is the owner of the mutated entity. It lets a delete be
	// replayed after the local record is gone.
	UserID string `json:"userId,omitempty"`
}
