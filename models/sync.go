// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncState carries the local-only synchronisation flags of a record.
//
// Synced implies !PendingChanges. The flags are never sent to the remote
// store.
type SyncState struct {
	// Synced is true when the local record matches the remote store.
	Synced bool `json:"synced"`

	// PendingChanges is true when the record holds local changes that have
	// not yet been confirmed by the remote store.
	PendingChanges bool `json:"pendingChanges"`
}

// MarkDirty is the state transition applied by every local mutation,
// whether or not the record was synced before.
func MarkDirty(SyncState) SyncState {
	return SyncState{Synced: false, PendingChanges: true}
}

// MarkClean is the state transition applied once the remote store has
// confirmed a record, or a record has been received from it.
func MarkClean(SyncState) SyncState {
	return SyncState{Synced: true, PendingChanges: false}
}

// SyncResult summarises one synchronisation cycle.
type SyncResult struct {
	// Success is false when any queue entry or phase of the cycle failed.
	Success bool `json:"success"`

	// ItemsSynced is the number of uploaded entries plus applied remote
	// records.
	ItemsSynced int `json:"itemsSynced"`

	// Uploaded is the number of queue entries confirmed by the remote store.
	Uploaded int `json:"uploaded"`

	// Downloaded is the number of remote records written locally.
	Downloaded int `json:"downloaded"`

	// Failed is the number of queue entries left in the queue after the
	// cycle because of errors.
	Failed int `json:"failed"`

	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}
