// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-deck-sync/internal/adapter"
	"github.com/MKhiriev/go-deck-sync/models"
)

// SyncErrorKind tells whether a failed remote call may succeed when repeated.
type SyncErrorKind int

const (
	// SyncErrorTransient covers connectivity failures. They are retried.
	SyncErrorTransient SyncErrorKind = iota
	// SyncErrorPermanent covers rejections by the remote store (validation,
	// authorization, conflicts). They are never retried.
	SyncErrorPermanent
)

func (k SyncErrorKind) String() string {
	if k == SyncErrorPermanent {
		return "permanent"
	}
	return "transient"
}

// SyncError describes one failed step of a sync cycle. EntityType,
// EntityID and Operation are empty for download failures.
type SyncError struct {
	Kind       SyncErrorKind
	EntityType models.EntityType
	EntityID   string
	Operation  models.Operation
	// Attempts is the number of gateway calls made for the step.
	Attempts int
	Err      error
}

func (e *SyncError) Error() string {
	if e.EntityID == "" {
		return fmt.Sprintf("%s sync error after %d attempt(s): %v", e.Kind, e.Attempts, e.Err)
	}
	return fmt.Sprintf("%s sync error: %s %s %s after %d attempt(s): %v",
		e.Kind, e.Operation, e.EntityType, e.EntityID, e.Attempts, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// Is matches ErrTransientSync and ErrPermanentSync by kind.
func (e *SyncError) Is(target error) bool {
	switch target {
	case ErrTransientSync:
		return e.Kind == SyncErrorTransient
	case ErrPermanentSync:
		return e.Kind == SyncErrorPermanent
	}
	return false
}

// classifyGatewayError maps adapter errors onto sync error kinds. Every 4xx
// except 408 and 429 is permanent; retrying the same request cannot help.
func classifyGatewayError(err error) SyncErrorKind {
	switch {
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrRejected):
		return SyncErrorPermanent
	}
	return SyncErrorTransient
}
