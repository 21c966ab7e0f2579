// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decks and cards accepted by the remote store
// before they reach the repository.
//
// A failed check returns one of the sentinel errors of this package; the
// service layer wraps it so the HTTP handler answers 400 and the sync client
// treats the write as permanent.
package validators

import "context"

// Validator checks a record. When fields are given only those fields are
// checked, otherwise the whole record is.
type Validator interface {
	Validate(ctx context.Context, record any, fields ...string) error
}
