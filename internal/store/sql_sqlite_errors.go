package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// sqliteErrorClassifier treats a busy or locked database file as transient.
type sqliteErrorClassifier struct{}

func (sqliteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return Retryable
		}
	}

	return NonRetryable
}
