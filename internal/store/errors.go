package store

import "errors"

// Sentinel errors of the local record store. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrStoreClosed is returned by every operation of a store that has not
	// been opened yet or has already been closed.
	ErrStoreClosed = errors.New("local store is closed")

	// ErrValidation is returned when a record misses a required field of its
	// collection schema. The wrapping error names the collection and field.
	ErrValidation = errors.New("record validation failed")

	// ErrUnknownCollection is returned when an operation names a collection
	// without a registered schema.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrUnknownIndex is returned when a lookup names an index that is not
	// declared by the collection schema.
	ErrUnknownIndex = errors.New("unknown index")
)

// Sentinel errors of the remote repository.
var (
	// ErrRecordNotFound is returned when a remote deck or card does not exist.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrStorageUnavailable wraps a retryable database failure so the caller
	// can answer with a transient status.
	ErrStorageUnavailable = errors.New("storage is temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning a result row fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingRecord is returned when a record cannot be converted to or
	// from its JSON representation.
	ErrEncodingRecord = errors.New("failed to encode record")
)
