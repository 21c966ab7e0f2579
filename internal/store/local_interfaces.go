package store

import "context"

//go:generate mockgen -source=local_interfaces.go -destination=../mock/local_store_mock.go -package=mock

// LocalStore is a durable per-collection record store with secondary
// indexes.
//
// Records are accepted as any JSON-encodable value and returned as raw JSON.
// Writing an existing id overwrites the record in place and keeps its
// insertion order. Every single call runs in its own transaction and every
// batch call is one transaction; there is no atomicity across collections.
type LocalStore interface {
	// Open prepares the store for use. Calling it on an open store is a no-op.
	Open(ctx context.Context) error
	// Close releases the store. Any later call fails with ErrStoreClosed.
	Close() error

	Get(ctx context.Context, collection, id string) ([]byte, bool, error)
	GetAll(ctx context.Context, collection string) ([][]byte, error)
	GetAllByIndex(ctx context.Context, collection, index, value string) ([][]byte, error)

	Put(ctx context.Context, collection string, record any) (string, error)
	PutMany(ctx context.Context, collection string, records ...any) ([]string, error)

	Delete(ctx context.Context, collection, id string) error
	DeleteMany(ctx context.Context, collection string, ids ...string) error
	Clear(ctx context.Context, collection string) error

	Count(ctx context.Context, collection string) (int, error)
	CountByIndex(ctx context.Context, collection, index, value string) (int, error)
}
