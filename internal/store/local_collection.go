package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection is a typed view of one collection of a [LocalStore]. Records
// are encoded to and decoded from JSON.
type Collection[T any] struct {
	store LocalStore
	name  string
}

// NewCollection returns a typed view of the named collection.
func NewCollection[T any](store LocalStore, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var zero T

	data, ok, err := c.store.Get(ctx, c.name, id)
	if err != nil || !ok {
		return zero, false, err
	}

	item, err := c.decode(data)
	if err != nil {
		return zero, false, err
	}

	return item, true, nil
}

// All returns every record in insertion order.
// Has reports whether id exists without decoding the record.
func (c *Collection[T]) Has(ctx context.Context, id string) (bool, error) {
	_, ok, err := c.store.Get(ctx, c.name, id)
	return ok, err
}

func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	data, err := c.store.GetAll(ctx, c.name)
	if err != nil {
		return nil, err
	}

	return c.decodeAll(data)
}

// ByIndex returns the records whose index field equals value, in insertion
// order.
func (c *Collection[T]) ByIndex(ctx context.Context, index, value string) ([]T, error) {
	data, err := c.store.GetAllByIndex(ctx, c.name, index, value)
	if err != nil {
		return nil, err
	}

	return c.decodeAll(data)
}

func (c *Collection[T]) Put(ctx context.Context, item T) (string, error) {
	return c.store.Put(ctx, c.name, item)
}

func (c *Collection[T]) PutMany(ctx context.Context, items ...T) ([]string, error) {
	records := make([]any, len(items))
	for i, item := range items {
		records[i] = item
	}

	return c.store.PutMany(ctx, c.name, records...)
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.store.Delete(ctx, c.name, id)
}

func (c *Collection[T]) DeleteMany(ctx context.Context, ids ...string) error {
	return c.store.DeleteMany(ctx, c.name, ids...)
}

func (c *Collection[T]) Clear(ctx context.Context) error {
	return c.store.Clear(ctx, c.name)
}

func (c *Collection[T]) Count(ctx context.Context) (int, error) {
	return c.store.Count(ctx, c.name)
}

func (c *Collection[T]) CountByIndex(ctx context.Context, index, value string) (int, error) {
	return c.store.CountByIndex(ctx, c.name, index, value)
}

func (c *Collection[T]) decode(data []byte) (T, error) {
	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return item, fmt.Errorf("%w: collection %s: %w", ErrEncodingRecord, c.name, err)
	}

	return item, nil
}

func (c *Collection[T]) decodeAll(data [][]byte) ([]T, error) {
	items := make([]T, 0, len(data))
	for _, raw := range data {
		item, err := c.decode(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
