package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-deck-sync/internal/logger"
)

// sqliteLocalStore is the SQLite-backed implementation of [LocalStore].
//
// All collections share the records table; index values live in
// record_indexes and are rewritten in the same transaction as the record.
type sqliteLocalStore struct {
	dsn     string
	schemas map[string]Schema
	logger  *logger.Logger

	mu sync.RWMutex
	db *DB
}

// NewLocalStore constructs a closed [LocalStore] for the SQLite file at dsn.
// Without explicit schemas the [DefaultSchemas] are registered.
func NewLocalStore(dsn string, log *logger.Logger, schemas ...Schema) LocalStore {
	if len(schemas) == 0 {
		schemas = DefaultSchemas()
	}

	registered := make(map[string]Schema, len(schemas))
	for _, schema := range schemas {
		registered[schema.Name] = schema
	}

	return &sqliteLocalStore{
		dsn:     dsn,
		schemas: registered,
		logger:  log,
	}
}

func (s *sqliteLocalStore) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	db, err := NewConnectSQLite(ctx, s.dsn, s.logger)
	if err != nil {
		return fmt.Errorf("error opening local store: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		s.logger.Err(err).Str("func", "sqliteLocalStore.Open").Msg("local store migration failed")
		return fmt.Errorf("migration failed: %w", err)
	}

	s.db = db
	s.logger.Info().Str("dsn", s.dsn).Msg("local store opened")
	return nil
}

func (s *sqliteLocalStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("error closing local store: %w", err)
	}

	return nil
}

// acquire returns the open handle and the collection schema. The returned
// release func must be called once the operation has finished.
func (s *sqliteLocalStore) acquire(collection string) (*DB, Schema, func(), error) {
	s.mu.RLock()

	if s.db == nil {
		s.mu.RUnlock()
		return nil, Schema{}, nil, ErrStoreClosed
	}

	schema, ok := s.schemas[collection]
	if !ok {
		s.mu.RUnlock()
		return nil, Schema{}, nil, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}

	return s.db, schema, s.mu.RUnlock, nil
}

func (s *sqliteLocalStore) Get(ctx context.Context, collection, id string) ([]byte, bool, error) {
	db, _, release, err := s.acquire(collection)
	if err != nil {
		return nil, false, err
	}
	defer release()

	query, args, err := buildGetRecordQuery(collection, id)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data []byte
	err = db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteLocalStore.Get").
			Str("collection", collection).
			Str("id", id).
			Msg("failed to read record")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return data, true, nil
}

func (s *sqliteLocalStore) GetAll(ctx context.Context, collection string) ([][]byte, error) {
	db, _, release, err := s.acquire(collection)
	if err != nil {
		return nil, err
	}
	defer release()

	query, args, err := buildGetAllRecordsQuery(collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryRecords(ctx, db, "sqliteLocalStore.GetAll", query, args)
}

func (s *sqliteLocalStore) GetAllByIndex(ctx context.Context, collection, index, value string) ([][]byte, error) {
	db, schema, release, err := s.acquire(collection)
	if err != nil {
		return nil, err
	}
	defer release()

	if !schema.hasIndex(index) {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownIndex, collection, index)
	}

	query, args, err := buildGetRecordsByIndexQuery(collection, index, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryRecords(ctx, db, "sqliteLocalStore.GetAllByIndex", query, args)
}

func (s *sqliteLocalStore) Put(ctx context.Context, collection string, record any) (string, error) {
	ids, err := s.PutMany(ctx, collection, record)
	if err != nil {
		return "", err
	}

	return ids[0], nil
}

func (s *sqliteLocalStore) PutMany(ctx context.Context, collection string, records ...any) ([]string, error) {
	db, schema, release, err := s.acquire(collection)
	if err != nil {
		return nil, err
	}
	defer release()

	encoded := make([]encodedRecord, 0, len(records))
	for _, record := range records {
		rec, encErr := schema.encode(record)
		if encErr != nil {
			return nil, encErr
		}
		encoded = append(encoded, rec)
	}

	if len(encoded) == 0 {
		return []string{}, nil
	}

	err = inTx(ctx, db, "sqliteLocalStore.PutMany", func(tx *sql.Tx) error {
		for _, rec := range encoded {
			if err := writeRecord(ctx, tx, schema, rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(encoded))
	for i, rec := range encoded {
		ids[i] = rec.id
	}

	return ids, nil
}

func (s *sqliteLocalStore) Delete(ctx context.Context, collection, id string) error {
	return s.DeleteMany(ctx, collection, id)
}

func (s *sqliteLocalStore) DeleteMany(ctx context.Context, collection string, ids ...string) error {
	db, _, release, err := s.acquire(collection)
	if err != nil {
		return err
	}
	defer release()

	if len(ids) == 0 {
		return nil
	}

	return inTx(ctx, db, "sqliteLocalStore.DeleteMany", func(tx *sql.Tx) error {
		query, args, err := buildDeleteRecordIndexesQuery(collection, ids...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = buildDeleteRecordsQuery(collection, ids...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
}

func (s *sqliteLocalStore) Clear(ctx context.Context, collection string) error {
	db, _, release, err := s.acquire(collection)
	if err != nil {
		return err
	}
	defer release()

	return inTx(ctx, db, "sqliteLocalStore.Clear", func(tx *sql.Tx) error {
		for _, table := range []string{recordIndexTable, recordsTable} {
			query, args, err := buildClearRecordsQuery(table, collection)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

func (s *sqliteLocalStore) Count(ctx context.Context, collection string) (int, error) {
	db, _, release, err := s.acquire(collection)
	if err != nil {
		return 0, err
	}
	defer release()

	query, args, err := buildCountRecordsQuery(collection)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryCount(ctx, db, query, args)
}

func (s *sqliteLocalStore) CountByIndex(ctx context.Context, collection, index, value string) (int, error) {
	db, schema, release, err := s.acquire(collection)
	if err != nil {
		return 0, err
	}
	defer release()

	if !schema.hasIndex(index) {
		return 0, fmt.Errorf("%w: %s.%s", ErrUnknownIndex, collection, index)
	}

	query, args, err := buildCountByIndexQuery(collection, index, value)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryCount(ctx, db, query, args)
}

// writeRecord upserts rec and replaces its index rows.
func writeRecord(ctx context.Context, tx *sql.Tx, schema Schema, rec encodedRecord) error {
	query, args, err := buildUpsertRecordQuery(schema.Name, rec)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err = buildDeleteRecordIndexesQuery(schema.Name, rec.id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err = buildInsertRecordIndexesQuery(schema.Name, schema, rec)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if query == "" {
		return nil
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// inTx runs fn in a transaction and commits it when fn succeeds.
func inTx(ctx context.Context, db *DB, funcName string, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		log.Err(err).Str("func", funcName).Msg("transaction rolled back")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func queryRecords(ctx context.Context, db *DB, funcName, query string, args []any) ([][]byte, error) {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([][]byte, 0)
	for rows.Next() {
		var data []byte
		if err = rows.Scan(&data); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, data)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating record rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func queryCount(ctx context.Context, db *DB, query string, args []any) (int, error) {
	var count int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
