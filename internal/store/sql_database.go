package store

import (
	"database/sql"

	"github.com/MKhiriev/go-deck-sync/internal/logger"
	"github.com/MKhiriev/go-deck-sync/migrations"
)

// DB wraps a database handle with the logger and the error classifier of the
// backend it is connected to.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	migrate            func(*sql.DB) error
}

// Migrate applies the schema that belongs to the connected backend.
func (db *DB) Migrate() error {
	return db.migrate(db.DB)
}

// newSQLiteDB wraps an already opened SQLite handle.
func newSQLiteDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: sqliteErrorClassifier{},
		logger:             log,
		migrate:            migrations.MigrateSQLite,
	}
}

// newPostgresDB wraps an already opened PostgreSQL handle.
func newPostgresDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
		migrate:            migrations.MigratePostgres,
	}
}
