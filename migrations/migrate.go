// Package migrations embeds the SQL schema of the local SQLite store and the
// remote PostgreSQL store and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

//go:embed postgres/*.sql
var postgresMigrations embed.FS

var errNilDB = errors.New("migration error: db is nil")

// MigrateSQLite brings the local record store schema up to date.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, sqliteMigrations, "sqlite", "sqlite3")
}

// MigratePostgres brings the remote deck/card store schema up to date.
func MigratePostgres(db *sql.DB) error {
	return migrate(db, postgresMigrations, "postgres", "pgx")
}

func migrate(db *sql.DB, fsys fs.FS, dir, dialect string) error {
	if db == nil {
		return errNilDB
	}

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
