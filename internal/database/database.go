// Package database sets up/opens the download history database.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"fetcharr/internal/domain/consts"

	// Package sqlite3 provides interface to SQLite3 databases.
	_ "github.com/mattn/go-sqlite3"
)

const (
	dbDriver = "sqlite3"
)

// Database holds the history database handle.
type Database struct {
	DB *sql.DB
}

// InitDB opens (or creates) the database at path and ensures its tables exist.
func InitDB(path string) (d *Database, err error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), consts.PermsDBDir); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	d = new(Database)
	d.DB, err = sql.Open(dbDriver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at path %q: %w", path, err)
	}

	// A single connection keeps ":memory:" databases shared and serializes writers.
	d.DB.SetMaxOpenConns(1)

	// Enable Write-Ahead Logging for concurrent access
	if _, err := d.DB.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		d.DB.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Allow SQLite to wait for locks (in milliseconds)
	if _, err := d.DB.Exec(fmt.Sprintf(`PRAGMA busy_timeout = %d;`, consts.DatabaseBusyTimeoutMs)); err != nil {
		d.DB.Close()
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}

	if err := d.initTables(); err != nil {
		d.DB.Close()
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}
	return d, nil
}

// Close closes the database.
func (d *Database) Close() error {
	return d.DB.Close()
}

// initTables initializes the SQL tables.
func (d *Database) initTables() (err error) {
	tx, err := d.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err := initDownloadsTable(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
