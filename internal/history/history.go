// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

// Package history records successful weather lookups in a local SQLite
// database so recent queries can be listed and re-run.
package history

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const dbFile = "history.db"

// Entry is a single recorded lookup.
type Entry struct {
	ID              int64
	Query           string
	ResolvedAddress string
	Provider        string
	LookedUpAt      time.Time
}

// Store persists lookup history.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed initializes) the history database in the given
// state directory.
func Open(stateDir string) (*Store, error) {
	db, err := sql.Open("sqlite", filepath.Join(stateDir, dbFile))
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if _, err = db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS lookups (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		query TEXT NOT NULL,
		resolved_address TEXT NOT NULL,
		provider TEXT NOT NULL,
		looked_up_at TEXT NOT NULL
	)`
	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record stores one successful lookup.
func (s *Store) Record(query, resolvedAddress, provider string) error {
	_, err := s.db.Exec(
		`INSERT INTO lookups(query, resolved_address, provider, looked_up_at) VALUES(?,?,?,?)`,
		query, resolvedAddress, provider, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to record lookup: %w", err)
	}
	return nil
}

// Recent returns the most recent lookups, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, query, resolved_address, provider, looked_up_at FROM lookups ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookup history: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var lookedUpAt string
		if err = rows.Scan(&entry.ID, &entry.Query, &entry.ResolvedAddress, &entry.Provider, &lookedUpAt); err != nil {
			return nil, fmt.Errorf("failed to scan lookup history row: %w", err)
		}
		if entry.LookedUpAt, err = time.Parse(time.RFC3339, lookedUpAt); err != nil {
			return nil, fmt.Errorf("failed to parse lookup timestamp: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
