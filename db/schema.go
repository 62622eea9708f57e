// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreatePostgresSchema creates the schedule document table on the
// primary store. Safe to call multiple times - uses IF NOT EXISTS.
func CreatePostgresSchema(db *sql.DB) error {
	_, err := db.Exec(postgresSchema)
	if err != nil {
		return fmt.Errorf("failed to create postgres schema: %w", err)
	}
	return nil
}

// CreateSQLiteSchema creates the schedule document table on the local
// fallback store.
func CreateSQLiteSchema(db *sql.DB) error {
	_, err := db.Exec(sqliteSchema)
	if err != nil {
		return fmt.Errorf("failed to create sqlite schema: %w", err)
	}
	return nil
}

// The schedule is persisted wholesale as a single document row; the
// CHECK keeps the table at exactly one row.

const postgresSchema = `
CREATE TABLE IF NOT EXISTS schedule_doc (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    revision TEXT NOT NULL,
    payload JSONB NOT NULL,
    saved_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS schedule_doc (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    revision TEXT NOT NULL,
    payload TEXT NOT NULL,
    saved_at TIMESTAMP NOT NULL
);
`
