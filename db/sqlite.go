// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/study-randomizer/models"
)

// SQLiteStore is the local fallback schedule store. Pure-Go driver,
// so it works with no server when the primary is unreachable.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLite opens (creating if needed) the fallback database file
// and ensures its schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := CreateSQLiteSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return NewSQLiteStore(conn), nil
}

func (s *SQLiteStore) Save(ctx context.Context, sched models.Schedule) error {
	payload, err := json.Marshal(sched)
	if err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO schedule_doc (id, revision, payload, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE
		SET revision = excluded.revision,
		    payload = excluded.payload,
		    saved_at = excluded.saved_at
	`, uuid.NewString(), string(payload), time.Now())
	if err != nil {
		return fmt.Errorf("failed to store schedule: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (models.Schedule, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM schedule_doc WHERE id = 1
	`).Scan(&payload)
	if err == sql.ErrNoRows {
		return models.Schedule{}, false, nil
	}
	if err != nil {
		return models.Schedule{}, false, fmt.Errorf("failed to load schedule: %w", err)
	}

	sched, ok := DecodeSchedule([]byte(payload))
	if !ok {
		slog.Warn("stored schedule unreadable, treating as absent", "store", "sqlite")
		return models.Schedule{}, false, nil
	}
	return sched, true, nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
