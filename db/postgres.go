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

	"github.com/danielhkuo/study-randomizer/models"
)

// PostgresStore is the networked primary schedule store. It keeps the
// whole schedule as one JSONB document row.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Save upserts the single document row, stamping a fresh revision id.
func (s *PostgresStore) Save(ctx context.Context, sched models.Schedule) error {
	payload, err := json.Marshal(sched)
	if err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO schedule_doc (id, revision, payload, saved_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET revision = EXCLUDED.revision,
		    payload = EXCLUDED.payload,
		    saved_at = EXCLUDED.saved_at
	`, uuid.NewString(), payload, time.Now())
	if err != nil {
		return fmt.Errorf("failed to store schedule: %w", err)
	}
	return nil
}

// Load reads the document row, migrating legacy shapes. A corrupt
// payload is treated as absence.
func (s *PostgresStore) Load(ctx context.Context) (models.Schedule, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM schedule_doc WHERE id = 1
	`).Scan(&payload)
	if err == sql.ErrNoRows {
		return models.Schedule{}, false, nil
	}
	if err != nil {
		return models.Schedule{}, false, fmt.Errorf("failed to load schedule: %w", err)
	}

	sched, ok := DecodeSchedule(payload)
	if !ok {
		slog.Warn("stored schedule unreadable, treating as absent", "store", "postgres")
		return models.Schedule{}, false, nil
	}
	return sched, true, nil
}
