// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "fallback.db"))
	if err != nil {
		t.Fatalf("Failed to open sqlite store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteLoadEmpty(t *testing.T) {
	store := openTestSQLite(t)

	_, found, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if found {
		t.Error("fresh store should report absence")
	}
}

func TestSQLiteSaveLoadRoundTrip(t *testing.T) {
	store := openTestSQLite(t)
	sched := fallbackTestSchedule(t)

	if err := store.Save(context.Background(), sched); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, found, err := store.Load(context.Background())
	if err != nil || !found {
		t.Fatalf("Load failed: found=%v err=%v", found, err)
	}
	if got.Summary != sched.Summary {
		t.Errorf("summary mismatch: got %+v want %+v", got.Summary, sched.Summary)
	}
	if len(got.Participants) != 2 {
		t.Fatalf("participant count = %d, want 2", len(got.Participants))
	}
	if got.Participants[1].RandomSeed != sched.Participants[1].RandomSeed {
		t.Error("seed lost in round trip")
	}
	if got.Participants[0].Sessions[0].BallOrder[0] != sched.Participants[0].Sessions[0].BallOrder[0] {
		t.Error("session content lost in round trip")
	}
}

func TestSQLiteSaveReplacesDocument(t *testing.T) {
	store := openTestSQLite(t)
	first := fallbackTestSchedule(t)

	if err := store.Save(context.Background(), first); err != nil {
		t.Fatal(err)
	}

	// A second save must replace, not accumulate.
	second := first
	second.Participants = first.Participants[:1]
	second.Summary.ParticipantCount = 1
	if err := store.Save(context.Background(), second); err != nil {
		t.Fatal(err)
	}

	got, found, err := store.Load(context.Background())
	if err != nil || !found {
		t.Fatalf("Load failed: found=%v err=%v", found, err)
	}
	if len(got.Participants) != 1 {
		t.Errorf("expected replaced document with 1 participant, got %d", len(got.Participants))
	}
}

func TestSQLiteCorruptPayloadTreatedAsAbsent(t *testing.T) {
	store := openTestSQLite(t)

	_, err := store.db.Exec(`
		INSERT INTO schedule_doc (id, revision, payload, saved_at)
		VALUES (1, 'rev', '{not json', CURRENT_TIMESTAMP)
	`)
	if err != nil {
		t.Fatal(err)
	}

	_, found, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("corrupt payload must not error: %v", err)
	}
	if found {
		t.Error("corrupt payload should be treated as absence")
	}
}
