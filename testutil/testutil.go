// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/study-randomizer/cliparse"
	"github.com/danielhkuo/study-randomizer/db"
	"github.com/danielhkuo/study-randomizer/models"
	"github.com/danielhkuo/study-randomizer/randomize"
)

// TestAccessPassword is the shared secret used throughout the tests.
const TestAccessPassword = "test-access-password"

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3418,
		DatabaseURL:    "postgres://test",
		SQLitePath:     "test-fallback.db",
		AccessPassword: TestAccessPassword,
	}
}

// NewTestStore returns an empty in-memory schedule store.
func NewTestStore(t *testing.T) *db.MemoryStore {
	t.Helper()
	return db.NewMemoryStore()
}

// SeedTestSchedule generates a deterministic schedule with n
// participants and saves it into the store.
func SeedTestSchedule(t *testing.T, store db.ScheduleStore, n int) models.Schedule {
	t.Helper()

	sched, err := randomize.Generate(n, randomize.NewSource(1), time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Failed to generate test schedule: %v", err)
	}
	if err := store.Save(context.Background(), sched); err != nil {
		t.Fatalf("Failed to seed test schedule: %v", err)
	}
	return sched
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeAuthedRequest creates a request carrying the test access key.
func MakeAuthedRequest(method, path string, body interface{}) *http.Request {
	return MakeRequest(method, path, body, map[string]string{
		"X-Access-Key": TestAccessPassword,
	})
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
