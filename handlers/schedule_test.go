// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/study-randomizer/db"
	"github.com/danielhkuo/study-randomizer/models"
	"github.com/danielhkuo/study-randomizer/randomize"
	"github.com/danielhkuo/study-randomizer/testutil"
)

// fixedSource mocks the process-level stream for deterministic
// handler output.
type fixedSource struct{ v float64 }

func (f fixedSource) Float64() float64 { return f.v }

// newTestHandler wires a handler to deterministic randomness.
func newTestHandler(store db.ScheduleStore) *ScheduleHandler {
	h := NewScheduleHandler(store, testutil.GetTestConfig())
	h.freshSeed = func() uint32 { return 4711 }
	h.newStream = func() randomize.FloatSource { return fixedSource{v: 0.5} }
	h.now = func() time.Time { return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC) }
	return h
}

func TestLogin(t *testing.T) {
	h := newTestHandler(testutil.NewTestStore(t))

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{"correct password", models.LoginRequest{Password: testutil.TestAccessPassword}, 204},
		{"wrong password", models.LoginRequest{Password: "nope"}, 401},
		{"empty body", map[string]string{}, 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/login", tt.body, nil)
			w := httptest.NewRecorder()
			h.Login(w, req)
			testutil.AssertStatus(t, w, tt.wantStatus)
		})
	}
}

func TestGetScheduleEmpty(t *testing.T) {
	h := newTestHandler(testutil.NewTestStore(t))

	req := testutil.MakeAuthedRequest("GET", "/schedule", nil)
	w := httptest.NewRecorder()
	h.Get(w, req)

	testutil.AssertStatus(t, w, 404)
}

func TestGenerate(t *testing.T) {
	store := testutil.NewTestStore(t)
	h := newTestHandler(store)

	req := testutil.MakeAuthedRequest("POST", "/schedule/generate", models.GenerateRequest{ParticipantCount: 5})
	w := httptest.NewRecorder()
	h.Generate(w, req)

	testutil.AssertStatus(t, w, 200)

	var got models.Schedule
	testutil.AssertJSON(t, w, &got)
	if len(got.Participants) != 5 {
		t.Fatalf("participants = %d, want 5", len(got.Participants))
	}
	if got.Summary.TotalMeasurements != 1200 {
		t.Errorf("total measurements = %d, want 1200", got.Summary.TotalMeasurements)
	}

	// With the process stream fixed at 0.5 every seed is 500000.
	if got.Participants[0].RandomSeed != 500000 {
		t.Errorf("seed = %d, want 500000", got.Participants[0].RandomSeed)
	}

	// The schedule must have been persisted wholesale.
	stored, found, err := store.Load(context.Background())
	if err != nil || !found {
		t.Fatalf("schedule not persisted: found=%v err=%v", found, err)
	}
	if stored.Summary != got.Summary {
		t.Error("persisted schedule differs from response")
	}
}

func TestGenerateInvalidCount(t *testing.T) {
	h := newTestHandler(testutil.NewTestStore(t))

	for _, count := range []int{0, -3, 51} {
		req := testutil.MakeAuthedRequest("POST", "/schedule/generate", models.GenerateRequest{ParticipantCount: count})
		w := httptest.NewRecorder()
		h.Generate(w, req)
		testutil.AssertStatus(t, w, 400)
	}

	req := testutil.MakeRequest("POST", "/schedule/generate", nil, nil)
	w := httptest.NewRecorder()
	h.Generate(w, req)
	testutil.AssertStatus(t, w, 400)
}

func TestAddParticipant(t *testing.T) {
	store := testutil.NewTestStore(t)
	testutil.SeedTestSchedule(t, store, 2)
	h := newTestHandler(store)

	req := testutil.MakeAuthedRequest("POST", "/schedule/participants", nil)
	w := httptest.NewRecorder()
	h.AddParticipant(w, req)

	testutil.AssertStatus(t, w, 200)

	var got models.Schedule
	testutil.AssertJSON(t, w, &got)
	if len(got.Participants) != 3 {
		t.Fatalf("participants = %d, want 3", len(got.Participants))
	}
	added := got.Participants[2]
	if added.RecordID != 3 || added.RandomSeed != 4711 {
		t.Errorf("added participant = id %d seed %d", added.RecordID, added.RandomSeed)
	}
}

func TestAddParticipantNoSchedule(t *testing.T) {
	h := newTestHandler(testutil.NewTestStore(t))

	req := testutil.MakeAuthedRequest("POST", "/schedule/participants", nil)
	w := httptest.NewRecorder()
	h.AddParticipant(w, req)

	testutil.AssertStatus(t, w, 404)
}

func TestAddParticipantFullSchedule(t *testing.T) {
	store := testutil.NewTestStore(t)
	testutil.SeedTestSchedule(t, store, models.MaxParticipants)
	h := newTestHandler(store)

	req := testutil.MakeAuthedRequest("POST", "/schedule/participants", nil)
	w := httptest.NewRecorder()
	h.AddParticipant(w, req)

	testutil.AssertStatus(t, w, 409)
}

func TestRemoveParticipant(t *testing.T) {
	store := testutil.NewTestStore(t)
	seeded := testutil.SeedTestSchedule(t, store, 4)
	h := newTestHandler(store)

	req := testutil.MakeAuthedRequest("DELETE", "/schedule/participants/2", nil)
	req.SetPathValue("id", "2")
	w := httptest.NewRecorder()
	h.RemoveParticipant(w, req)

	testutil.AssertStatus(t, w, 200)

	var got models.Schedule
	testutil.AssertJSON(t, w, &got)
	if len(got.Participants) != 3 {
		t.Fatalf("participants = %d, want 3", len(got.Participants))
	}
	for i, p := range got.Participants {
		if p.RecordID != i+1 {
			t.Errorf("record ids not contiguous: %d at index %d", p.RecordID, i)
		}
	}
	// The old third participant moved up with its seed intact.
	if got.Participants[1].RandomSeed != seeded.Participants[2].RandomSeed {
		t.Error("seed did not travel with the renumbered participant")
	}
}

func TestRemoveParticipantBadID(t *testing.T) {
	store := testutil.NewTestStore(t)
	testutil.SeedTestSchedule(t, store, 2)
	h := newTestHandler(store)

	for id, wantStatus := range map[string]int{"abc": 400, "0": 400, "9": 404} {
		req := testutil.MakeAuthedRequest("DELETE", "/schedule/participants/"+id, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		h.RemoveParticipant(w, req)
		testutil.AssertStatus(t, w, wantStatus)
	}
}

func TestRegenerateParticipant(t *testing.T) {
	store := testutil.NewTestStore(t)
	seeded := testutil.SeedTestSchedule(t, store, 3)
	h := newTestHandler(store)

	req := testutil.MakeAuthedRequest("POST", "/schedule/participants/2/regenerate", nil)
	req.SetPathValue("id", "2")
	w := httptest.NewRecorder()
	h.RegenerateParticipant(w, req)

	testutil.AssertStatus(t, w, 200)

	var got models.Schedule
	testutil.AssertJSON(t, w, &got)

	if got.Participants[1].RandomSeed != 4711 {
		t.Errorf("regenerated seed = %d, want 4711", got.Participants[1].RandomSeed)
	}
	if got.Participants[0].RandomSeed != seeded.Participants[0].RandomSeed {
		t.Error("neighbor participant was touched")
	}
	if got.Summary != seeded.Summary {
		t.Error("summary should be unchanged by regeneration")
	}
}

func TestSaveDegradedStillResponds(t *testing.T) {
	// Primary fails, memory store stands in as the local fallback.
	local := db.NewMemoryStore()
	store := db.NewFallbackStore(failingPrimary{}, local)
	h := newTestHandler(store)

	req := testutil.MakeAuthedRequest("POST", "/schedule/generate", models.GenerateRequest{ParticipantCount: 2})
	w := httptest.NewRecorder()
	h.Generate(w, req)

	testutil.AssertStatus(t, w, 200)
	if w.Header().Get(DegradedHeader) != "true" {
		t.Error("degraded save should set the degraded header")
	}

	if _, found, _ := local.Load(context.Background()); !found {
		t.Error("schedule missing from local fallback")
	}
}

type failingPrimary struct{}

func (failingPrimary) Save(context.Context, models.Schedule) error {
	return errors.New("primary unreachable")
}

func (failingPrimary) Load(context.Context) (models.Schedule, bool, error) {
	return models.Schedule{}, false, errors.New("primary unreachable")
}
