// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/study-randomizer/auth"
	"github.com/danielhkuo/study-randomizer/cliparse"
	"github.com/danielhkuo/study-randomizer/db"
	"github.com/danielhkuo/study-randomizer/middleware"
	"github.com/danielhkuo/study-randomizer/models"
	"github.com/danielhkuo/study-randomizer/randomize"
)

// DegradedHeader is set on responses whose schedule was saved to the
// local fallback only.
const DegradedHeader = "X-Storage-Degraded"

type ScheduleHandler struct {
	store db.ScheduleStore
	cfg   cliparse.Config

	// Swappable in tests; production uses ambient randomness.
	freshSeed  func() uint32
	newStream  func() randomize.FloatSource
	now        func() time.Time
}

func NewScheduleHandler(store db.ScheduleStore, cfg cliparse.Config) *ScheduleHandler {
	return &ScheduleHandler{
		store:     store,
		cfg:       cfg,
		freshSeed: randomize.FreshSeed,
		newStream: func() randomize.FloatSource { return randomize.NewTimeSource() },
		now:       time.Now,
	}
}

// Login handles POST /login
func (h *ScheduleHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := auth.CheckPassword(req.Password, h.cfg.AccessPassword); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /schedule
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	sched, found, err := h.store.Load(r.Context())
	if err != nil {
		slog.Error("failed to load schedule", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "No schedule generated yet")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sched)
}

// Generate handles POST /schedule/generate
func (h *ScheduleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sched, err := randomize.Generate(req.ParticipantCount, h.newStream(), h.now())
	if errors.Is(err, randomize.ErrInvalidCount) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to generate schedule", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate schedule")
		return
	}

	slog.Info("schedule generated", "participants", req.ParticipantCount)
	h.saveAndRespond(w, r, sched)
}

// AddParticipant handles POST /schedule/participants
func (h *ScheduleHandler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	sched, found, err := h.store.Load(r.Context())
	if err != nil {
		slog.Error("failed to load schedule", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "No schedule generated yet")
		return
	}

	next, err := randomize.AddParticipant(sched, h.freshSeed())
	if errors.Is(err, randomize.ErrScheduleFull) {
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to add participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add participant")
		return
	}

	slog.Info("participant added", "record_id", len(next.Participants))
	h.saveAndRespond(w, r, next)
}

// RemoveParticipant handles DELETE /schedule/participants/{id}
func (h *ScheduleHandler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	recordID, ok := h.recordID(w, r)
	if !ok {
		return
	}

	sched, found, err := h.store.Load(r.Context())
	if err != nil {
		slog.Error("failed to load schedule", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "No schedule generated yet")
		return
	}

	next, err := randomize.RemoveParticipant(sched, recordID)
	if errors.Is(err, randomize.ErrParticipantNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Participant not found")
		return
	}
	if err != nil {
		slog.Error("failed to remove participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove participant")
		return
	}

	slog.Info("participant removed", "record_id", recordID)
	h.saveAndRespond(w, r, next)
}

// RegenerateParticipant handles POST /schedule/participants/{id}/regenerate
func (h *ScheduleHandler) RegenerateParticipant(w http.ResponseWriter, r *http.Request) {
	recordID, ok := h.recordID(w, r)
	if !ok {
		return
	}

	sched, found, err := h.store.Load(r.Context())
	if err != nil {
		slog.Error("failed to load schedule", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "No schedule generated yet")
		return
	}

	next, err := randomize.RegenerateParticipant(sched, recordID, h.freshSeed())
	if errors.Is(err, randomize.ErrParticipantNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Participant not found")
		return
	}
	if err != nil {
		slog.Error("failed to regenerate participant", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to regenerate participant")
		return
	}

	slog.Info("participant regenerated", "record_id", recordID)
	h.saveAndRespond(w, r, next)
}

func (h *ScheduleHandler) recordID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid participant id")
		return 0, false
	}
	return id, true
}

// saveAndRespond persists the new schedule wholesale and returns it.
// A degraded save (fallback only) still answers 200 so no work is
// lost, flagged via the X-Storage-Degraded header.
func (h *ScheduleHandler) saveAndRespond(w http.ResponseWriter, r *http.Request, sched models.Schedule) {
	if err := h.store.Save(r.Context(), sched); err != nil {
		if !errors.Is(err, db.ErrDegraded) {
			slog.Error("failed to store schedule", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store schedule")
			return
		}
		slog.Warn("schedule stored in degraded mode", "error", err)
		w.Header().Set(DegradedHeader, "true")
	}

	middleware.JSONResponse(w, http.StatusOK, sched)
}
