// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/study-randomizer/db"
	"github.com/danielhkuo/study-randomizer/export"
	"github.com/danielhkuo/study-randomizer/middleware"
	"github.com/danielhkuo/study-randomizer/models"
)

type ExportHandler struct {
	store db.ScheduleStore
}

func NewExportHandler(store db.ScheduleStore) *ExportHandler {
	return &ExportHandler{store: store}
}

func (h *ExportHandler) load(w http.ResponseWriter, r *http.Request) (models.Schedule, bool) {
	sched, found, err := h.store.Load(r.Context())
	if err != nil {
		slog.Error("failed to load schedule for export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return models.Schedule{}, false
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "No schedule generated yet")
		return models.Schedule{}, false
	}
	return sched, true
}

// JSON handles GET /schedule/export/json
func (h *ExportHandler) JSON(w http.ResponseWriter, r *http.Request) {
	sched, ok := h.load(w, r)
	if !ok {
		return
	}

	out, err := export.JSON(sched)
	if err != nil {
		slog.Error("json export failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Export failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="schedule.json"`)
	w.Write(out)
}

// CSV handles GET /schedule/export/csv
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	sched, ok := h.load(w, r)
	if !ok {
		return
	}

	out, err := export.CSV(sched)
	if err != nil {
		slog.Error("csv export failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Export failed")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="schedule.csv"`)
	w.Write(out)
}

// Markdown handles GET /schedule/export/markdown
func (h *ExportHandler) Markdown(w http.ResponseWriter, r *http.Request) {
	sched, ok := h.load(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="schedule.md"`)
	w.Write(export.Markdown(sched))
}
