// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/study-randomizer/cliparse"
	"github.com/danielhkuo/study-randomizer/db"
	"github.com/danielhkuo/study-randomizer/handlers"
	"github.com/danielhkuo/study-randomizer/middleware"
)

func NewRouter(store db.ScheduleStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	scheduleHandler := handlers.NewScheduleHandler(store, cfg)
	exportHandler := handlers.NewExportHandler(store)

	key := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAccessKey(cfg.AccessPassword, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Access gate
	mux.HandleFunc("POST /login", middleware.WithLogging(scheduleHandler.Login))

	// Schedule lifecycle
	mux.HandleFunc("GET /schedule", key(scheduleHandler.Get))
	mux.HandleFunc("POST /schedule/generate", key(scheduleHandler.Generate))
	mux.HandleFunc("POST /schedule/participants", key(scheduleHandler.AddParticipant))
	mux.HandleFunc("DELETE /schedule/participants/{id}", key(scheduleHandler.RemoveParticipant))
	mux.HandleFunc("POST /schedule/participants/{id}/regenerate", key(scheduleHandler.RegenerateParticipant))

	// Exports
	mux.HandleFunc("GET /schedule/export/json", key(exportHandler.JSON))
	mux.HandleFunc("GET /schedule/export/csv", key(exportHandler.CSV))
	mux.HandleFunc("GET /schedule/export/markdown", key(exportHandler.Markdown))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("study-randomizer API v1"))
	})

	return mux
}
