// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Study Randomizer API server.

Study Randomizer generates reproducible stratified randomization schedules
for a measurement study: each participant gets three identical sessions of
ultrasound and palpation measurements over ball and balloon models, with all
orderings derived from a single per-participant random seed.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... ACCESS_PASSWORD=... go run main.go

Or with flags:

	go run main.go -p 3418 -d "postgres://..." -access-password "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - ACCESS_PASSWORD (-access-password): Shared secret for API access

Optional settings:

  - PORT (-p): Server port (default: 3418)
  - FALLBACK_DB_PATH (-f): Local SQLite fallback file (default: schedule-fallback.db)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (schedule, export)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, access key check, JSON helpers
  - models: Schedule document and request/response types
  - randomize: Seeded PRNG, shuffle, and schedule generation
  - export: CSV, JSON, and Markdown renderings
  - auth: Shared secret comparison
  - db: Stores (PostgreSQL primary, SQLite fallback) and document migration
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
