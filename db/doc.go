// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists the current schedule as a single whole document.

# Stores

Three implementations of ScheduleStore:

  - PostgresStore: the networked primary, one JSONB row
  - SQLiteStore: the local fallback file (pure-Go driver)
  - MemoryStore: in-process, for tests and no-persistence dev runs

FallbackStore composes primary and local: every primary operation is
bounded by StoreTimeout (10s); a failed or timed-out primary write is
absorbed by a local write before the error is surfaced as ErrDegraded,
and successful primary writes are mirrored locally so both stores hold
the same document.

# Schema

One row, enforced by CHECK (id = 1):

	schedule_doc(id, revision, payload, saved_at)

The revision is a fresh UUID per save; the payload is the entire
serialized Schedule. There are no partial updates.

# Format Migration

Load runs persisted documents through a chain of pure upgrade steps
(field renames, model id remapping, pressure-balloon conversion,
default ball colors) until the shape is stable, then decodes. Corrupt
payloads are treated as an absent schedule, never a fatal error, and
unrecognized fields pass through unchanged.
*/
package db
