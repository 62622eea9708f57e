// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the schedule API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - ScheduleHandler: access gate plus schedule lifecycle (generate,
    add, remove, regenerate participants)
  - ExportHandler: JSON / CSV / Markdown downloads

Handlers are created via constructor functions that accept the
fallback-aware schedule store:

	scheduleHandler := handlers.NewScheduleHandler(store, cfg)

# Schedule Lifecycle

	POST   /schedule/generate                    → Generate (replaces wholesale)
	POST   /schedule/participants                → AddParticipant
	DELETE /schedule/participants/{id}           → RemoveParticipant
	POST   /schedule/participants/{id}/regenerate → RegenerateParticipant

Every mutation loads the current schedule, applies a pure operation
from the randomize package, and persists the result wholesale. The
randomization itself never happens in a handler.

# Degraded Storage

When the primary store is unreachable the mutation still succeeds
against the local fallback; the response carries the
X-Storage-Degraded header so the frontend can warn the operator.

# Access

All schedule routes sit behind the X-Access-Key middleware;
POST /login validates the same shared secret for the frontend's gate
screen.
*/
package handlers
