// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ pattern
routing.

# Routes

Public:

	GET  /health
	GET  /
	POST /login

Behind the X-Access-Key gate:

	GET    /schedule
	POST   /schedule/generate
	POST   /schedule/participants
	DELETE /schedule/participants/{id}
	POST   /schedule/participants/{id}/regenerate
	GET    /schedule/export/json
	GET    /schedule/export/csv
	GET    /schedule/export/markdown

All handlers receive the fallback-aware schedule store; every mutation
persists the full schedule before responding.
*/
package router
