// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

# Middleware

  - WithLogging: request start/completion logging with durations
  - RequireAccessKey: shared-secret gate reading the X-Access-Key header
  - CORS: cross-origin headers for the schedule frontend

# Helpers

  - JSONResponse: write a JSON body with a status code
  - ErrorResponse: write a models.ErrorResponse
  - ParseJSONBody: decode a request body into a struct
*/
package middleware
