// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with
environment variable fallback.

# Settings

Required:

  - DATABASE_URL (-d): Postgres URL of the primary schedule store
  - ACCESS_PASSWORD (-access-password): shared access secret

Optional:

  - PORT (-p): server port (default: 3418)
  - FALLBACK_DB_PATH (-f): local fallback SQLite file
    (default: schedule-fallback.db)

CLI flags take precedence over environment variables. A .env file is
loaded by main before parsing, so either source works in development.
*/
package cliparse
