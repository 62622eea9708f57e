// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements the single shared-secret access gate.

The study's schedule is behind one password shared with the measuring
staff. CheckPassword does a constant-time comparison of the submitted
value against the configured secret, nothing more: no hashing, no
session tokens, no rate limiting. Hardening is intentionally out of
scope.
*/
package auth
