// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
)

var (
	ErrInvalidPassword = errors.New("invalid access password")
	ErrNoPassword      = errors.New("access password not configured")
)

// CheckPassword compares the submitted password against the shared
// study secret. Constant-time compare; no hashing, no sessions, no
// rate limiting - the gate only keeps the schedule off the open web.
func CheckPassword(input, secret string) error {
	if secret == "" {
		return ErrNoPassword
	}
	if !hmac.Equal([]byte(input), []byte(secret)) {
		return ErrInvalidPassword
	}
	return nil
}
