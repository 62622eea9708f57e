// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/study-randomizer/models"
)

// StoreTimeout bounds every primary store operation. Past it the
// operation is treated as failed and the local fallback takes over.
const StoreTimeout = 10 * time.Second

// ErrDegraded wraps a primary store failure that was absorbed by the
// local fallback. Data is safe; callers can surface degraded mode.
var ErrDegraded = errors.New("primary store unavailable, local fallback used")

// FallbackStore pairs the networked primary store with a local
// fallback. Successful primary writes also update the fallback so the
// two stay consistent.
type FallbackStore struct {
	primary ScheduleStore
	local   ScheduleStore
	timeout time.Duration
}

func NewFallbackStore(primary, local ScheduleStore) *FallbackStore {
	return &FallbackStore{primary: primary, local: local, timeout: StoreTimeout}
}

// NewFallbackStoreWithTimeout exists for tests exercising the timeout
// path without waiting out StoreTimeout.
func NewFallbackStoreWithTimeout(primary, local ScheduleStore, timeout time.Duration) *FallbackStore {
	return &FallbackStore{primary: primary, local: local, timeout: timeout}
}

// Save writes to the primary within the timeout. On primary failure
// the fallback write happens first and the primary's error is only
// then surfaced, so callers observe degraded mode without data loss.
func (f *FallbackStore) Save(ctx context.Context, sched models.Schedule) error {
	pctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	if perr := f.primary.Save(pctx, sched); perr != nil {
		if lerr := f.local.Save(ctx, sched); lerr != nil {
			return fmt.Errorf("primary save failed (%v) and fallback save failed: %w", perr, lerr)
		}
		slog.Warn("schedule saved to local fallback only", "error", perr)
		return fmt.Errorf("%w: %v", ErrDegraded, perr)
	}

	if lerr := f.local.Save(ctx, sched); lerr != nil {
		// Primary holds the data; a stale fallback is tolerable.
		slog.Warn("failed to mirror schedule to local fallback", "error", lerr)
	}
	return nil
}

// Load reads from the primary within the timeout, falling back to the
// local store when the primary errors. Primary absence is
// authoritative and does not consult the fallback.
func (f *FallbackStore) Load(ctx context.Context) (models.Schedule, bool, error) {
	pctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	sched, found, perr := f.primary.Load(pctx)
	if perr == nil {
		return sched, found, nil
	}

	slog.Warn("loading schedule from local fallback", "error", perr)
	sched, found, lerr := f.local.Load(ctx)
	if lerr != nil {
		return models.Schedule{}, false, fmt.Errorf("primary load failed (%v) and fallback load failed: %w", perr, lerr)
	}
	return sched, found, nil
}
