// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"

	"github.com/danielhkuo/study-randomizer/models"
)

// ScheduleStore persists the current schedule as one whole document.
// Load's bool reports presence; corrupt stored data counts as absent,
// never as an error.
type ScheduleStore interface {
	Save(ctx context.Context, sched models.Schedule) error
	Load(ctx context.Context) (models.Schedule, bool, error)
}
