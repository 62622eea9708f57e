// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"sync"

	"github.com/danielhkuo/study-randomizer/models"
)

// MemoryStore keeps the schedule in process memory. Used as the test
// double for both fallback legs and as a no-persistence dev mode.
type MemoryStore struct {
	mu      sync.RWMutex
	sched   models.Schedule
	present bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, sched models.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sched = sched
	s.present = true
	return nil
}

func (s *MemoryStore) Load(_ context.Context) (models.Schedule, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sched, s.present, nil
}
