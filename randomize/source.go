// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package randomize

import (
	"math/rand/v2"
	"time"
)

// SeedRange is the exclusive upper bound for participant seeds. Seeds
// are drawn as floor(f * SeedRange) with f in [0,1).
const SeedRange = 1_000_000

// Source is a Mulberry32 pseudo-random stream. The algorithm is
// load-bearing: every stored participant seed maps to a schedule only
// through this exact bit pattern, so the mixer must never change.
// A Source is single-use and not safe for concurrent callers; each
// generation call owns its own instance.
type Source struct {
	state uint32
}

// NewSource returns a deterministic stream for the given seed. The
// same seed always yields the same Float64 sequence on any platform.
func NewSource(seed uint32) *Source {
	return &Source{state: seed}
}

// NewTimeSource returns a stream seeded from the wall clock. Used only
// for the process-level seed draws in batch generation, which are not
// themselves reproducible (the per-participant seeds they produce are).
func NewTimeSource() *Source {
	return &Source{state: uint32(time.Now().UnixNano())}
}

// Float64 advances the stream and returns the next value in [0,1).
func (s *Source) Float64() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// FreshSeed draws an ambient, non-reproducible participant seed. Used
// when adding or regenerating a single participant outside a batch.
func FreshSeed() uint32 {
	return uint32(rand.IntN(SeedRange))
}
