// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package randomize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleIsPermutation(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e", "f", "g"}
	for seed := uint32(0); seed < 50; seed++ {
		out := Shuffle(in, NewSource(seed))
		require.ElementsMatch(t, in, out, "seed %d", seed)
	}
}

func TestShuffleLeavesInputUnmodified(t *testing.T) {
	in := []string{"a", "b", "c", "d"}
	Shuffle(in, NewSource(42))
	assert.Equal(t, []string{"a", "b", "c", "d"}, in)
}

func TestShuffleDeterministicPerSeed(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6}
	first := Shuffle(in, NewSource(123))
	second := Shuffle(in, NewSource(123))
	assert.Equal(t, first, second)
}

func TestShuffleConsumesExactlyLenMinusOneDraws(t *testing.T) {
	// Two streams from the same seed: one drives a shuffle, the other
	// skips len-1 draws by hand. They must agree afterwards.
	in := []string{"a", "b", "c", "d"}
	a := NewSource(9)
	b := NewSource(9)

	Shuffle(in, a)
	for i := 0; i < len(in)-1; i++ {
		b.Float64()
	}
	assert.Equal(t, b.Float64(), a.Float64())
}

func TestShuffleEdgeLengths(t *testing.T) {
	src := NewSource(5)
	assert.Empty(t, Shuffle([]string{}, src))
	assert.Equal(t, []string{"x"}, Shuffle([]string{"x"}, src))
}

func TestIndexPermutation(t *testing.T) {
	perm := indexPermutation(4, NewSource(42))
	require.ElementsMatch(t, []int{0, 1, 2, 3}, perm)
}
