// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package randomize

// Shuffle returns a uniform permutation of items, leaving the input
// untouched. Fisher-Yates from the top index down; consumes exactly
// len(items)-1 draws from src. Callers threading one stream through
// several shuffles depend on that draw count.
func Shuffle[T any](items []T, src *Source) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i >= 1; i-- {
		j := int(src.Float64() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// indexPermutation returns a shuffled [0,n) index range. Used for the
// per-repetition reordering of palpation measurements.
func indexPermutation(n int, src *Source) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return Shuffle(idx, src)
}
