package testutil

import (
	"math/rand"
	"slices"
)

// DeterministicInts returns n integers in [0, maxValue) from a fixed seed.
func DeterministicInts(seed int64, n, maxValue int) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(maxValue)
	}
	return out
}

// Descending returns n-1, n-2, ..., 0.
func Descending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - 1 - i
	}
	return out
}

// IsPermutation reports whether a and b hold the same multiset of values.
func IsPermutation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	sa := slices.Clone(a)
	sb := slices.Clone(b)
	slices.Sort(sa)
	slices.Sort(sb)
	return slices.Equal(sa, sb)
}
