package ckk_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// seedDet fixes every pseudo-random fixture in this package.
const seedDet = 20240917

// randWeights draws n integral weights in [1, hi] so sums stay exact.
func randWeights(rng *rand.Rand, n, hi int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = float64(1 + rng.Intn(hi))
	}

	return w
}

// requireCover asserts groups hold k groups covering 0..n-1 exactly once.
func requireCover(t *testing.T, groups [][]int, n, k int) {
	t.Helper()
	require.Len(t, groups, k)
	var all []int
	for _, g := range groups {
		all = append(all, g...)
	}
	slices.Sort(all)
	want := make([]int, n)
	for i := range want {
		want[i] = i
	}
	require.Equal(t, want, all, "groups must cover every index exactly once")
}

// bruteSpread returns the minimum max-min spread over all k^n assignments.
func bruteSpread(w []float64, k int) float64 {
	var (
		n      = len(w)
		assign = make([]int, n)
		sums   = make([]float64, k)
		best   = math.Inf(1)
	)
	var rec func(i int)
	rec = func(i int) {
		if i == n {
			best = math.Min(best, slices.Max(sums)-slices.Min(sums))
			return
		}
		for g := 0; g < k; g++ {
			assign[i] = g
			sums[g] += w[i]
			rec(i + 1)
			sums[g] -= w[i]
		}
	}
	rec(0)

	return best
}
