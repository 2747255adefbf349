package metrics

import "math"

// Numeric computes per-category count and arithmetic mean of values.
//
// Errors: ErrEmptyInput, ErrLengthMismatch, ErrNegativeLabel, ErrLabelGap,
// ErrNonFiniteValue.
func Numeric(labels []int, values []float64) (Categories, error) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Categories{}, ErrNonFiniteValue
		}
	}

	return aggregate(labels, values, func(v float64) float64 { return v })
}

// TrueRate computes per-category count and the fraction of true values.
//
// Errors: ErrEmptyInput, ErrLengthMismatch, ErrNegativeLabel, ErrLabelGap.
func TrueRate(labels []int, values []bool) (Categories, error) {
	return aggregate(labels, values, func(v bool) float64 {
		if v {
			return 1
		}
		return 0
	})
}

// New builds a descriptor set from precomputed parallel slices.
// ids must be a permutation of 0..len(ids)-1 and every count positive.
//
// Errors: ErrEmptyInput, ErrLengthMismatch, ErrNegativeLabel, ErrLabelGap,
// ErrBadCount, ErrNonFiniteValue.
func New(ids, counts []int, means []float64) (Categories, error) {
	g := len(ids)
	if g == 0 {
		return Categories{}, ErrEmptyInput
	}
	if len(counts) != g || len(means) != g {
		return Categories{}, ErrLengthMismatch
	}

	pos := make([]int, g)
	seen := make([]bool, g)
	var i int
	for i = 0; i < g; i++ {
		switch {
		case ids[i] < 0:
			return Categories{}, ErrNegativeLabel
		case ids[i] >= g || seen[ids[i]]:
			return Categories{}, ErrLabelGap
		case counts[i] <= 0:
			return Categories{}, ErrBadCount
		case math.IsNaN(means[i]) || math.IsInf(means[i], 0):
			return Categories{}, ErrNonFiniteValue
		}
		seen[ids[i]] = true
		pos[ids[i]] = i
	}

	return Categories{
		ids:    append([]int(nil), ids...),
		counts: append([]int(nil), counts...),
		means:  append([]float64(nil), means...),
		pos:    pos,
	}, nil
}

// aggregate is the shared count/mean pass. score maps a value to the
// quantity being averaged.
func aggregate[T any](labels []int, values []T, score func(T) float64) (Categories, error) {
	n := len(labels)
	if n == 0 {
		return Categories{}, ErrEmptyInput
	}
	if len(values) != n {
		return Categories{}, ErrLengthMismatch
	}

	maxLabel := 0
	for _, l := range labels {
		if l < 0 {
			return Categories{}, ErrNegativeLabel
		}
		if l > maxLabel {
			maxLabel = l
		}
	}
	// n labels can cover at most 0..n-1.
	if maxLabel >= n {
		return Categories{}, ErrLabelGap
	}

	var (
		g      = maxLabel + 1
		counts = make([]int, g)
		sums   = make([]float64, g)
		order  = make([]int, 0, g)
		i, l   int
	)
	for i, l = range labels {
		if counts[l] == 0 {
			order = append(order, l)
		}
		counts[l]++
		sums[l] += score(values[i])
	}
	if len(order) != g {
		return Categories{}, ErrLabelGap
	}

	c := Categories{
		ids:    order,
		counts: make([]int, g),
		means:  make([]float64, g),
		pos:    make([]int, g),
	}
	for i, l = range order {
		c.counts[i] = counts[l]
		c.means[i] = sums[l] / float64(counts[l])
		c.pos[l] = i
	}

	return c, nil
}
