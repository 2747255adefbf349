package ckk

import "slices"

// Sums returns the weight total of every group. Indices outside weights
// are ignored; use Spread for a checked variant.
func Sums(weights []float64, groups [][]int) []float64 {
	out := make([]float64, len(groups))
	for g, grp := range groups {
		for _, i := range grp {
			if i >= 0 && i < len(weights) {
				out[g] += weights[i]
			}
		}
	}

	return out
}

// Spread returns the difference between the heaviest and the lightest
// group sum of an assignment.
//
// Errors: ErrEmptyInput if groups is empty, ErrIndexOutOfRange if a group
// references a missing weight.
func Spread(weights []float64, groups [][]int) (float64, error) {
	if len(groups) == 0 {
		return 0, ErrEmptyInput
	}
	for _, grp := range groups {
		for _, i := range grp {
			if i < 0 || i >= len(weights) {
				return 0, ErrIndexOutOfRange
			}
		}
	}
	sums := Sums(weights, groups)

	return slices.Max(sums) - slices.Min(sums), nil
}
