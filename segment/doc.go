// Package segment coarsens an ordered sequence of categories into a
// smaller number of contiguous super-bins while preserving as much of
// their statistical dispersion as possible.
//
// Scoring (Fisher-like stratified variance):
//
//	For a run R with members c:
//	  strataMean(R) = Σ count[c]·mean[c] / Σ count[c]
//	  cost(R)       = Σ count[c]·(mean[c] − strataMean(R))²
//	score(segmentation) = Σ cost(R) over all runs. Lower is better.
//
// Search:
//   - ≤ ExhaustiveLimit ids: every cut of the sequence into exactly
//     `bins` non-empty contiguous runs is scored; the first minimum in
//     enumeration order wins (strict less-than).
//   - > ExhaustiveLimit ids: split at round(n/2), solve the left half with
//     bins/2 and the right half with the remaining bins, concatenate.
//     This divide and conquer step is an approximation: it carries no
//     optimality bound. Keep inputs at or under the limit when a global
//     optimum is required.
//
// Enumeration order: the first run grows from length 1, and for each
// first run the remaining runs are enumerated the same way. For ids
// [0 1 2 3] and 3 bins:
//
//	[0] [1] [2 3]
//	[0] [1 2] [3]
//	[0 1] [2] [3]
//
// Complexity:
//   - Exhaustive: C(n−1, bins−1) candidates, each scored in O(n).
//   - Divide and conquer: O(log bins) recursion depth.
//
// Errors: ErrEmptyInput, ErrInvalidBins, ErrUnknownCategory, ErrDuplicateID.
package segment
