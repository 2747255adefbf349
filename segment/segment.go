package segment

import (
	"math"

	"github.com/katalvlaran/evenbins/metrics"
)

// Solve cuts ids into exactly bins contiguous runs minimizing FisherScore.
// The concatenation of the returned runs equals ids.
//
// Errors:
//   - ErrEmptyInput      — ids is empty.
//   - ErrInvalidBins     — bins < 1 or bins > len(ids).
//   - ErrUnknownCategory — an id has no descriptor in cats.
//   - ErrDuplicateID     — an id occurs twice.
func Solve(ids []int, cats metrics.Categories, bins int) ([][]int, error) {
	n := len(ids)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if bins < 1 || bins > n {
		return nil, ErrInvalidBins
	}
	seen := make(map[int]struct{}, n)
	for _, id := range ids {
		if _, ok := cats.Index(id); !ok {
			return nil, ErrUnknownCategory
		}
		if _, dup := seen[id]; dup {
			return nil, ErrDuplicateID
		}
		seen[id] = struct{}{}
	}

	return solve(ids, cats, bins), nil
}

// solve assumes validated input with 1 <= bins <= len(ids).
func solve(ids []int, cats metrics.Categories, bins int) [][]int {
	if bins == 1 {
		return [][]int{clone(ids)}
	}
	if len(ids) <= ExhaustiveLimit {
		return exhaustive(ids, cats, bins)
	}

	nl, bl, br := halves(len(ids), bins)
	left := solve(ids[:nl], cats, bl)

	return append(left, solve(ids[nl:], cats, br)...)
}

// halves splits n ids at round(n/2) and bins into bins/2 and the rest,
// shifting bins across the cut when a half has fewer ids than bins.
func halves(n, bins int) (nl, bl, br int) {
	nl = int(math.Round(float64(n) / 2))
	nr := n - nl
	bl = bins / 2
	br = bins - bl
	if br > nr {
		bl += br - nr
		br = nr
	}
	if bl > nl {
		br += bl - nl
		bl = nl
	}

	return nl, bl, br
}

// exhaustive scores every contiguous cut and keeps the first minimum.
func exhaustive(ids []int, cats metrics.Categories, bins int) [][]int {
	var (
		best      [][]int
		bestScore = math.Inf(1)
		score     float64
	)
	Enumerate(ids, bins, func(seg [][]int) {
		score = FisherScore(seg, cats)
		if best == nil || score < bestScore {
			best = cloneSegmentation(seg)
			bestScore = score
		}
	})

	return best
}

// Enumerate calls fn with every way to cut ids into exactly bins
// non-empty contiguous runs, in left-to-right order (the first run grows
// from length 1). Runs alias ids and the slice passed to fn is reused
// between calls; copy it to retain it. Nothing is produced when
// bins < 1 or bins > len(ids).
func Enumerate(ids []int, bins int, fn func(seg [][]int)) {
	if bins < 1 || bins > len(ids) {
		return
	}
	cut(ids, bins, make([][]int, 0, bins), fn)
}

func cut(ids []int, bins int, prefix [][]int, fn func([][]int)) {
	if bins == 1 {
		fn(append(prefix, ids))
		return
	}
	var i int
	for i = 1; i <= len(ids)-bins+1; i++ {
		cut(ids[i:], bins-1, append(prefix, ids[:i]), fn)
	}
}

func clone(ids []int) []int { return append([]int(nil), ids...) }

func cloneSegmentation(seg [][]int) [][]int {
	out := make([][]int, len(seg))
	for i, run := range seg {
		out[i] = clone(run)
	}

	return out
}
