package ckk

import (
	"math"
	"slices"

	"github.com/katalvlaran/evenbins/permute"
)

// Partition splits weights into k groups with sums as even as the CKK
// search can make them. See the package documentation for the algorithm,
// the tie-break rule and the boundary cases.
//
// Example:
//
//	res, err := ckk.Partition([]float64{400, 300, 50, 300, 70, 30}, 2)
//	// res.Groups == [][]int{{1, 3}, {0, 4, 2, 5}}
func Partition(weights []float64, k int) (Result, error) {
	n := len(weights)
	if n == 0 {
		return Result{}, ErrEmptyInput
	}
	if k < 1 || k > n {
		return Result{}, ErrInvalidPartitions
	}
	var (
		total, absTotal float64
		w               float64
	)
	for _, w = range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return Result{}, ErrNonFiniteWeight
		}
		total += w
		absTotal += math.Abs(w)
	}

	if k == 1 {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return Result{Groups: [][]int{all}, Leaves: 1}, nil
	}
	if k == n {
		groups := make([][]int, n)
		for i := range groups {
			groups[i] = []int{i}
		}
		sums := Sums(weights, groups)
		return Result{Groups: groups, Score: normalizedSum(sums), Leaves: 1}, nil
	}

	order := sortOrder(weights)
	perms := permute.All(permute.Identity(k))
	threshold := total / float64(k)

	var (
		e      *engine
		leaves []leaf
		rounds int
	)
	for {
		e = &engine{
			k:         k,
			perms:     perms,
			threshold: threshold,
			arena:     newArena(n * k),
		}
		leaves = flatten(e.build(unitTuples(weights, order, k, e.arena)), nil)
		if len(leaves) > 0 {
			break
		}
		rounds++
		threshold = widen(threshold, absTotal, k)
	}

	win := best(leaves)
	groups := make([][]int, k)
	var i, j int
	for i = 0; i < k; i++ {
		groups[i] = e.arena.collect(win.groups[i], make([]int, 0, n/k+1))
		for j = range groups[i] {
			groups[i][j] = order[groups[i][j]]
		}
	}

	return Result{
		Groups:    groups,
		Score:     win.score,
		Leaves:    len(leaves),
		Pruned:    e.pruned,
		Widenings: rounds,
	}, nil
}

// sortOrder returns original indices by descending weight. Equal weights
// appear in reverse input order: the ascending stable sort is read back
// to front.
func sortOrder(weights []float64) []int {
	asc := make([]int, len(weights))
	for i := range asc {
		asc[i] = i
	}
	slices.SortStableFunc(asc, func(x, y int) int {
		return compareFloat(weights[x], weights[y])
	})
	slices.Reverse(asc)

	return asc
}

// unitTuples wraps each weight, largest first, in a super-tuple whose
// slot 0 carries the weight and the item's position in order.
func unitTuples(weights []float64, order []int, k int, ar *arena) []tuple {
	ts := make([]tuple, len(order))
	for local, orig := range order {
		load := make([]float64, k)
		load[0] = weights[orig]
		groups := make([]groupRef, k)
		for i := range groups {
			groups[i] = noGroup
		}
		groups[0] = ar.single(local)
		ts[local] = tuple{load: load, groups: groups, sum: weights[orig]}
	}

	return ts
}

// widen grows a threshold that rejected every branch. Once it exceeds any
// reachable deviation it becomes +Inf, which disables pruning.
func widen(threshold, absTotal float64, k int) float64 {
	switch {
	case threshold > 2*absTotal:
		return math.Inf(1)
	case threshold <= 0:
		if absTotal > 0 {
			return absTotal / float64(k)
		}
		return 1
	default:
		return 2 * threshold
	}
}

// normalizedSum is Σ(s − min(s)), the leaf score of a finished assignment.
func normalizedSum(sums []float64) float64 {
	lo := slices.Min(sums)
	var total float64
	for _, s := range sums {
		total += s - lo
	}

	return total
}
