package ckk

import (
	"math"
	"slices"
)

// nodeKind tags a search-tree node.
type nodeKind uint8

const (
	// kindBranch fans out into one child per surviving permutation.
	kindBranch nodeKind = iota
	// kindLeaf is a fully merged candidate; only leaves are scored.
	kindLeaf
	// kindPruned marks a rejected branch. It carries no payload and never
	// reaches scoring.
	kindPruned
)

// node is one vertex of the CKK search tree. Each node owns its children.
type node struct {
	kind     nodeKind
	score    float64    // kindLeaf only
	groups   []groupRef // kindLeaf only
	children []node     // kindBranch only
}

// tuple is a partially merged candidate: a load vector of length k and
// the matching bin assignment.
type tuple struct {
	load   []float64
	groups []groupRef
	sum    float64
}

// leaf is a flattened scored candidate.
type leaf struct {
	score  float64
	groups []groupRef
}

// engine holds the per-call search state.
type engine struct {
	k         int
	perms     [][]int
	threshold float64 // prune when the live deviation exceeds this
	arena     *arena
	pruned    int
}

// build expands the search tree below ts. ts is sorted descending by sum
// and is never modified.
func (e *engine) build(ts []tuple) node {
	if len(ts) == 1 {
		return node{kind: kindLeaf, score: ts[0].sum, groups: ts[0].groups}
	}

	var (
		a, b    = ts[0], ts[1]
		rest    = ts[2:]
		restSum float64
	)
	for _, t := range rest {
		restSum += t.sum
	}
	live := restSum / float64(e.k)

	children := make([]node, 0, len(e.perms))
	for _, p := range e.perms {
		child := e.merge(a, b, p, rest, live)
		if child.kind == kindPruned {
			e.pruned++
			continue
		}
		children = append(children, child)
	}

	return node{kind: kindBranch, children: children}
}

// merge aligns b onto a with permutation p, normalizes, applies the
// bound and recurses on the survivors.
func (e *engine) merge(a, b tuple, p []int, rest []tuple, live float64) node {
	var (
		load = make([]float64, e.k)
		lo   = math.MaxFloat64
		hi   = -math.MaxFloat64
		i    int
	)
	for i = 0; i < e.k; i++ {
		load[i] = a.load[i] + b.load[p[i]]
		lo = math.Min(lo, load[i])
	}
	var sum float64
	for i = 0; i < e.k; i++ {
		load[i] -= lo
		hi = math.Max(hi, load[i])
		sum += load[i]
	}
	if compareFloat(math.Abs(hi-live), e.threshold) > 0 {
		return node{kind: kindPruned}
	}

	groups := make([]groupRef, e.k)
	for i = 0; i < e.k; i++ {
		groups[i] = e.arena.concat(a.groups[i], b.groups[p[i]])
	}

	next := make([]tuple, 0, len(rest)+1)
	next = append(next, tuple{load: load, groups: groups, sum: sum})
	next = append(next, rest...)
	sortBySumDesc(next)

	return e.build(next)
}

// flatten appends every leaf below n in depth-first child order.
func flatten(n node, out []leaf) []leaf {
	switch n.kind {
	case kindLeaf:
		return append(out, leaf{score: n.score, groups: n.groups})
	case kindBranch:
		for _, c := range n.children {
			out = flatten(c, out)
		}
	}

	return out
}

// best sorts leaves by descending score (stable) and returns the last one:
// the minimum, and among exact ties the latest in search order.
func best(leaves []leaf) leaf {
	slices.SortStableFunc(leaves, func(x, y leaf) int {
		return compareFloat(y.score, x.score)
	})

	return leaves[len(leaves)-1]
}

// sortBySumDesc orders tuples by descending sum, keeping the relative
// order of equal sums.
func sortBySumDesc(ts []tuple) {
	slices.SortStableFunc(ts, func(x, y tuple) int {
		return compareFloat(y.sum, x.sum)
	})
}

// compareFloat is a three-way comparison that treats unordered pairs
// (NaN on either side) as equal.
func compareFloat(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
