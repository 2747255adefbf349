package permute

// Identity returns the labels 0..k-1 in ascending order.
// A non-positive k yields an empty slice.
func Identity(k int) []int {
	if k <= 0 {
		return []int{}
	}
	out := make([]int, k)
	var i int
	for i = 0; i < k; i++ {
		out[i] = i
	}

	return out
}

// Count returns k!, the number of permutations All produces for k labels.
// Count(0) is 1 (the single empty ordering).
func Count(k int) int {
	var (
		n = 1
		i int
	)
	for i = 2; i <= k; i++ {
		n *= i
	}

	return n
}

// All returns every permutation of labels, each as a fresh slice.
//
// The input is never modified. len(result) == Count(len(labels)) and each
// entry is a bijection of labels onto itself. For an empty input a single
// empty permutation is returned.
//
// Example:
//
//	All([]int{0, 1, 2})
//	// [[0 1 2] [0 2 1] [1 0 2] [2 0 1] [2 1 0] [1 2 0]]
func All(labels []int) [][]int {
	k := len(labels)
	out := make([][]int, 0, Count(k))
	if k == 0 {
		return append(out, []int{})
	}

	cur := make([]int, k)
	copy(cur, labels)
	fixed := make([]bool, k)

	return swapInto(cur, fixed, 0, out)
}

// swapInto is the recursive step of All. nFixed counts true entries of fixed.
// cur and fixed are owned by the caller; each branch works on its own copies.
func swapInto(cur []int, fixed []bool, nFixed int, out [][]int) [][]int {
	k := len(cur)
	if nFixed >= k-1 {
		return append(out, cur)
	}

	lead := leadingOpen(fixed)
	var s int
	for s = 0; s < k; s++ {
		if fixed[s] {
			continue
		}
		next := make([]int, k)
		copy(next, cur)
		nextFixed := make([]bool, k)
		copy(nextFixed, fixed)

		nextFixed[s] = true
		next[lead], next[s] = next[s], next[lead]
		out = swapInto(next, nextFixed, nFixed+1, out)
	}

	return out
}

// leadingOpen returns the first position not yet fixed.
func leadingOpen(fixed []bool) int {
	var i int
	for i = range fixed {
		if !fixed[i] {
			return i
		}
	}

	return 0
}
