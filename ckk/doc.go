// Package ckk implements exact multiway number partitioning with the
// Complete Karmarkar-Karp (CKK) differencing method.
//
// 🚀 What is CKK?
//
//	Given n real weights and a partition count k, find k groups whose
//	sums are as close to equal as possible. Karmarkar-Karp repeatedly
//	merges the two largest remaining loads, offsetting their difference;
//	the Complete variant explores every slot alignment at each merge
//	instead of a single greedy one, turning the heuristic into a search
//	tree with branch-and-bound pruning.
//
// Algorithm Outline:
//  1. naive = Σw / k.
//  2. Sort weights descending (stable) and wrap each in a unit
//     super-tuple: load = [w, 0, …, 0], groups = [{i}, {}, …, {}].
//  3. While more than one super-tuple remains, take the two largest A, B
//     and for every permutation p of 0..k-1:
//     load[i]   = A.load[i] + B.load[p[i]]
//     groups[i] = A.groups[i] ++ B.groups[p[i]]
//     subtract min(load) from every slot,
//     prune if |max(load) − Σrest/k| > naive,
//     otherwise put the merged tuple in front of the rest, re-sort
//     descending by sum and recurse.
//  4. A single remaining super-tuple is a leaf scored by Σload.
//  5. The lowest-scoring leaf wins; among exact ties the last leaf in
//     search order is kept.
//
// Boundaries:
//   - k == 1 returns one group holding every index.
//   - k == n returns n singleton groups.
//   - When the prune test rejects every branch, the search is repeated
//     with a doubled threshold (Result.Widenings counts the retries),
//     ending with an unpruned pass. The first pass always uses the
//     exact trigger above.
//
// Complexity:
//   - Time:   O((k!)^(n-1)) worst case; pruning is the only brake, so
//     callers must keep n and k small.
//   - Memory: the whole search tree lives for one call. Bin assignments
//     are stored once in an arena of concatenation cells and referenced
//     by integer handles, so merges never deep-copy index lists.
//
// Errors:
//   - ErrEmptyInput        — no weights.
//   - ErrInvalidPartitions — k < 1 or k > n.
//   - ErrNonFiniteWeight   — NaN or ±Inf weight.
//
// No logging, no panics on user input. Each call owns its state, so
// concurrent calls are safe.
package ckk
