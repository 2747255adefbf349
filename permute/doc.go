// Package permute enumerates every ordering of a small set of labels.
//
// 🚀 What is it for?
//
//	The CKK partition engine (package ckk) merges two load vectors under
//	every possible slot alignment. An alignment is a permutation of the
//	slot labels 0..k-1, and this package produces all k! of them.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/evenbins/permute"
//
//	for _, p := range permute.All(permute.Identity(3)) {
//		fmt.Println(p)
//	}
//
// Algorithm:
//
//	Recursive position swapping. Each level picks the leading open slot
//	and, for every still-open position s (ascending), swaps s into that
//	slot and marks s as fixed. A branch is emitted once only one open
//	position remains. The output order is deterministic, which keeps the
//	tie-breaks of the partition engine reproducible.
//
// Performance:
//
//   - Time:   O(k·k!)
//   - Memory: O(k·k!) for the returned slice
//
// Results are never cached: every call recomputes from scratch. All
// functions are pure and safe for concurrent use.
package permute
