// Package evenbins groups numeric data: it splits weights into evenly
// loaded groups and coarsens fine-grained categories into a few
// information-preserving super-bins.
//
// 🚀 What is inside?
//
//   - EvenPartition — exact multiway number partitioning (CKK)
//   - PreserveInformation — contiguous category merging scored by a
//     Fisher-like stratified variance (numeric values)
//   - PreserveInformationBool — the same over boolean values (true-rate)
//
// Under the hood the work is split across four subpackages:
//
//	permute/ — permutation enumerator (k! slot alignments)
//	metrics/ — per-category count and mean descriptors
//	ckk/     — Complete Karmarkar-Karp search tree with pruning
//	segment/ — exhaustive / divide and conquer segmentation
//
// Both solvers are single-threaded, synchronous and keep no state between
// calls, so concurrent calls are safe. Malformed input is reported with
// sentinel errors from the package that detected it; match them with
// errors.Is.
//
// Quick example:
//
//	groups, err := evenbins.EvenPartition([]float64{400, 300, 50, 300, 70, 30}, 2)
//	// groups == [][]int{{1, 3}, {0, 4, 2, 5}}
//
// A command-line front end lives in cmd/evenbins.
//
//	go get github.com/katalvlaran/evenbins
package evenbins
