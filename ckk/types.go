package ckk

import "errors"

var (
	// ErrEmptyInput indicates that no weights were supplied.
	ErrEmptyInput = errors.New("ckk: empty weight sequence")

	// ErrInvalidPartitions indicates k < 1 or k greater than the number of weights.
	ErrInvalidPartitions = errors.New("ckk: partition count out of range")

	// ErrNonFiniteWeight indicates a NaN or infinite weight.
	ErrNonFiniteWeight = errors.New("ckk: weight is NaN or infinite")

	// ErrIndexOutOfRange indicates a group references a missing weight.
	ErrIndexOutOfRange = errors.New("ckk: group index out of range")
)

// Result is the outcome of Partition.
type Result struct {
	// Groups holds k groups of original 0-based indices. Every index
	// 0..n-1 appears exactly once across all groups.
	Groups [][]int

	// Score is the winning leaf's normalized load sum: Σ(load[i] − min).
	// A perfectly even split scores 0.
	Score float64

	// Leaves is the number of scored leaves in the final search pass.
	Leaves int

	// Pruned is the number of branches cut by the bound in the final pass.
	Pruned int

	// Widenings counts the extra passes needed because the bound
	// rejected every branch.
	Widenings int
}
