package evenbins

import (
	"errors"
	"math"
)

var (
	// ErrInvalidOptions indicates a negative bin count or an unknown Order.
	ErrInvalidOptions = errors.New("evenbins: invalid options")

	// ErrInvalidLayout indicates a Layout that is not a permutation of the category ids.
	ErrInvalidLayout = errors.New("evenbins: layout is not a permutation of category ids")
)

// Order selects how categories are laid out before contiguous runs are cut.
type Order int

const (
	// FirstSeen keeps the order in which labels first occur, so runs
	// follow the caller's own category ordering. This is the default.
	FirstSeen Order = iota

	// ByMeanDescending lays categories out by descending mean, ties kept
	// in first-seen order. Contiguous runs then join value-adjacent
	// categories, which changes the layout the runs are cut from.
	ByMeanDescending

	// ByMeanAscending is ByMeanDescending reversed in direction.
	ByMeanAscending
)

// String returns the flag spelling of o.
func (o Order) String() string {
	switch o {
	case ByMeanDescending:
		return "mean-desc"
	case ByMeanAscending:
		return "mean-asc"
	case FirstSeen:
		return "first-seen"
	default:
		return "unknown"
	}
}

// ParseOrder is the inverse of Order.String.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "first-seen", "":
		return FirstSeen, nil
	case "mean-desc":
		return ByMeanDescending, nil
	case "mean-asc":
		return ByMeanAscending, nil
	default:
		return 0, ErrInvalidOptions
	}
}

// Options configures information-preserving binning.
//
// Fields:
//   - Bins   — target number of super-bins; 0 selects DefaultBins.
//   - Order  — category layout policy, ignored when Layout is set.
//     The zero value FirstSeen keeps the first-seen category order.
//   - Layout — explicit category order; must list every id exactly once.
//
// Example:
//
//	opts := evenbins.DefaultOptions()
//	opts.Bins = 3
//	groups, err := evenbins.PreserveInformation(labels, values, &opts)
type Options struct {
	Bins   int
	Order  Order
	Layout []int
}

// DefaultOptions returns automatic bin count and FirstSeen layout.
func DefaultOptions() Options {
	return Options{Bins: 0, Order: FirstSeen}
}

// DefaultBins returns max(2, ⌊∛g⌋) clamped to g, the bin count used
// when Options.Bins is 0.
func DefaultBins(g int) int {
	if g <= 0 {
		return 0
	}
	r := int(math.Cbrt(float64(g)))
	for (r+1)*(r+1)*(r+1) <= g {
		r++
	}
	for r > 0 && r*r*r > g {
		r--
	}

	return min(max(2, r), g)
}
