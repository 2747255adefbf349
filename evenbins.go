package evenbins

import (
	"slices"

	"github.com/katalvlaran/evenbins/ckk"
	"github.com/katalvlaran/evenbins/metrics"
	"github.com/katalvlaran/evenbins/segment"
)

// Binning is the detailed outcome of Bin.
type Binning struct {
	// Groups are the super-bins, each a run of category ids.
	Groups [][]int

	// Score is the Fisher score of Groups (lower is better).
	Score float64

	// Layout is the category order the runs were cut from.
	Layout []int
}

// EvenPartition splits weights into partitions groups of original indices
// with sums as even as possible. See package ckk for the search.
//
// Errors: ckk.ErrEmptyInput, ckk.ErrInvalidPartitions, ckk.ErrNonFiniteWeight.
func EvenPartition(weights []float64, partitions int) ([][]int, error) {
	res, err := ckk.Partition(weights, partitions)
	if err != nil {
		return nil, err
	}

	return res.Groups, nil
}

// PreserveInformation merges the categories named by labels into a few
// contiguous super-bins, scoring categories by the mean of values.
// A nil opts means DefaultOptions().
//
// Errors: the metrics sentinels for malformed labels/values, plus
// ErrInvalidOptions, ErrInvalidLayout and segment.ErrInvalidBins.
func PreserveInformation(labels []int, values []float64, opts *Options) ([][]int, error) {
	cats, err := metrics.Numeric(labels, values)
	if err != nil {
		return nil, err
	}
	b, err := Bin(cats, opts)
	if err != nil {
		return nil, err
	}

	return b.Groups, nil
}

// PreserveInformationBool is PreserveInformation over boolean values,
// scoring categories by their true-rate.
func PreserveInformationBool(labels []int, values []bool, opts *Options) ([][]int, error) {
	cats, err := metrics.TrueRate(labels, values)
	if err != nil {
		return nil, err
	}
	b, err := Bin(cats, opts)
	if err != nil {
		return nil, err
	}

	return b.Groups, nil
}

// Bin segments an existing descriptor set. A nil opts means DefaultOptions().
func Bin(cats metrics.Categories, opts *Options) (Binning, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Bins < 0 {
		return Binning{}, ErrInvalidOptions
	}

	layout, err := arrange(cats, o)
	if err != nil {
		return Binning{}, err
	}
	bins := o.Bins
	if bins == 0 {
		bins = DefaultBins(len(layout))
	}

	groups, err := segment.Solve(layout, cats, bins)
	if err != nil {
		return Binning{}, err
	}

	return Binning{
		Groups: groups,
		Score:  segment.FisherScore(groups, cats),
		Layout: layout,
	}, nil
}

// arrange returns the category order runs are cut from.
func arrange(cats metrics.Categories, o Options) ([]int, error) {
	if o.Layout != nil {
		return checkLayout(cats, o.Layout)
	}

	ids := cats.IDs()
	switch o.Order {
	case FirstSeen:
		return ids, nil
	case ByMeanDescending:
		slices.SortStableFunc(ids, func(a, b int) int {
			return compareMean(cats.Mean(b), cats.Mean(a))
		})
		return ids, nil
	case ByMeanAscending:
		slices.SortStableFunc(ids, func(a, b int) int {
			return compareMean(cats.Mean(a), cats.Mean(b))
		})
		return ids, nil
	default:
		return nil, ErrInvalidOptions
	}
}

// checkLayout verifies layout lists every category id exactly once.
func checkLayout(cats metrics.Categories, layout []int) ([]int, error) {
	if len(layout) != cats.Len() {
		return nil, ErrInvalidLayout
	}
	seen := make([]bool, cats.Len())
	for _, id := range layout {
		if _, ok := cats.Index(id); !ok || seen[id] {
			return nil, ErrInvalidLayout
		}
		seen[id] = true
	}

	return append([]int(nil), layout...), nil
}

// compareMean orders means; NaN pairs compare equal.
func compareMean(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
