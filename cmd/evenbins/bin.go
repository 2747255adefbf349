package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/evenbins"
	"github.com/katalvlaran/evenbins/metrics"
)

// binReport is the YAML document printed by `evenbins bin`.
type binReport struct {
	Groups [][]int `yaml:"groups,flow"`
	Layout []int   `yaml:"layout,flow"`
	Bins   int     `yaml:"bins"`
	Score  float64 `yaml:"fisher_score"`
}

func newBinCmd(a *app) *cobra.Command {
	var (
		bins  int
		order string
	)
	cmd := &cobra.Command{
		Use:   "bin FILE",
		Short: "Merge categories into contiguous information-preserving super-bins",
		Long: `Reads {labels: [...], values: [...]} or {labels: [...], flags: [...]}
from FILE (YAML or JSON). Labels must be dense 0-based category ids.
--bins 0 picks max(2, cube root of the category count).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.binOptions(cmd, bins, order)
			if err != nil {
				return err
			}
			return a.runBin(args[0], opts)
		},
	}
	cmd.Flags().IntVar(&bins, "bins", 0, "number of super-bins, 0 for automatic (overrides config)")
	cmd.Flags().StringVar(&order, "order", "", "category layout: mean-desc, mean-asc or first-seen (overrides config)")

	return cmd
}

// binOptions merges config values with explicitly set flags.
func (a *app) binOptions(cmd *cobra.Command, bins int, order string) (evenbins.Options, error) {
	opts := evenbins.DefaultOptions()
	opts.Bins = a.cfg.Bins
	name := a.cfg.Order
	if cmd.Flags().Changed("bins") {
		opts.Bins = bins
	}
	if cmd.Flags().Changed("order") {
		name = order
	}
	o, err := evenbins.ParseOrder(name)
	if err != nil {
		return evenbins.Options{}, fmt.Errorf("order %q: %w", name, err)
	}
	opts.Order = o

	return opts, nil
}

func (a *app) runBin(path string, opts evenbins.Options) error {
	var in binInput
	if err := readInput(path, &in); err != nil {
		return err
	}

	var (
		cats metrics.Categories
		err  error
		mode = "numeric"
	)
	if in.Flags != nil {
		mode = "true-rate"
		cats, err = metrics.TrueRate(in.Labels, in.Flags)
	} else {
		cats, err = metrics.Numeric(in.Labels, in.Values)
	}
	if err != nil {
		return fmt.Errorf("bin %s: %w", path, err)
	}
	a.log.Debug("bin input", "file", path, "mode", mode, "elements", cats.Total(), "categories", cats.Len())

	b, err := evenbins.Bin(cats, &opts)
	if err != nil {
		return fmt.Errorf("bin %s: %w", path, err)
	}
	a.log.Info("binning solved", "bins", len(b.Groups), "order", opts.Order, "score", b.Score)

	return writeYAML(a, binReport{
		Groups: b.Groups,
		Layout: b.Layout,
		Bins:   len(b.Groups),
		Score:  b.Score,
	})
}
