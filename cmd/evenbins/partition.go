package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/evenbins/ckk"
)

// partitionReport is the YAML document printed by `evenbins partition`.
type partitionReport struct {
	Groups    [][]int   `yaml:"groups,flow"`
	Sums      []float64 `yaml:"sums,flow"`
	Spread    float64   `yaml:"spread"`
	Score     float64   `yaml:"score"`
	Leaves    int       `yaml:"leaves"`
	Pruned    int       `yaml:"pruned"`
	Widenings int       `yaml:"widenings"`
}

func newPartitionCmd(a *app) *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "partition FILE",
		Short: "Split weights into k groups with sums as even as possible",
		Long: `Reads {weights: [...], partitions: N} from FILE (YAML or JSON) and runs
the exact Complete Karmarkar-Karp search. -k overrides partitions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPartition(args[0], k)
		},
	}
	cmd.Flags().IntVarP(&k, "partitions", "k", 0, "number of groups (overrides the file)")

	return cmd
}

func (a *app) runPartition(path string, k int) error {
	var in partitionInput
	if err := readInput(path, &in); err != nil {
		return err
	}
	if k == 0 {
		k = in.Partitions
	}
	if k == 0 {
		return fmt.Errorf("%s: %w", path, ckk.ErrInvalidPartitions)
	}
	if a.cfg.MaxWeights > 0 && len(in.Weights) > a.cfg.MaxWeights {
		return fmt.Errorf("%d weights, limit %d: %w", len(in.Weights), a.cfg.MaxWeights, errTooManyWeights)
	}
	if est := searchLeaves(len(in.Weights), k); a.cfg.MaxLeaves > 0 && est > float64(a.cfg.MaxLeaves) {
		return fmt.Errorf("n=%d k=%d may expand to %.3g leaves, limit %d: %w",
			len(in.Weights), k, est, a.cfg.MaxLeaves, errSearchTooLarge)
	}

	a.log.Debug("partition input", "file", path, "weights", len(in.Weights), "k", k)
	start := time.Now()
	res, err := ckk.Partition(in.Weights, k)
	if err != nil {
		return fmt.Errorf("partition %s: %w", path, err)
	}
	spread, err := ckk.Spread(in.Weights, res.Groups)
	if err != nil {
		return fmt.Errorf("partition %s: %w", path, err)
	}
	a.log.Info("partition solved",
		"leaves", res.Leaves,
		"pruned", res.Pruned,
		"widenings", res.Widenings,
		"elapsed", time.Since(start),
	)

	return writeYAML(a, partitionReport{
		Groups:    res.Groups,
		Sums:      ckk.Sums(in.Weights, res.Groups),
		Spread:    spread,
		Score:     res.Score,
		Leaves:    res.Leaves,
		Pruned:    res.Pruned,
		Widenings: res.Widenings,
	})
}

// searchLeaves returns (k!)^(n-1), the leaf count of the CKK tree before
// pruning. k == 1 and k == n are solved without a search and cost 1.
func searchLeaves(n, k int) float64 {
	if k <= 1 || k >= n {
		return 1
	}
	fact := 1.0
	for i := 2; i <= k; i++ {
		fact *= float64(i)
	}

	return math.Pow(fact, float64(n-1))
}
