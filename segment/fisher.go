package segment

import "github.com/katalvlaran/evenbins/metrics"

// FisherScore returns the stratified variance of seg under cats.
// Ids unknown to cats contribute nothing; empty runs are skipped.
func FisherScore(seg [][]int, cats metrics.Categories) float64 {
	var total float64
	for _, run := range seg {
		total += runCost(run, cats)
	}

	return total
}

// runCost is Σ count·(mean − strataMean)² over the members of one run.
func runCost(run []int, cats metrics.Categories) float64 {
	var (
		n, weighted float64
		c           float64
	)
	for _, id := range run {
		c = float64(cats.Count(id))
		n += c
		weighted += c * cats.Mean(id)
	}
	if n == 0 {
		return 0
	}
	strata := weighted / n

	var cost, d float64
	for _, id := range run {
		d = cats.Mean(id) - strata
		cost += d * d * float64(cats.Count(id))
	}

	return cost
}
