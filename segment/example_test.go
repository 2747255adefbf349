package segment_test

import (
	"fmt"

	"github.com/katalvlaran/evenbins/metrics"
	"github.com/katalvlaran/evenbins/segment"
)

// ExampleSolve merges three categories into two contiguous super-bins.
func ExampleSolve() {
	cats, _ := metrics.Numeric(
		[]int{0, 0, 1, 1, 2, 2},
		[]float64{400, 50, 250, 300, 100, 400},
	)
	seg, err := segment.Solve([]int{1, 0, 2}, cats, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(seg, segment.FisherScore(seg, cats))
	// Output: [[1] [0 2]] 625
}
