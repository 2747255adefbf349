package ckk_test

import (
	"fmt"

	"github.com/katalvlaran/evenbins/ckk"
)

// ExamplePartition splits six weights into two even groups.
func ExamplePartition() {
	w := []float64{400, 300, 50, 300, 70, 30}
	res, err := ckk.Partition(w, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	spread, _ := ckk.Spread(w, res.Groups)
	fmt.Println("groups:", res.Groups)
	fmt.Println("sums:  ", ckk.Sums(w, res.Groups))
	fmt.Println("spread:", spread)
	// Output:
	// groups: [[1 3] [0 4 2 5]]
	// sums:   [600 550]
	// spread: 50
}
