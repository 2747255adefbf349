package evenbins_test

import (
	"fmt"

	"github.com/katalvlaran/evenbins"
)

// ExampleEvenPartition splits four weights into two groups.
func ExampleEvenPartition() {
	groups, err := evenbins.EvenPartition([]float64{400, 50, 250, 300}, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(groups)
	// Output: [[2 3] [0 1]]
}

// ExamplePreserveInformationBool merges three flag categories into two bins.
func ExamplePreserveInformationBool() {
	labels := []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}
	flags := []bool{
		true, false, false, false,
		false, false, false, false,
		true, true, true, true,
	}
	opts := evenbins.Options{Bins: 2, Layout: []int{1, 0, 2}}
	groups, err := evenbins.PreserveInformationBool(labels, flags, &opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(groups)
	// Output: [[1 0] [2]]
}
