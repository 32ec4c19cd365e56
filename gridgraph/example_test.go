package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/indexvec/gridgraph"
)

// ExampleGridGraph_ConnectedComponents lists the islands of a small map.
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{0, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	cs := gg.ConnectedComponents()
	fmt.Println("components:", cs.Len())
	for k, cells := range cs.Cells.Enumerate() {
		fmt.Printf("component %v:", k)
		for _, c := range cells {
			fmt.Printf(" (%s)", gg.Label(c))
		}
		fmt.Println()
	}

	// Output:
	// components: 3
	// component 0: (1,0) (2,0) (1,1)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
	// component 2: (0,2)
}
