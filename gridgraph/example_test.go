// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridastar/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous regions of open cells in a grid with obstacles.
// Scenario:
//
//   - Grid values: 0 = open, 1 = blocked
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect three regions: top-left pair, right column, bottom-left pair.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 0, 1, 0},
		{1, 1, 1, 0},
		{0, 0, 1, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		cells := make([]string, 0, len(comp))
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			cells = append(cells, fmt.Sprintf("(%d,%d)", x, y))
		}
		fmt.Printf("component %d: %s\n", i, strings.Join(cells, " "))
	}

	// Output:
	// components: 3
	// component 0: (0,0) (1,0)
	// component 1: (3,0) (3,1) (3,2)
	// component 2: (0,2) (1,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: Breach
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Breach demonstrates computing the fewest blocked cells
// to clear so two separated cells become connected.
//
// Complexity: O(W·H·d), Memory: O(W·H)
func ExampleGridGraph_Breach() {
	gg, _ := gridgraph.From2D([][]int{{0, 1, 0}}, gridgraph.Conn4)

	path, cost, _ := gg.Breach(gg.Index(0, 0), gg.Index(2, 0))

	cells := make([]string, 0, len(path))
	for _, idx := range path {
		x, y := gg.Coordinate(idx)
		cells = append(cells, fmt.Sprintf("(%d,%d)", x, y))
	}
	fmt.Printf("clear %d blocked cell(s) along %s\n", cost, strings.Join(cells, " "))
	// Output:
	// clear 1 blocked cell(s) along (0,0) (1,0) (2,0)
}
