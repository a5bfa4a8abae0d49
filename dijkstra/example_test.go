// Package dijkstra_test provides examples demonstrating how to use the grid Dijkstra.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridastar/dijkstra"
	"github.com/katalvlaran/gridastar/gridgraph"
)

// ExampleDijkstra demonstrates a distance field around a short wall.
//
//	S . .
//	# # .
//	. . .
//
// Complexity: O(W·H·log(W·H)).
func ExampleDijkstra() {
	// 1) Build the grid: 1 marks a blocked cell.
	gg, _ := gridgraph.From2D([][]int{
		{0, 0, 0},
		{1, 1, 0},
		{0, 0, 0},
	}, gridgraph.Conn8)

	// 2) Distances and predecessors from the top-left corner.
	dist, prev, err := dijkstra.Dijkstra(gg, dijkstra.Source(0, 0), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) The bottom-left corner has to be reached around the wall.
	target := gg.Index(0, 2)
	fmt.Println("distance:", dist[target])
	for _, idx := range dijkstra.PathTo(dist, prev, target) {
		x, y := gg.Coordinate(idx)
		fmt.Printf("(%d,%d)\n", x, y)
	}
	// Output:
	// distance: 50
	// (0,0)
	// (1,0)
	// (2,1)
	// (1,2)
	// (0,2)
}
