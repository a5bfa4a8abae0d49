// Package gridastar finds lowest-cost routes across rectangular grids with
// impassable cells.
//
// What is inside:
//
//	• A* search with a Manhattan heuristic, 8-directional moves and 10/15 step costs
//	• An indexed open set with in-place decrease-key and FIFO tie-breaking
//	• Grid topology: blocked-cell bitsets, connected components, obstacle breach analysis
//	• A uniform-cost (Dijkstra) reference search over the same grids
//	• Fixed-width text rendering of layouts, scores and solutions
//
// Packages:
//
//	astar/     Search: New, Process, Step, Path, Route, CostOf, FindPath
//	gridgraph/ GridGraph topology, step costs, components, Breach
//	dijkstra/  distance fields from one source cell
//	render/    text output for a finished search
//
// Quick example:
//
//	S . .
//	# # .
//	E . .
//
//	res, _ := astar.FindPath(3, 3, astar.Coord{0, 0}, astar.Coord{2, 0},
//	    []astar.Coord{{1, 0}, {1, 1}})
//	// res.Path = [[0, 0] [0, 1] [1, 2] [2, 1] [2, 0]], res.Cost = 50
//
//	go get github.com/katalvlaran/gridastar
package gridastar
