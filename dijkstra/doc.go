// Package dijkstra provides uniform-cost shortest distances on obstacle grids.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source cell to every
//     reachable open cell of a gridgraph.GridGraph in O(N log N) time, N = W·H.
//   - Moves follow the grid's connectivity; orthogonal moves cost 10 and
//     diagonal moves 15 (gridgraph.StepCost).
//   - Supports optional path reconstruction and distance caps.
//
// When to use:
//
//   - As an exhaustive oracle for heuristic searches (astar) over the same grid.
//   - For all-targets distance fields from a single origin.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:       no Source option supplied.
//   - ErrNilGraph:          nil *gridgraph.GridGraph.
//   - ErrSourceOutOfBounds: source outside the grid.
//   - ErrSourceBlocked:     source cell is blocked.
//   - ErrBadMaxDistance:    returned (via panic) if MaxDistance is negative.
//
// API reference:
//
//	func Dijkstra(gg *gridgraph.GridGraph, opts ...Option) (dist []int64, prev []int, err error)
//	func PathTo(dist []int64, prev []int, target int) []int
//
// Thread safety:
//
//   - Dijkstra only reads gg; do not mutate gg (Block) concurrently.
package dijkstra
