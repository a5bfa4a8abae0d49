// Package gridgraph treats a rectangular grid of open and blocked cells as a
// graph, providing the topology that grid searches run on.
//
// What:
//
//   - GridGraph holds dimensions, a blocked-cell bitset and precomputed neighbor offsets.
//   - Step costs: OrthogonalCost (10) and DiagonalCost (15) per move.
//   - Identifies connected components of open cells.
//   - Computes the minimal set of blocked cells to clear to join two cells (0-1 BFS).
//
// Why:
//
//   - Pathfinding: one shared topology for A* and the uniform-cost reference search.
//   - Diagnostics: explain a failed search by how many obstacles separate the endpoints.
//   - Pre-checks: reject unreachable goals in O(W×H) before any search runs.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H/64), Memory: O(W×H) bits.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Breach:              O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.BlockThreshold: minimum value From2D considers "blocked".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrComponentIndex: requested cell index out of range.
//   - ErrNoPath: no breach path exists between the specified cells.
package gridgraph
