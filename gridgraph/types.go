// Package gridgraph defines core types, options, and step costs
// for the gridgraph subpackage of github.com/katalvlaran/gridastar.
package gridgraph

import "github.com/bits-and-blooms/bitset"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Movement costs between adjacent cells. DiagonalCost approximates 10·√2.
const (
	OrthogonalCost = 10
	DiagonalCost   = 15
)

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// BlockThreshold is the minimum cell value From2D treats as blocked.
	BlockThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// BlockThreshold=1 (values ≥1 are blocked), Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		BlockThreshold: 1,
		Conn:           Conn8,
	}
}

// GridGraph treats a rectangular grid of open and blocked cells as a graph.
// Width and Height define dimensions; cells are addressed by (x,y) with
// 0 ≤ x < Width and 0 ≤ y < Height, or by their row-major index y*Width + x.
// Blocked cells are tracked in a bitset over row-major indices.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	BlockThreshold  int
	blocked         *bitset.BitSet
	neighborOffsets [][2]int
}
