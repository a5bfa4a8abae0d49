// Package gridgraph provides utilities to treat a rectangular grid of open and
// blocked cells as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Orthogonal and diagonal step costs
//   - Identification of connected components of open cells
//   - Minimal obstacle-clearing paths between cells
package gridgraph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// NewGridGraph constructs an all-open GridGraph of the given dimensions.
// Returns ErrEmptyGrid if width or height is not positive.
// Algorithmic complexity: O(W×H/64) time, O(W×H) bits of memory.
func NewGridGraph(width, height int, opts GridOptions) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, width, height)
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           width,
		Height:          height,
		Conn:            opts.Conn,
		BlockThreshold:  opts.BlockThreshold,
		blocked:         bitset.New(uint(width * height)),
		neighborOffsets: offsets,
	}, nil
}

// From2D builds a GridGraph from a non-empty, rectangular 2D slice where
// values[y][x] ≥ DefaultGridOptions().BlockThreshold marks (x,y) as blocked.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	opts := DefaultGridOptions()
	opts.Conn = conn
	gg, err := NewGridGraph(w, h, opts)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if values[y][x] >= opts.BlockThreshold {
				gg.blocked.Set(uint(gg.index(x, y)))
			}
		}
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed (dx,dy) neighbor offsets slice in
// clockwise order starting from north.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// StepCost returns the cost of moving by (dx,dy) between adjacent cells:
// OrthogonalCost when exactly one delta is non-zero, DiagonalCost otherwise.
func StepCost(dx, dy int) int {
	if dx != 0 && dy != 0 {
		return DiagonalCost
	}

	return OrthogonalCost
}

// Block marks (x,y) as impassable. Blocking an already blocked cell is a no-op.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (gg *GridGraph) Block(x, y int) error {
	if !gg.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, x, y, gg.Width, gg.Height)
	}
	gg.blocked.Set(uint(gg.index(x, y)))

	return nil
}

// IsBlocked reports whether (x,y) is blocked. Out-of-bounds cells count as blocked.
func (gg *GridGraph) IsBlocked(x, y int) bool {
	if !gg.InBounds(x, y) {
		return true
	}

	return gg.blocked.Test(uint(gg.index(x, y)))
}

// BlockedAt reports whether the cell with row-major index i is blocked.
// The caller guarantees 0 ≤ i < Width×Height.
func (gg *GridGraph) BlockedAt(i int) bool {
	return gg.blocked.Test(uint(i))
}

// BlockedCount returns the number of blocked cells.
func (gg *GridGraph) BlockedCount() int {
	return int(gg.blocked.Count())
}

// Len returns the total number of cells, Width×Height.
func (gg *GridGraph) Len() int {
	return gg.Width * gg.Height
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// The caller guarantees InBounds(x,y).
func (gg *GridGraph) Index(x, y int) int {
	return gg.index(x, y)
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
