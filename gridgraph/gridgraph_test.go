package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridastar/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph, From2D and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects non-positive dimensions.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"NegativeWidth", -1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.width, tc.height, gridgraph.DefaultGridOptions())
			if !errors.Is(err, gridgraph.ErrEmptyGrid) {
				t.Errorf("NewGridGraph(%d,%d) error = %v; want ErrEmptyGrid", tc.width, tc.height, err)
			}
		})
	}
}

// TestFrom2D_Errors ensures From2D rejects bad inputs.
func TestFrom2D_Errors(t *testing.T) {
	if _, err := gridgraph.From2D(nil, gridgraph.Conn4); !errors.Is(err, gridgraph.ErrEmptyGrid) {
		t.Errorf("nil grid: got %v; want ErrEmptyGrid", err)
	}
	if _, err := gridgraph.From2D([][]int{{}}, gridgraph.Conn4); !errors.Is(err, gridgraph.ErrEmptyGrid) {
		t.Errorf("empty row: got %v; want ErrEmptyGrid", err)
	}
	if _, err := gridgraph.From2D([][]int{{1}, {}}, gridgraph.Conn4); !errors.Is(err, gridgraph.ErrNonRectangular) {
		t.Errorf("jagged grid: got %v; want ErrNonRectangular", err)
	}
}

// TestFrom2D_Blocked checks that values at or above the threshold are blocked.
func TestFrom2D_Blocked(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 1, 0},
		{2, 0, 0},
	}, gridgraph.Conn8)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}
	if gg.Width != 3 || gg.Height != 2 {
		t.Fatalf("dimensions = %d×%d; want 3×2", gg.Width, gg.Height)
	}
	if !gg.IsBlocked(1, 0) || !gg.IsBlocked(0, 1) {
		t.Error("expected (1,0) and (0,1) blocked")
	}
	if gg.IsBlocked(0, 0) || gg.IsBlocked(2, 1) {
		t.Error("expected (0,0) and (2,1) open")
	}
	if got := gg.BlockedCount(); got != 2 {
		t.Errorf("BlockedCount = %d; want 2", got)
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(3, 2, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
		if !gg.IsBlocked(xy[0], xy[1]) {
			t.Errorf("IsBlocked(%d,%d)=false for out-of-bounds cell", xy[0], xy[1])
		}
	}
}

// TestBlock verifies Block marks cells and rejects out-of-bounds coordinates.
func TestBlock(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph(2, 2, gridgraph.DefaultGridOptions())
	if err := gg.Block(1, 1); err != nil {
		t.Fatalf("Block(1,1) error: %v", err)
	}
	if err := gg.Block(1, 1); err != nil {
		t.Fatalf("repeated Block(1,1) error: %v", err)
	}
	if !gg.IsBlocked(1, 1) || !gg.BlockedAt(gg.Index(1, 1)) {
		t.Error("(1,1) not blocked after Block")
	}
	if gg.BlockedCount() != 1 {
		t.Errorf("BlockedCount = %d; want 1", gg.BlockedCount())
	}
	if err := gg.Block(2, 0); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("Block(2,0) error = %v; want ErrOutOfBounds", err)
	}
}

// TestIndexCoordinate checks the row-major round trip on a non-square grid.
func TestIndexCoordinate(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph(4, 3, gridgraph.DefaultGridOptions())
	if got := gg.Index(3, 2); got != 11 {
		t.Errorf("Index(3,2) = %d; want 11", got)
	}
	if x, y := gg.Coordinate(6); x != 2 || y != 1 {
		t.Errorf("Coordinate(6) = (%d,%d); want (2,1)", x, y)
	}
	if gg.Len() != 12 {
		t.Errorf("Len = %d; want 12", gg.Len())
	}
}

// TestNeighborOffsetsAndStepCost verifies connectivity offsets and move costs.
func TestNeighborOffsetsAndStepCost(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	g8, _ := gridgraph.NewGridGraph(2, 2, opts)
	if n := len(g8.NeighborOffsets()); n != 8 {
		t.Errorf("Conn8 offsets = %d; want 8", n)
	}
	opts.Conn = gridgraph.Conn4
	g4, _ := gridgraph.NewGridGraph(2, 2, opts)
	if n := len(g4.NeighborOffsets()); n != 4 {
		t.Errorf("Conn4 offsets = %d; want 4", n)
	}

	diagonals := 0
	for _, d := range g8.NeighborOffsets() {
		if gridgraph.StepCost(d[0], d[1]) == gridgraph.DiagonalCost {
			diagonals++
		}
	}
	if diagonals != 4 {
		t.Errorf("diagonal offsets = %d; want 4", diagonals)
	}
	if c := gridgraph.StepCost(0, 1); c != gridgraph.OrthogonalCost {
		t.Errorf("StepCost(0,1) = %d; want %d", c, gridgraph.OrthogonalCost)
	}
}
