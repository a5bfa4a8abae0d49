// Package render prints a grid search as fixed-width text.
//
// Legend: SO start, DE end, BL blocked, X on the solution path, 0 open.
// Every column is padded to three characters.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridastar/astar"
)

// View is the read-only surface render needs; *astar.Search satisfies it.
// Width is the row count and Height the column count.
type View interface {
	Width() int
	Height() int
	Start() astar.Coord
	End() astar.Coord
	Blocked(p astar.Coord) bool
	CostOf(p astar.Coord) (int, bool)
	FinalCostOf(p astar.Coord) (int, bool)
	OnPath(p astar.Coord) bool
	IsSolved() bool
	Path() ([]astar.Coord, error)
}

// Grid writes the layout: start, end, blocked and open cells.
func Grid(w io.Writer, v View) error {
	ew := &errWriter{w: w}
	ew.printf("Grid :\n")
	writeCells(ew, v, func(p astar.Coord) string { return fmt.Sprintf("%-3d", 0) })
	ew.printf("\n")

	return ew.err
}

// Scores writes the FinalCost (cost plus heuristic) of every open cell;
// unreached cells show 0.
func Scores(w io.Writer, v View) error {
	ew := &errWriter{w: w}
	ew.printf("\nScores for cells :\n")
	for r := 0; r < v.Width(); r++ {
		for c := 0; c < v.Height(); c++ {
			p := astar.Coord{Row: r, Col: c}
			if v.Blocked(p) {
				ew.printf("BL ")
				continue
			}
			cost, _ := v.FinalCostOf(p)
			ew.printf("%-3d", cost)
		}
		ew.printf("\n")
	}
	ew.printf("\n")

	return ew.err
}

// Solution writes the goal → start path followed by the grid with the path
// marked, or "No possible path" when the search did not succeed.
// Path reconstruction sets the cells' solution flags as a side effect.
func Solution(w io.Writer, v View) error {
	ew := &errWriter{w: w}
	if !v.IsSolved() {
		ew.printf("No possible path\n")
		return ew.err
	}
	path, err := v.Path()
	if err != nil {
		return err
	}

	steps := make([]string, len(path))
	for i, p := range path {
		steps[i] = p.String()
	}
	ew.printf("Path :\n%s\n\n", strings.Join(steps, "->"))
	writeCells(ew, v, func(p astar.Coord) string {
		if v.OnPath(p) {
			return fmt.Sprintf("%-3s", "X")
		}
		return fmt.Sprintf("%-3s", "0")
	})
	ew.printf("\n")

	return ew.err
}

// writeCells prints one line per row, delegating open non-endpoint cells to open.
func writeCells(ew *errWriter, v View, open func(p astar.Coord) string) {
	start, end := v.Start(), v.End()
	for r := 0; r < v.Width(); r++ {
		for c := 0; c < v.Height(); c++ {
			p := astar.Coord{Row: r, Col: c}
			switch {
			case p == start:
				ew.printf("SO ")
			case p == end:
				ew.printf("DE ")
			case v.Blocked(p):
				ew.printf("BL ")
			default:
				ew.printf("%s", open(p))
			}
		}
		ew.printf("\n")
	}
}

// errWriter remembers the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
