package astar

import "github.com/katalvlaran/gridastar/gridgraph"

// Path walks parent links from the goal back to the start, marks every cell
// on the way as Solution and returns the coordinates in goal → start order.
// Returns ErrNoPath unless the search ended in Success.
//
// Complexity: O(path length).
func (s *Search) Path() ([]Coord, error) {
	if s.state != Success {
		return nil, ErrNoPath
	}
	var path []Coord
	for at := s.endIdx; at >= 0; at = s.cells[at].Parent {
		s.cells[at].Solution = true
		path = append(path, s.coord(at))
	}

	return path, nil
}

// Route is Path in start → goal order.
func (s *Search) Route() ([]Coord, error) {
	path, err := s.Path()
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// IsSolved reports whether the goal was reached and finalized.
func (s *Search) IsSolved() bool {
	return s.state == Success && s.closed.Test(uint(s.endIdx))
}

// CostOf returns the best known cost from the start to p. The second result
// is false when p is out of bounds, blocked or was never reached. The cost
// is final once p has been visited.
func (s *Search) CostOf(p Coord) (int, bool) {
	c, ok := s.Cell(p)
	if !ok || !c.Reached {
		return 0, false
	}

	return c.Cost, true
}

// FinalCostOf returns the recorded cost plus heuristic at p, the value the
// frontier orders by. It reports false under the same conditions as CostOf.
func (s *Search) FinalCostOf(p Coord) (int, bool) {
	c, ok := s.Cell(p)
	if !ok || !c.Reached {
		return 0, false
	}

	return c.FinalCost, true
}

// Cell returns a copy of the search record at p; false when p is out of
// bounds or blocked.
func (s *Search) Cell(p Coord) (Cell, bool) {
	if !s.gg.InBounds(p.Col, p.Row) {
		return Cell{}, false
	}
	i := s.gg.Index(p.Col, p.Row)
	if s.gg.BlockedAt(i) {
		return Cell{}, false
	}

	return s.cells[i], true
}

// Visited reports whether p has been finalized.
func (s *Search) Visited(p Coord) bool {
	if !s.gg.InBounds(p.Col, p.Row) {
		return false
	}

	return s.closed.Test(uint(s.gg.Index(p.Col, p.Row)))
}

// Blocked reports whether p is impassable. Out-of-bounds positions count as blocked.
func (s *Search) Blocked(p Coord) bool {
	return s.gg.IsBlocked(p.Col, p.Row)
}

// OnPath reports whether p was marked by path reconstruction.
func (s *Search) OnPath(p Coord) bool {
	c, ok := s.Cell(p)
	return ok && c.Solution
}

// Width returns the grid's width argument, the number of rows.
func (s *Search) Width() int { return s.gg.Height }

// Height returns the grid's height argument, the number of columns.
func (s *Search) Height() int { return s.gg.Width }

// Start returns the start coordinate.
func (s *Search) Start() Coord { return s.start }

// End returns the goal coordinate.
func (s *Search) End() Coord { return s.end }

// State returns the current lifecycle state.
func (s *Search) State() State { return s.state }

// Stats returns the work counters so far.
func (s *Search) Stats() Stats { return s.stats }

// RunID returns the unique identifier attached to this search's log records.
func (s *Search) RunID() string { return s.runID }

// Grid exposes the underlying topology, e.g. for Breach diagnostics.
func (s *Search) Grid() *gridgraph.GridGraph { return s.gg }

func (s *Search) coord(i int) Coord {
	x, y := s.gg.Coordinate(i)
	return Coord{Row: y, Col: x}
}
