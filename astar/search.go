// Package astar implements A* search between two cells of a rectangular grid
// with impassable cells, 8-directional movement and 10/15 step costs.
//
// The frontier is keyed by FinalCost = Cost + Manhattan heuristic and
// supports decrease-key in place, so a cell is queued at most once.
// Visited cells are finalized and never reopened.
//
// Complexity:
//
//   - Time:  O(W·H · log(W·H)); each cell is popped at most once and relaxed at most 8 times.
//   - Space: O(W·H) for cell records, the heap index and the visited bitset.
package astar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bits-and-blooms/bitset"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridastar/gridgraph"
)

// Search is a single-use A* instance over one grid. It is not safe for
// concurrent use.
type Search struct {
	gg       *gridgraph.GridGraph
	cells    []Cell
	open     *frontier
	closed   *bitset.BitSet
	start    Coord
	end      Coord
	startIdx int
	endIdx   int
	state    State
	stats    Stats
	options  Options
	runID    string
}

// New builds a Search over a width×height grid with the given blocked
// coordinates. width counts rows and height counts columns:
// Row ∈ [0,width), Col ∈ [0,height).
//
// Preconditions and validation (in order):
//  1. width and height must be positive (ErrEmptyGrid).
//  2. start and end must lie inside the grid (ErrOutOfBounds).
//  3. every blocked coordinate must lie inside the grid (ErrOutOfBounds).
//
// A blocked start or end is accepted; the search then ends in Failure.
//
// Complexity: O(W·H + len(blocked)).
func New(width, height int, start, end Coord, blocked []Coord, opts ...Option) (*Search, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// gridgraph x runs along a row, so its width is our column count.
	gg, err := gridgraph.NewGridGraph(height, width, gridgraph.DefaultGridOptions())
	if err != nil {
		return nil, fmt.Errorf("astar: %w", err)
	}
	if !gg.InBounds(start.Col, start.Row) {
		return nil, fmt.Errorf("%w: start %v in %d×%d grid", ErrOutOfBounds, start, width, height)
	}
	if !gg.InBounds(end.Col, end.Row) {
		return nil, fmt.Errorf("%w: end %v in %d×%d grid", ErrOutOfBounds, end, width, height)
	}
	for _, b := range blocked {
		if err = gg.Block(b.Col, b.Row); err != nil {
			return nil, fmt.Errorf("%w: blocked %v in %d×%d grid", ErrOutOfBounds, b, width, height)
		}
	}

	cells := make([]Cell, gg.Len())
	var x, y int
	for i := range cells {
		x, y = gg.Coordinate(i)
		cells[i] = Cell{
			Row:       y,
			Col:       x,
			Heuristic: Manhattan(Coord{Row: y, Col: x}, end),
			Parent:    -1,
		}
	}

	s := &Search{
		gg:       gg,
		cells:    cells,
		open:     newFrontier(cells),
		closed:   bitset.New(uint(len(cells))),
		start:    start,
		end:      end,
		startIdx: gg.Index(start.Col, start.Row),
		endIdx:   gg.Index(end.Col, end.Row),
		state:    Ready,
		options:  cfg,
		runID:    uuid.New().String(),
	}
	if !gg.BlockedAt(s.startIdx) {
		sc := &s.cells[s.startIdx]
		sc.Cost, sc.FinalCost, sc.Reached = 0, 0, true
	}

	return s, nil
}

// Process runs the search to Success or Failure. Read the outcome through
// IsSolved, Path and CostOf.
//
// Returns ErrAlreadyProcessed if the search had already finished and
// ErrBudgetExhausted if WithMaxSteps cut it short (state is then Failure).
func (s *Search) Process() error {
	return s.ProcessContext(context.Background())
}

// ProcessContext is Process with cancellation checked between expansions.
// On cancellation the search ends in Failure and ctx.Err() is returned.
func (s *Search) ProcessContext(ctx context.Context) error {
	if s.state == Success || s.state == Failure {
		return ErrAlreadyProcessed
	}
	for {
		if err := ctx.Err(); err != nil {
			s.finish(Failure)
			return err
		}
		st, err := s.Step()
		if err != nil {
			return err
		}
		if st == Success || st == Failure {
			return nil
		}
	}
}

// Step performs one iteration of the main loop and returns the resulting state:
//
//  1. On the first call, seed the frontier with the start cell (Ready → Running).
//  2. An empty frontier means Failure, even when the step budget is spent.
//     Otherwise pop the cell with the smallest FinalCost.
//  3. Mark it visited. If it is the goal, Success.
//  4. Otherwise relax each in-bounds neighbor N, NE, E, SE, S, SW, W, NW.
func (s *Search) Step() (State, error) {
	switch s.state {
	case Success, Failure:
		return s.state, ErrAlreadyProcessed
	case Ready:
		s.seed()
		if s.state == Failure {
			return s.state, nil
		}
	}

	if s.open.Len() == 0 {
		s.finish(Failure)
		return s.state, nil
	}
	if s.options.MaxSteps > 0 && s.stats.Expanded >= s.options.MaxSteps {
		s.finish(Failure)
		return s.state, fmt.Errorf("%w: %d expansions", ErrBudgetExhausted, s.stats.Expanded)
	}

	c, _ := s.open.popMin()
	s.closed.Set(uint(c))
	s.stats.Expanded++

	if c == s.endIdx {
		s.finish(Success)
		return s.state, nil
	}
	s.expand(c)

	return s.state, nil
}

// seed pushes the start cell unless it is blocked or, with ReachabilityCheck,
// the goal lies in another component.
func (s *Search) seed() {
	s.state = Running
	s.options.Logger.LogAttrs(context.Background(), slog.LevelDebug, "astar: search seeded",
		slog.String("run_id", s.runID),
		slog.String("start", s.start.String()),
		slog.String("end", s.end.String()),
		slog.Int("blocked", s.gg.BlockedCount()),
	)
	if s.options.ReachabilityCheck {
		labels := s.gg.ComponentLabels()
		if labels[s.startIdx] < 0 || labels[s.startIdx] != labels[s.endIdx] {
			s.finish(Failure)
			return
		}
	}
	if !s.gg.BlockedAt(s.startIdx) {
		s.open.push(s.startIdx)
		s.stats.Pushes++
	}
}

// expand relaxes every in-bounds neighbor of the finalized cell c.
func (s *Search) expand(c int) {
	cx, cy := s.gg.Coordinate(c)
	base := s.cells[c].Cost
	var nx, ny int
	for _, d := range s.gg.NeighborOffsets() {
		nx, ny = cx+d[0], cy+d[1]
		if !s.gg.InBounds(nx, ny) {
			continue
		}
		s.relax(c, s.gg.Index(nx, ny), base+gridgraph.StepCost(d[0], d[1]))
	}
}

// relax offers neighbor t a path through current costing tentative.
// Blocked or visited t is ignored. Otherwise t is (re)admitted when it is not
// queued yet or the new FinalCost is strictly lower; a queued t is fixed in
// place rather than pushed twice.
func (s *Search) relax(current, t, tentative int) {
	if s.gg.BlockedAt(t) || s.closed.Test(uint(t)) {
		return
	}
	s.stats.Relaxations++

	cell := &s.cells[t]
	candidate := cell.Heuristic + tentative
	queued := s.open.contains(t)
	if queued && candidate >= cell.FinalCost {
		return
	}

	cell.Cost = tentative
	cell.FinalCost = candidate
	cell.Parent = current
	cell.Reached = true

	if queued {
		s.open.decrease(t)
		s.stats.DecreaseKeys++
		return
	}
	s.open.push(t)
	s.stats.Pushes++
}

func (s *Search) finish(st State) {
	s.state = st
	attrs := []slog.Attr{
		slog.String("run_id", s.runID),
		slog.String("state", st.String()),
		slog.Int("expanded", s.stats.Expanded),
	}
	if st == Success {
		attrs = append(attrs, slog.Int("cost", s.cells[s.endIdx].Cost))
	}
	s.options.Logger.LogAttrs(context.Background(), slog.LevelDebug, "astar: search finished", attrs...)
}

// FindPath builds a Search, runs it and returns the start → goal route.
// Returns ErrNoPath when the goal is unreachable, plus any error from New
// or Process.
func FindPath(width, height int, start, end Coord, blocked []Coord, opts ...Option) (Result, error) {
	s, err := New(width, height, start, end, blocked, opts...)
	if err != nil {
		return Result{}, err
	}
	if err = s.Process(); err != nil {
		return Result{RunID: s.runID, Stats: s.stats}, err
	}
	route, err := s.Route()
	if err != nil {
		return Result{RunID: s.runID, Stats: s.stats}, err
	}

	return Result{
		Path:  route,
		Cost:  s.cells[s.endIdx].Cost,
		RunID: s.runID,
		Stats: s.stats,
	}, nil
}
