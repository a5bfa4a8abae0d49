// Package astar defines core types, search states, and configuration options
// for A* search on obstacle grids.
package astar

import (
	"fmt"
	"io"
	"log/slog"
)

// Coord identifies a grid position. Row ∈ [0,width), Col ∈ [0,height).
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "[row, col]".
func (c Coord) String() string {
	return fmt.Sprintf("[%d, %d]", c.Row, c.Col)
}

// Cell is the per-position search record.
//
// Heuristic is fixed at construction. Cost (distance from start) and
// FinalCost (Cost + Heuristic, the frontier priority) only ever decrease
// once Reached is set. Parent is the flat index of the predecessor on the
// current best path, or -1.
type Cell struct {
	Row, Col  int
	Heuristic int
	Cost      int
	FinalCost int
	Parent    int
	Reached   bool
	Solution  bool
}

// State is the lifecycle state of a Search.
type State int

const (
	// Ready means the frontier has not been seeded yet.
	Ready State = iota
	// Running means the main loop is draining the frontier.
	Running
	// Success means the goal was popped and finalized.
	Success
	// Failure means the frontier emptied (or the run was cut short) without reaching the goal.
	Failure
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Stats counts work done by a Search.
type Stats struct {
	Expanded     int // cells popped and finalized
	Relaxations  int // neighbor checks against open, unvisited cells
	Pushes       int // frontier insertions
	DecreaseKeys int // in-place priority improvements
}

// Result is the outcome of FindPath.
type Result struct {
	Path  []Coord // start → goal
	Cost  int
	RunID string
	Stats Stats
}

// Options configures a Search.
//
// Logger            – receives Debug records on seeding and termination.
// MaxSteps          – cap on expansions; 0 means unlimited.
// ReachabilityCheck – fail fast when start and end lie in different components.
type Options struct {
	Logger            *slog.Logger
	MaxSteps          int
	ReachabilityCheck bool
}

// Option represents a functional option for configuring a Search.
type Option func(*Options)

// WithLogger routes search logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(ErrNilLogger.Error())
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxSteps stops the search with ErrBudgetExhausted after n expansions.
// Panics if n ≤ 0.
func WithMaxSteps(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxSteps.Error())
	}
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithReachabilityCheck enables the connected-component pre-check.
func WithReachabilityCheck() Option {
	return func(o *Options) {
		o.ReachabilityCheck = true
	}
}

// DefaultOptions returns Options with a discarding logger, no step cap and
// no reachability pre-check.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
