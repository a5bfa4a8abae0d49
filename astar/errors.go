package astar

import (
	"errors"

	"github.com/katalvlaran/gridastar/gridgraph"
)

// Sentinel errors returned by the astar package. Branch on them with errors.Is;
// most are wrapped with the offending value.
var (
	// ErrEmptyGrid indicates non-positive grid dimensions.
	ErrEmptyGrid = gridgraph.ErrEmptyGrid

	// ErrOutOfBounds indicates a start, end or blocked coordinate outside the grid.
	ErrOutOfBounds = errors.New("astar: coordinate out of bounds")

	// ErrNoPath indicates a path was requested from a search that did not succeed.
	ErrNoPath = errors.New("astar: no path")

	// ErrAlreadyProcessed indicates Process or Step was called on a finished search.
	ErrAlreadyProcessed = errors.New("astar: search already processed")

	// ErrBudgetExhausted indicates the search hit its MaxSteps cap before an answer.
	ErrBudgetExhausted = errors.New("astar: step budget exhausted")

	// ErrBadMaxSteps is the panic message of WithMaxSteps for n ≤ 0.
	ErrBadMaxSteps = errors.New("astar: MaxSteps must be positive")

	// ErrNilLogger is the panic message of WithLogger(nil).
	ErrNilLogger = errors.New("astar: logger is nil")
)
