// Package dijkstra defines core types and configuration options
// for uniform-cost search on obstacle grids.
//
// Dijkstra computes the minimum-cost distance from a single source cell to all
// other reachable open cells of a gridgraph.GridGraph, using the same step
// costs as A* (10 orthogonal, 15 diagonal).
//
// Options:
//
//	– Source:      (x,y) of the starting cell (required, in bounds, not blocked).
//	– ReturnPath:  if true, return the predecessor slice for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; cells beyond it stay unreachable.
//
// Errors (sentinel):
//
//	– ErrEmptySource       if no Source option was supplied.
//	– ErrNilGraph          if the provided grid pointer is nil.
//	– ErrSourceOutOfBounds if the source lies outside the grid.
//	– ErrSourceBlocked     if the source cell is blocked.
//	– ErrBadMaxDistance    if MaxDistance < 0 (panic in WithMaxDistance).
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source cell was provided.
	ErrEmptySource = errors.New("dijkstra: source cell not set")

	// ErrNilGraph indicates that a nil *gridgraph.GridGraph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfBounds indicates that the source cell lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source cell out of bounds")

	// ErrSourceBlocked indicates that the source cell is impassable.
	ErrSourceBlocked = errors.New("dijkstra: source cell is blocked")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// SourceX, SourceY – starting cell; HasSource records that Source was applied.
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	SourceX, SourceY int
	HasSource        bool
	ReturnPath       bool
	MaxDistance      int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell (x,y). Must be supplied.
func Source(x, y int) Option {
	return func(o *Options) {
		o.SourceX, o.SourceY = x, y
		o.HasSource = true
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
// If not set (default), prev == nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - no Source (must be supplied).
//   - ReturnPath:  false.
//   - MaxDistance: math.MaxInt64 (explore all reachable).
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
	}
}
