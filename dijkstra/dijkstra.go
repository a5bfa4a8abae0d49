// Package dijkstra implements uniform-cost search on obstacle grids.
//
// It processes open cells in order of increasing distance from the source
// using a min-heap priority queue, relaxing neighbor moves with
// gridgraph.StepCost. It serves as the exhaustive reference that heuristic
// searches over the same grid must agree with.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Blocked cells are never entered.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridastar/gridgraph"
)

// Dijkstra computes shortest distances from the source cell (Options.Source)
// to all other open cells of gg.
//
// Returns:
//
//   - dist: row-major slice of minimum distances (math.MaxInt64 if unreachable).
//   - prev: predecessor slice if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u; -1 for the
//     source and unreachable cells.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be supplied (ErrEmptySource).
//  2. gg must be non-nil (ErrNilGraph).
//  3. Source must be in bounds (ErrSourceOutOfBounds).
//  4. Source must be open (ErrSourceBlocked).
//
// Complexity:
//
//   - Time:  O(W·H·d · log(W·H))
//   - Space: O(W·H·d) worst-case heap entries under lazy decrease-key.
func Dijkstra(gg *gridgraph.GridGraph, opts ...Option) ([]int64, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if !cfg.HasSource {
		return nil, nil, ErrEmptySource
	}
	if gg == nil {
		return nil, nil, ErrNilGraph
	}
	if !gg.InBounds(cfg.SourceX, cfg.SourceY) {
		return nil, nil, fmt.Errorf("%w: (%d,%d) in %d×%d grid",
			ErrSourceOutOfBounds, cfg.SourceX, cfg.SourceY, gg.Width, gg.Height)
	}
	if gg.IsBlocked(cfg.SourceX, cfg.SourceY) {
		return nil, nil, fmt.Errorf("%w: (%d,%d)", ErrSourceBlocked, cfg.SourceX, cfg.SourceY)
	}

	// 3) Prepare state. prev is always tracked internally; it is only
	//    returned when ReturnPath is set.
	n := gg.Len()
	r := &runner{
		gg:      gg,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 4) Initialize and run main loop.
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the source → target index sequence from a predecessor
// slice returned with WithReturnPath. Returns nil if target is out of range
// or unreachable (dist[target] == math.MaxInt64).
func PathTo(dist []int64, prev []int, target int) []int {
	if target < 0 || target >= len(dist) || dist[target] == math.MaxInt64 {
		return nil
	}
	var path []int
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	gg      *gridgraph.GridGraph // The input grid; read-only within Dijkstra.
	options Options              // Configuration options (Source, MaxDistance, etc.).
	dist    []int64              // Cell index → current best distance from Source.
	prev    []int                // Cell index → predecessor on the shortest path.
	visited []bool               // Tracks if a cell's distance is finalized.
	pq      nodePQ               // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist to +∞ and prev to -1 everywhere, then pushes Source=0 into the heap.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
		r.prev[i] = -1
	}
	src := r.gg.Index(r.options.SourceX, r.options.SourceY)
	r.dist[src] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process is the core loop. It repeatedly extracts the cell with the minimum
// distance and relaxes its neighbors until the heap is empty or the minimum
// exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) Skip stale heap entries.
		if r.visited[item.id] {
			continue
		}

		// 3) Everything left is farther than MaxDistance.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize and relax.
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax examines each neighbor move from cell u and improves distances to
// open neighbors. Assumes r.dist[u] is final.
func (r *runner) relax(u int) {
	ux, uy := r.gg.Coordinate(u)
	var vx, vy, v int
	var newDist int64
	for _, d := range r.gg.NeighborOffsets() {
		vx, vy = ux+d[0], uy+d[1]
		if r.gg.IsBlocked(vx, vy) { // also rejects out-of-bounds
			continue
		}
		v = r.gg.Index(vx, vy)

		newDist = r.dist[u] + int64(gridgraph.StepCost(d[0], d[1]))
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only, to avoid pushing duplicates on ties.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a cell and its current distance from the source.
type nodeItem struct {
	id   int   // row-major cell index
	dist int64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, with
// lazy decrease-key: outdated entries stay in the heap and are skipped when
// popped (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
