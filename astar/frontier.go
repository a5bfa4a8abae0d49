package astar

import "container/heap"

// frontier is the open set: an indexed min-heap of flat cell indices keyed by
// cells[i].FinalCost. Equal keys pop in insertion order (seq); a cell keeps
// its seq across decrease-key. pos[i] is the heap slot of cell i, or -1.
// Each cell is in the heap at most once, so no stale entries are ever popped.
type frontier struct {
	items []int
	pos   []int
	seq   []uint64
	next  uint64
	cells []Cell
}

func newFrontier(cells []Cell) *frontier {
	pos := make([]int, len(cells))
	for i := range pos {
		pos[i] = -1
	}

	return &frontier{
		pos:   pos,
		seq:   make([]uint64, len(cells)),
		cells: cells,
	}
}

// Len returns the number of queued cells.
func (f *frontier) Len() int { return len(f.items) }

// Less orders by FinalCost, then FIFO.
func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if ca, cb := f.cells[a].FinalCost, f.cells[b].FinalCost; ca != cb {
		return ca < cb
	}

	return f.seq[a] < f.seq[b]
}

// Swap swaps two heap slots and keeps pos in sync.
func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.pos[f.items[i]] = i
	f.pos[f.items[j]] = j
}

// Push is called by heap.Push; x must be an int cell index.
func (f *frontier) Push(x interface{}) {
	c := x.(int)
	f.pos[c] = len(f.items)
	f.items = append(f.items, c)
}

// Pop is called by heap.Pop.
func (f *frontier) Pop() interface{} {
	n := len(f.items)
	c := f.items[n-1]
	f.items = f.items[:n-1]
	f.pos[c] = -1

	return c
}

// push inserts cell c, which must not be queued.
func (f *frontier) push(c int) {
	f.seq[c] = f.next
	f.next++
	heap.Push(f, c)
}

// popMin removes the cell with the smallest FinalCost.
func (f *frontier) popMin() (int, bool) {
	if len(f.items) == 0 {
		return -1, false
	}

	return heap.Pop(f).(int), true
}

func (f *frontier) contains(c int) bool {
	return f.pos[c] >= 0
}

// decrease restores heap order after cells[c].FinalCost dropped.
func (f *frontier) decrease(c int) {
	heap.Fix(f, f.pos[c])
}
