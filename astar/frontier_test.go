package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellsWithCosts(costs ...int) []Cell {
	cells := make([]Cell, len(costs))
	for i, c := range costs {
		cells[i] = Cell{FinalCost: c, Parent: -1}
	}

	return cells
}

// TestFrontier_OrderAndFIFO checks ascending FinalCost order with
// first-in first-out among equal keys.
func TestFrontier_OrderAndFIFO(t *testing.T) {
	cells := cellsWithCosts(30, 10, 20, 10, 10)
	f := newFrontier(cells)
	for _, c := range []int{0, 3, 1, 2, 4} {
		f.push(c)
	}
	require.Equal(t, 5, f.Len())

	var order []int
	for {
		c, ok := f.popMin()
		if !ok {
			break
		}
		assert.False(t, f.contains(c), "popped cell %d still reported as queued", c)
		order = append(order, c)
	}
	// Cells 3, 1, 4 share cost 10 and were pushed in that order.
	assert.Equal(t, []int{3, 1, 4, 2, 0}, order)
}

// TestFrontier_DecreaseKey verifies an improved cell moves up in place
// without creating a second entry.
func TestFrontier_DecreaseKey(t *testing.T) {
	cells := cellsWithCosts(50, 40, 30)
	f := newFrontier(cells)
	f.push(0)
	f.push(1)
	f.push(2)
	require.True(t, f.contains(0))

	cells[0].FinalCost = 5
	f.decrease(0)
	require.Equal(t, 3, f.Len(), "decrease-key must not add entries")

	c, ok := f.popMin()
	require.True(t, ok)
	assert.Equal(t, 0, c)

	c, _ = f.popMin()
	assert.Equal(t, 2, c)
	c, _ = f.popMin()
	assert.Equal(t, 1, c)

	_, ok = f.popMin()
	assert.False(t, ok, "empty frontier must report !ok")
}

// TestManhattan covers symmetric and off-axis distances.
func TestManhattan(t *testing.T) {
	goal := Coord{Row: 4, Col: 4}
	assert.Equal(t, 8, Manhattan(Coord{0, 0}, goal))
	assert.Equal(t, 0, Manhattan(goal, goal))
	assert.Equal(t, 3, Manhattan(Coord{Row: 5, Col: 2}, goal))
}
