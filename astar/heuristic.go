package astar

// Manhattan returns |row−goal.Row| + |col−goal.Col|.
//
// Every move costs at least gridgraph.OrthogonalCost (10) while Manhattan
// grows by at most 2 per move, so the estimate never overestimates and
// stays consistent under the 10/15 step costs. It is far from tight.
func Manhattan(from, goal Coord) int {
	return abs(from.Row-goal.Row) + abs(from.Col-goal.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
