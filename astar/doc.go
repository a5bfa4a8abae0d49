// Package astar finds a minimum-cost path between two cells of a rectangular
// grid that contains impassable cells.
//
// Overview:
//
//   - Movement is 8-directional: orthogonal steps cost 10, diagonal steps 15.
//   - The heuristic is the Manhattan distance to the goal, computed once per cell.
//   - The open set is an indexed min-heap ordered by FinalCost = Cost + heuristic,
//     ties broken first-in first-out. Improving a queued cell fixes its heap slot
//     in place (decrease-key); no duplicate entries exist.
//   - The closed set is a bitset; a visited cell is final and never reopened.
//   - Parents always point at the cell being expanded, so parent chains are acyclic.
//
// Lifecycle:
//
//	New → Process (or repeated Step) → IsSolved / Path / Route / CostOf
//
//	Ready ──seed──▶ Running ──goal popped──▶ Success
//	                   └────frontier empty──▶ Failure
//
// A Search is single-use: once it reaches Success or Failure, Process and Step
// return ErrAlreadyProcessed.
//
// Options:
//
//   - WithLogger(l):          Debug records on seeding and termination, tagged with run_id.
//   - WithMaxSteps(n):        give up after n expansions (ErrBudgetExhausted).
//   - WithReachabilityCheck(): skip the search when start and end are disconnected.
//
// Errors (sentinel):
//
//   - ErrEmptyGrid:        non-positive width or height.
//   - ErrOutOfBounds:      start, end or a blocked coordinate outside the grid.
//   - ErrNoPath:           Path/Route requested without Success.
//   - ErrAlreadyProcessed: Process/Step on a finished search.
//   - ErrBudgetExhausted:  MaxSteps reached before an answer.
//
// Example:
//
//	s, err := astar.New(5, 5, astar.Coord{0, 0}, astar.Coord{4, 4}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = s.Process()
//	route, _ := s.Route()
//	cost, _ := s.CostOf(s.End())
//	fmt.Println(route, cost) // 4 diagonal steps, cost 60
//
// Thread safety:
//
//   - A Search owns its grid, frontier and visited set exclusively; do not share it across goroutines.
package astar
