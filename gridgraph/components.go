package gridgraph

// ConnectedComponents finds all contiguous regions of open (non-blocked)
// cells according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS discovery order. Components are ordered by their
// lowest row-major index.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	_, comps := gg.label()

	return comps
}

// ComponentLabels assigns every cell the number of its connected component
// (0,1,2,… in order of lowest row-major index) or -1 for blocked cells.
// Two open cells are mutually reachable iff their labels are equal.
//
// Time:   O(W·H·d).
// Memory: O(W·H).
func (gg *GridGraph) ComponentLabels() []int {
	labels, _ := gg.label()

	return labels
}

// label runs one BFS sweep, returning per-cell labels and the members of
// each component in discovery order.
func (gg *GridGraph) label() ([]int, [][]int) {
	total := gg.Len()
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	offsets := gg.neighborOffsets
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if gg.BlockedAt(i0) || labels[i0] >= 0 {
			continue
		}
		next := len(comps)
		labels[i0] = next
		queue := []int{i0}
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := gg.Coordinate(queue[qi])
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.InBounds(vx, vy) {
					continue
				}
				vi := gg.index(vx, vy)
				if labels[vi] < 0 && !gg.BlockedAt(vi) {
					labels[vi] = next
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return labels, comps
}
