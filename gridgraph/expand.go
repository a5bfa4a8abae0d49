package gridgraph

import (
	"container/list"
	"fmt"
)

// Breach finds a path from cell src to cell dst (row-major indices) that
// clears the fewest blocked cells. Entering an open cell costs 0, entering a
// blocked cell costs 1. Returns the sequence of cell‐indices representing the
// path (including src and dst) and the number of blocked cells on it.
// When src and dst are already connected the cost is 0.
//
// Behavior:
//  1. Validate indices.
//  2. 0–1‐BFS from src:
//     • Moving into an open cell     → cost 0
//     • Moving into a blocked cell   → cost 1
//  3. Stop when dst is popped.
//  4. Reconstruct path via predecessor slice.
//
// Complexity: O(W·H·d).
// Memory:     O(W·H) for distance and prev pointers.
func (gg *GridGraph) Breach(src, dst int) (path []int, cost int, err error) {
	n := gg.Len()
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return nil, 0, fmt.Errorf("%w: src=%d dst=%d cells=%d", ErrComponentIndex, src, dst, n)
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dist[src] = gg.entryCost(src)
	dq.PushFront(src)

	offsets := gg.neighborOffsets
	done := make([]bool, n)
	target := -1

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := gg.entryCost(v)
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	// Reconstruct path
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

func (gg *GridGraph) entryCost(i int) int {
	if gg.BlockedAt(i) {
		return 1
	}

	return 0
}
