package internal

// Chains are kept in split order, and a split edge is replaced by two edges
// that both point at the new vertex, so neither chain reads as a path on its
// own. Together, though, the two chains always form one closed loop: the
// baseline twice over at first, and every split swaps one edge of the loop for
// a two-edge detour. Loop recovers the vertex order by walking that loop.

// The hull's vertices in loop order, starting at the leftmost point. The first
// vertex is not repeated at the end.
func (b *Builder) Loop() (loop []*Point, err error) {
	if b.state != Active {
		return nil, ErrNotInitialized
	}

	defer func() {
		recoveredErr := HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			loop = nil
			err = recoveredErr
		}
	}()

	start := b.above[0].Start
	if start == b.above[0].End && len(b.above) == 1 {
		// A single point: the baseline starts and ends on it.
		return []*Point{start}, nil
	}

	edges := make(Chain, 0, len(b.above)+len(b.below))
	edges = append(edges, b.above...)
	edges = append(edges, b.below...)

	incident := make(map[*Point][]int)
	for i, edge := range edges {
		incident[edge.Start] = append(incident[edge.Start], i)
		incident[edge.End] = append(incident[edge.End], i)
	}

	used := make([]bool, len(edges))
	loop = []*Point{start}
	current := start
	for steps := 0; ; steps++ {
		if steps >= len(edges) {
			fatalf("hull edges do not close into a loop at %v", current)
		}
		var next *Point
		for _, i := range incident[current] {
			if used[i] {
				continue
			}
			used[i] = true
			next = otherEnd(edges[i], current)
			break
		}
		if next == nil {
			fatalf("hull edges do not close into a loop: dead end at %v", current)
		}
		if next == start {
			break
		}
		loop = append(loop, next)
		current = next
	}

	for i, ok := range used {
		if !ok {
			fatalf("hull edge %v is not on the loop", edges[i])
		}
	}
	return loop, nil
}

func otherEnd(edge *Edge, p *Point) *Point {
	if edge.Start == p {
		return edge.End
	}
	return edge.Start
}
