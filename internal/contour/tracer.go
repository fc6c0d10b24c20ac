package contour

import "fmt"

// Trace consumes the graph's edges and returns the closed loops they form.
//
// Starting from the first unconsumed edge in pixel scan order, the tracer
// repeatedly follows outgoing edges until the walk returns to its starting
// corner. Corners normally carry exactly one outgoing edge; at a saddle
// corner two are available and the tracer takes the turn toward the
// region's interior (the left turn, given that the interior lies to the
// right of the travel direction). This resolves the diagonal touch into two
// separate simple loops rather than one self-crossing loop.
//
// Every edge belongs to exactly one returned loop. An edge left unconsumed
// after all walks finish indicates a labeling or edge-building bug and is
// reported as an error; Trace never returns partial results.
//
// Trace may be called once per graph. It mutates the graph's edge store.
func (g *Graph) Trace() ([]Loop, error) {
	var loops []Loop

	for _, start := range g.starts {
		if len(g.out[start]) == 0 {
			continue // already consumed by an earlier loop
		}

		loop := Loop{start}
		cur := g.takeEdge(start, start) // no incoming direction yet
		for cur != start {
			loop = append(loop, cur)
			next := g.takeEdge(cur, loop[len(loop)-2])
			if next == cur {
				return nil, fmt.Errorf("region %d: dead end at corner (%d,%d)", g.Label, cur.X, cur.Y)
			}
			cur = next
		}
		loops = append(loops, loop)
	}

	if g.edges != 0 {
		return nil, fmt.Errorf("region %d: %d boundary edges left untraced", g.Label, g.edges)
	}
	return loops, nil
}

// takeEdge consumes and returns the outgoing edge at cur, given the corner
// the walk arrived from. With two candidates (a saddle) it picks the left
// turn relative to the incoming direction. Returns cur itself when no edge
// is available.
func (g *Graph) takeEdge(cur, prev Point) Point {
	candidates := g.out[cur]
	switch len(candidates) {
	case 0:
		return cur
	case 1:
		g.consume(cur, 0)
		return candidates[0]
	}

	// Saddle: outgoing directions are perpendicular to the incoming one.
	// Left turn keeps the walk hugging the interior quadrant.
	dx, dy := cur.X-prev.X, cur.Y-prev.Y
	leftX, leftY := cur.X+dy, cur.Y-dx // counter-clockwise rotation of (dx, dy)
	for i, c := range candidates {
		if c.X == leftX && c.Y == leftY {
			g.consume(cur, i)
			return c
		}
	}
	g.consume(cur, 0)
	return candidates[0]
}

// consume removes the i-th outgoing edge at corner p.
func (g *Graph) consume(p Point, i int) {
	candidates := g.out[p]
	candidates[i] = candidates[len(candidates)-1]
	g.out[p] = candidates[:len(candidates)-1]
	g.edges--
}
