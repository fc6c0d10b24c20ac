package contour

import "github.com/CoMakar/Pixvg/internal/raster"

// Graph holds the boundary edges of one region as a directed graph over
// grid corners.
//
// Each edge is an oriented unit segment with the region's pixels on its
// right-hand side; the left-hand side belongs to another label, to the
// transparent background, or to the area outside the grid (all treated
// uniformly as "not this region"). A pixel-pixel adjacency contributes at
// most one edge per region, so duplicate edges between the same corners
// cannot occur.
type Graph struct {
	// Label is the region whose boundary this graph describes.
	Label int

	// out maps a corner to the corners reachable by one boundary edge.
	// A corner has one outgoing edge, or two at a saddle.
	out map[Point][]Point

	// starts records edge start corners in pixel scan order, keeping the
	// tracing order (and therefore loop order) deterministic.
	starts []Point

	// edges counts the edges not yet consumed by the tracer.
	edges int
}

// addEdge records the directed edge from a to b.
func (g *Graph) addEdge(a, b Point) {
	g.out[a] = append(g.out[a], b)
	g.starts = append(g.starts, a)
	g.edges++
}

// BuildGraphs derives one boundary-edge graph per region of the label map.
//
// For every pixel, each of its four sides shared with a differently-labeled
// neighbor (the transparent background and the area beyond the image border
// count as a synthetic background label) emits one unit edge. Edges run
// clockwise around the pixel in screen coordinates, which places the
// region's interior to the right of each edge:
//
//	top:    (x, y)     -> (x+1, y)
//	right:  (x+1, y)   -> (x+1, y+1)
//	bottom: (x+1, y+1) -> (x, y+1)
//	left:   (x, y+1)   -> (x, y)
//
// The returned slice is indexed by label id. Runs in O(pixels).
func BuildGraphs(m *raster.LabelMap) []*Graph {
	graphs := make([]*Graph, len(m.Regions))
	for i := range graphs {
		graphs[i] = &Graph{Label: i, out: make(map[Point][]Point)}
	}

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			label := m.At(x, y)
			if label == raster.NoLabel {
				continue
			}
			g := graphs[label]
			if m.At(x, y-1) != label {
				g.addEdge(Point{x, y}, Point{x + 1, y})
			}
			if m.At(x+1, y) != label {
				g.addEdge(Point{x + 1, y}, Point{x + 1, y + 1})
			}
			if m.At(x, y+1) != label {
				g.addEdge(Point{x + 1, y + 1}, Point{x, y + 1})
			}
			if m.At(x-1, y) != label {
				g.addEdge(Point{x, y + 1}, Point{x, y})
			}
		}
	}

	return graphs
}
