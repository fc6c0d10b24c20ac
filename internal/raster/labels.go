package raster

// Bounds represents a rectangular bounding box in pixel coordinates.
//
// The coordinate convention follows standard image bounds:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge (exclusive)
	Y2 int `json:"y2"` // Bottom edge (exclusive)
}

// include grows the box to cover the pixel at (x, y).
func (b *Bounds) include(x, y int) {
	if x < b.X1 {
		b.X1 = x
	}
	if y < b.Y1 {
		b.Y1 = y
	}
	if x+1 > b.X2 {
		b.X2 = x + 1
	}
	if y+1 > b.Y2 {
		b.Y2 = y + 1
	}
}

// RegionInfo holds per-label metadata produced by labeling.
type RegionInfo struct {
	// Label is the region's identifier, equal to its index in LabelMap.Regions.
	// Labels are assigned in row-major scan order of each region's first pixel,
	// so they are deterministic for a given grid.
	Label int `json:"label"`

	// Color is the exact RGBA value shared by every pixel of the region.
	Color RGBA `json:"color"`

	// PixelCount is the number of pixels in the region.
	PixelCount int `json:"pixel_count"`

	// Bounds is the region's bounding box.
	Bounds Bounds `json:"bounds"`
}

// NoLabel marks transparent pixels in the label map.
const NoLabel = -1

// LabelMap partitions a Grid into maximal 4-connected same-color regions.
//
// The map is a flat arena indexed by pixel offset, owned exclusively by
// LabelRegions while it runs and read-only afterward. Every opaque pixel
// carries exactly one label; transparent pixels carry NoLabel.
type LabelMap struct {
	width  int
	height int
	labels []int32

	// Regions holds one entry per label, indexed by label id.
	Regions []RegionInfo
}

// LabelRegions partitions the grid into maximal 4-connected same-color
// regions and returns the resulting label map.
//
// Two pixels merge iff both are opaque, carry exactly the same RGBA value,
// and are 4-adjacent (share an edge). The flood fill uses an explicit work
// stack rather than recursion so that arbitrarily large regions cannot
// exhaust the call stack. Runs in O(pixels).
//
// An all-transparent grid yields a valid map with zero regions.
func LabelRegions(g *Grid) *LabelMap {
	m := &LabelMap{
		width:  g.Width(),
		height: g.Height(),
		labels: make([]int32, g.Width()*g.Height()),
	}
	for i := range m.labels {
		m.labels[i] = NoLabel
	}

	type point struct{ x, y int }
	var stack []point

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			color, ok := g.At(x, y)
			if !ok || m.labels[y*m.width+x] != NoLabel {
				continue
			}

			label := int32(len(m.Regions))
			info := RegionInfo{
				Label:  int(label),
				Color:  color,
				Bounds: Bounds{X1: x, Y1: y, X2: x + 1, Y2: y + 1},
			}

			stack = append(stack[:0], point{x, y})
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				if m.labels[p.y*m.width+p.x] != NoLabel {
					continue
				}
				m.labels[p.y*m.width+p.x] = label
				info.PixelCount++
				info.Bounds.include(p.x, p.y)

				// 4-neighbors only; diagonal adjacency never merges
				for _, n := range [4]point{{p.x, p.y - 1}, {p.x + 1, p.y}, {p.x, p.y + 1}, {p.x - 1, p.y}} {
					nc, nok := g.At(n.x, n.y)
					if nok && nc == color && m.labels[n.y*m.width+n.x] == NoLabel {
						stack = append(stack, n)
					}
				}
			}

			m.Regions = append(m.Regions, info)
		}
	}

	return m
}

// Width returns the label map width in pixels.
func (m *LabelMap) Width() int { return m.width }

// Height returns the label map height in pixels.
func (m *LabelMap) Height() int { return m.height }

// At returns the label at (x, y). Transparent and out-of-grid positions
// report NoLabel.
func (m *LabelMap) At(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return NoLabel
	}
	return int(m.labels[y*m.width+x])
}
