package contour

// Point is a corner coordinate on the pixel grid.
//
// Corners sit between pixels: the corner (x, y) is the top-left corner of
// the pixel (x, y), and a w x h pixel grid has (w+1) x (h+1) corners.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Loop is a closed polygon of corner points. The first point implicitly
// connects back to the last; it is not repeated at the end.
//
// A loop produced by the tracer is simple (non-self-intersecting) and
// axis-aligned. Its orientation encodes its role: positive signed area means
// outer boundary, negative means hole (see the package comment).
type Loop []Point

// SignedArea returns the enclosed area with orientation sign: positive for
// outer (clockwise in screen coordinates) loops, negative for holes.
//
// The shoelace sum of a grid-aligned loop is always even, so the division
// by two is exact.
func (l Loop) SignedArea() int {
	sum := 0
	for i, p := range l {
		q := l[(i+1)%len(l)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// IsOuter reports whether the loop is an outer boundary.
func (l Loop) IsOuter() bool { return l.SignedArea() > 0 }

// BoundingBox returns the smallest axis-aligned box covering the loop,
// as inclusive min and max corner coordinates.
func (l Loop) BoundingBox() (min, max Point) {
	min, max = l[0], l[0]
	for _, p := range l[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// ContainsPixelCenter reports whether the center of the pixel at (x, y)
// lies strictly inside the loop.
func (l Loop) ContainsPixelCenter(x, y int) bool {
	return l.containsDoubled(2*x+1, 2*y+1)
}

// containsDoubled runs an even-odd ray cast against the loop scaled by two.
// Sample points with odd coordinates can never touch a vertex or edge of the
// doubled polygon, so no degenerate cases arise.
func (l Loop) containsDoubled(px, py int) bool {
	inside := false
	for i, a := range l {
		b := l[(i+1)%len(l)]
		if a.X != b.X {
			continue // horizontal edges never cross a horizontal ray
		}
		x2 := 2 * a.X
		y1, y2 := 2*a.Y, 2*b.Y
		if y2 < y1 {
			y1, y2 = y2, y1
		}
		if x2 > px && y1 < py && py < y2 {
			inside = !inside
		}
	}
	return inside
}

// interiorSample returns a point (in doubled coordinates) guaranteed to lie
// strictly inside the area the loop bounds. It steps half a unit from the
// midpoint of the first edge toward the enclosed side: for outer loops the
// region interior is to the right of travel, for holes the cavity is to the
// left.
func (l Loop) interiorSample() (px, py int) {
	a, b := l[0], l[1]
	dx, dy := b.X-a.X, b.Y-a.Y
	px = a.X + b.X
	py = a.Y + b.Y
	if l.IsOuter() {
		// right of travel: clockwise rotation of (dx, dy)
		px += -dy
		py += dx
	} else {
		// left of travel: counter-clockwise rotation
		px += dy
		py += -dx
	}
	return px, py
}

// encloses reports whether the other loop's bounded area lies inside this
// loop. It combines a bounding-box check with a point-in-polygon test on an
// interior sample of the other loop.
func (l Loop) encloses(other Loop) bool {
	lmin, lmax := l.BoundingBox()
	omin, omax := other.BoundingBox()
	if omin.X < lmin.X || omin.Y < lmin.Y || omax.X > lmax.X || omax.Y > lmax.Y {
		return false
	}
	px, py := other.interiorSample()
	return l.containsDoubled(px, py)
}
