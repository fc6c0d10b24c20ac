package contour

import (
	"fmt"
	"sort"
)

// Outline is one region's classified boundary: a single outer loop plus the
// loops of every cavity in the region's pixel footprint.
type Outline struct {
	// Outer is the region's enclosing boundary (positive signed area).
	Outer Loop

	// Holes are the region's cavity boundaries (negative signed area),
	// strictly nested inside Outer and pairwise non-overlapping. Ordered by
	// bounding-box position (top-left first) for deterministic output.
	Holes []Loop
}

// Classify partitions the traced loops of one region into its outer
// boundary and hole loops, and verifies the invariants between them.
//
// Orientation decides the role of each loop: the shoelace sign is positive
// for the outer boundary and negative for holes (every edge was built with
// the region's pixels on its right-hand side, so the association with the
// owning region is already fixed). pixelCount is the region's pixel area;
// label is used only for error reporting.
//
// The checked invariants are internal-consistency conditions, not input
// validation — any violation means a bug in labeling or tracing upstream:
//
//   - exactly one outer loop exists;
//   - every hole loop nests inside the outer loop (verified with an
//     interior-sample point-in-polygon test);
//   - outer area minus total hole area equals the region's pixel count
//     (each pixel is one square unit before scaling).
func Classify(loops []Loop, label, pixelCount int) (*Outline, error) {
	var o Outline
	holeArea := 0

	for _, l := range loops {
		area := l.SignedArea()
		switch {
		case area > 0:
			if o.Outer != nil {
				return nil, fmt.Errorf("region %d: more than one outer loop", label)
			}
			o.Outer = l
		case area < 0:
			o.Holes = append(o.Holes, l)
			holeArea -= area
		default:
			return nil, fmt.Errorf("region %d: loop with zero area", label)
		}
	}

	if o.Outer == nil {
		return nil, fmt.Errorf("region %d: no outer loop", label)
	}
	if got := o.Outer.SignedArea() - holeArea; got != pixelCount {
		return nil, fmt.Errorf("region %d: boundary encloses %d pixels, region has %d", label, got, pixelCount)
	}
	for _, h := range o.Holes {
		if !o.Outer.encloses(h) {
			min, _ := h.BoundingBox()
			return nil, fmt.Errorf("region %d: hole at (%d,%d) not inside outer loop", label, min.X, min.Y)
		}
	}

	sort.Slice(o.Holes, func(i, j int) bool {
		a, _ := o.Holes[i].BoundingBox()
		b, _ := o.Holes[j].BoundingBox()
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
		p, q := o.Holes[i][0], o.Holes[j][0]
		if p.Y != q.Y {
			return p.Y < q.Y
		}
		return p.X < q.X
	})

	return &o, nil
}
