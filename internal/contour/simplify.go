package contour

// Simplify collapses consecutive collinear points of the loop to the
// minimal vertex set and applies the integer scale factor.
//
// A point is dropped when it lies exactly on the straight segment between
// its cyclic neighbors (cross product of the adjoining direction vectors is
// zero). The enclosed area, closedness, simplicity, and orientation sign of
// the loop are unchanged; only redundant vertices disappear. Simplifying an
// already-simplified loop returns it unchanged apart from scaling, and a
// scale factor of 1 leaves coordinates as-is.
func Simplify(l Loop, scale int) Loop {
	out := make(Loop, 0, len(l))
	n := len(l)
	for i, cur := range l {
		prev := l[(i+n-1)%n]
		next := l[(i+1)%n]
		cross := (cur.X-prev.X)*(next.Y-cur.Y) - (cur.Y-prev.Y)*(next.X-cur.X)
		if cross != 0 {
			out = append(out, Point{X: cur.X * scale, Y: cur.Y * scale})
		}
	}
	return out
}
