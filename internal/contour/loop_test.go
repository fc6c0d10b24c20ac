package contour

import "testing"

// unit square loops in both orientations around pixel (x, y)
func squareCW(x, y int) Loop {
	return Loop{{x, y}, {x + 1, y}, {x + 1, y + 1}, {x, y + 1}}
}

func squareCCW(x, y int) Loop {
	return Loop{{x, y}, {x, y + 1}, {x + 1, y + 1}, {x + 1, y}}
}

func TestSignedArea(t *testing.T) {
	tests := []struct {
		name string
		loop Loop
		want int
	}{
		{"unit square clockwise", squareCW(0, 0), 1},
		{"unit square counter-clockwise", squareCCW(0, 0), -1},
		{"3x2 rectangle", Loop{{0, 0}, {3, 0}, {3, 2}, {0, 2}}, 6},
		{"L-shape", Loop{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loop.SignedArea(); got != tt.want {
				t.Errorf("SignedArea: got %d, want %d", got, tt.want)
			}
			if outer := tt.loop.IsOuter(); outer != (tt.want > 0) {
				t.Errorf("IsOuter: got %v for area %d", outer, tt.want)
			}
		})
	}
}

func TestBoundingBox(t *testing.T) {
	l := Loop{{1, 2}, {4, 2}, {4, 5}, {1, 5}}
	min, max := l.BoundingBox()
	if min != (Point{1, 2}) || max != (Point{4, 5}) {
		t.Errorf("bounding box: got %v-%v, want (1,2)-(4,5)", min, max)
	}
}

func TestContainsPixelCenter(t *testing.T) {
	// 3x3 square from (0,0) to (3,3)
	outer := Loop{{0, 0}, {3, 0}, {3, 3}, {0, 3}}

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{1, 1, true},
		{2, 2, true},
		{3, 1, false},
		{1, 3, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		if got := outer.ContainsPixelCenter(tt.x, tt.y); got != tt.want {
			t.Errorf("ContainsPixelCenter(%d,%d): got %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestContainsPixelCenter_LShape(t *testing.T) {
	// L-shape covering pixels (0,0), (1,0), (0,1)
	l := Loop{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}

	if !l.ContainsPixelCenter(0, 0) || !l.ContainsPixelCenter(1, 0) || !l.ContainsPixelCenter(0, 1) {
		t.Error("pixels of the L should be inside")
	}
	if l.ContainsPixelCenter(1, 1) {
		t.Error("the notch pixel (1,1) should be outside")
	}
}

func TestEncloses(t *testing.T) {
	outer := Loop{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	hole := squareCCW(1, 1)
	outside := squareCCW(5, 5)

	if !outer.encloses(hole) {
		t.Error("hole at (1,1) should be enclosed")
	}
	if outer.encloses(outside) {
		t.Error("loop at (5,5) should not be enclosed")
	}
}
