package contour

import "testing"

func TestSimplify_RemovesCollinearPoints(t *testing.T) {
	// 2x2 square traced as eight unit edges
	full := Loop{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1}}
	want := Loop{{0, 0}, {2, 0}, {2, 2}, {0, 2}}

	got := Simplify(full, 1)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if got.SignedArea() != full.SignedArea() {
		t.Errorf("area changed: %d -> %d", full.SignedArea(), got.SignedArea())
	}
}

func TestSimplify_WrapAroundCollinearity(t *testing.T) {
	// The redundant point sits at the slice boundary: the straight run
	// through the first point must still collapse.
	l := Loop{{1, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}
	got := Simplify(l, 1)
	if len(got) != 4 {
		t.Fatalf("got %d points, want 4: %v", len(got), got)
	}
	if got.SignedArea() != l.SignedArea() {
		t.Errorf("area changed: %d -> %d", l.SignedArea(), got.SignedArea())
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	loops := []Loop{
		{{0, 0}, {2, 0}, {2, 2}, {0, 2}},
		{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}},
		squareCCW(3, 3),
	}
	for _, l := range loops {
		once := Simplify(l, 1)
		twice := Simplify(once, 1)
		if len(once) != len(twice) {
			t.Fatalf("second pass changed %v to %v", once, twice)
		}
		for i := range once {
			if once[i] != twice[i] {
				t.Fatalf("second pass changed %v to %v", once, twice)
			}
		}
	}
}

func TestSimplify_Scale(t *testing.T) {
	l := Loop{{0, 0}, {1, 0}, {2, 0}, {2, 2}, {0, 2}}

	tests := []struct {
		scale int
		area  int
	}{
		{1, 4},
		{3, 36},
		{10, 400},
	}
	for _, tt := range tests {
		got := Simplify(l, tt.scale)
		if area := got.SignedArea(); area != tt.area {
			t.Errorf("scale %d: area %d, want %d", tt.scale, area, tt.area)
		}
		// scaled coordinates are exactly the scale-1 coordinates multiplied
		base := Simplify(l, 1)
		if len(got) != len(base) {
			t.Fatalf("scale %d: vertex count %d, want %d", tt.scale, len(got), len(base))
		}
		for i := range base {
			if got[i].X != base[i].X*tt.scale || got[i].Y != base[i].Y*tt.scale {
				t.Errorf("scale %d: point %d is %v, want %v scaled", tt.scale, i, got[i], base[i])
			}
		}
	}
}

func TestSimplify_PreservesOrientation(t *testing.T) {
	hole := Loop{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 0}}
	if hole.SignedArea() >= 0 {
		t.Fatal("fixture must be a hole loop")
	}
	if Simplify(hole, 2).SignedArea() >= 0 {
		t.Error("simplification flipped orientation")
	}
}
