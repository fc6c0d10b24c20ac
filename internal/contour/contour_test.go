package contour

import (
	"image"
	"image/color"
	"testing"

	"github.com/CoMakar/Pixvg/internal/raster"
)

// fixture colors for contour tests; '.' marks transparency.
var testColors = map[rune]color.NRGBA{
	'A': {255, 0, 0, 255},
	'B': {0, 255, 0, 255},
}

// labelMapFromRows builds a labeled grid from one string per row.
func labelMapFromRows(t *testing.T, rows ...string) *raster.LabelMap {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, r := range row {
			if r == '.' {
				continue
			}
			c, ok := testColors[r]
			if !ok {
				t.Fatalf("unknown fixture rune %q", r)
			}
			img.SetNRGBA(x, y, c)
		}
	}
	g, err := raster.FromImage(img, raster.DefaultAlphaThreshold)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	return raster.LabelRegions(g)
}

// traceLabel builds and traces the edge graph of one label.
func traceLabel(t *testing.T, m *raster.LabelMap, label int) []Loop {
	t.Helper()
	graphs := BuildGraphs(m)
	loops, err := graphs[label].Trace()
	if err != nil {
		t.Fatalf("Trace failed for label %d: %v", label, err)
	}
	return loops
}

// assertSimple fails if the loop repeats a corner.
func assertSimple(t *testing.T, l Loop) {
	t.Helper()
	seen := make(map[Point]bool, len(l))
	for _, p := range l {
		if seen[p] {
			t.Fatalf("loop revisits corner (%d,%d): %v", p.X, p.Y, l)
		}
		seen[p] = true
	}
}
