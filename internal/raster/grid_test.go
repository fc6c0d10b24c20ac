package raster

import (
	"image"
	"image/color"
	"testing"
)

// colorKey maps the runes used in test fixtures to concrete colors.
// '.' marks a fully transparent pixel.
var colorKey = map[rune]color.RGBA{
	'A': {255, 0, 0, 255},
	'B': {0, 255, 0, 255},
	'C': {0, 0, 255, 255},
	'D': {255, 255, 0, 255},
	'h': {128, 0, 0, 128}, // semi-transparent
}

// imageFromRows builds an in-memory test image from one string per row.
func imageFromRows(t *testing.T, rows ...string) *image.NRGBA {
	t.Helper()
	if len(rows) == 0 {
		t.Fatal("imageFromRows: no rows")
	}
	img := image.NewNRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, r := range row {
			if r == '.' {
				continue
			}
			c, ok := colorKey[r]
			if !ok {
				t.Fatalf("imageFromRows: unknown rune %q", r)
			}
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return img
}

// gridFromRows builds a Grid from fixture rows with the default threshold.
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := FromImage(imageFromRows(t, rows...), DefaultAlphaThreshold)
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	return g
}

func TestFromImage(t *testing.T) {
	g := gridFromRows(t,
		"AB",
		".A",
	)

	if g.Width() != 2 || g.Height() != 2 {
		t.Fatalf("dimensions: got %dx%d, want 2x2", g.Width(), g.Height())
	}

	c, ok := g.At(0, 0)
	if !ok {
		t.Fatal("pixel (0,0) should be opaque")
	}
	if c != (RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel (0,0): got %+v, want red", c)
	}

	if _, ok := g.At(0, 1); ok {
		t.Error("pixel (0,1) should be transparent")
	}
}

func TestFromImage_EmptyBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))
	if _, err := FromImage(img, DefaultAlphaThreshold); err == nil {
		t.Error("expected error for zero-sized image")
	}
}

func TestGridAt_OutOfBounds(t *testing.T) {
	g := gridFromRows(t, "A")

	tests := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {1, 0}, {0, 1},
	}
	for _, tt := range tests {
		if g.Opaque(tt.x, tt.y) {
			t.Errorf("(%d,%d) outside the grid should not be opaque", tt.x, tt.y)
		}
	}
}

func TestAlphaThreshold(t *testing.T) {
	img := imageFromRows(t, "Ah.")

	tests := []struct {
		name      string
		threshold uint8
		opaque    [3]bool
	}{
		{"fully opaque only", 255, [3]bool{true, false, false}},
		{"half opaque kept", 100, [3]bool{true, true, false}},
		{"everything above zero", 1, [3]bool{true, true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromImage(img, tt.threshold)
			if err != nil {
				t.Fatalf("FromImage failed: %v", err)
			}
			for x, want := range tt.opaque {
				if got := g.Opaque(x, 0); got != want {
					t.Errorf("pixel (%d,0): opaque = %v, want %v", x, got, want)
				}
			}
		})
	}
}

func TestRGBAHex(t *testing.T) {
	tests := []struct {
		color RGBA
		want  string
	}{
		{RGBA{255, 0, 0, 255}, "#ff0000ff"},
		{RGBA{0, 0, 0, 0}, "#00000000"},
		{RGBA{18, 52, 86, 120}, "#12345678"},
	}
	for _, tt := range tests {
		if got := tt.color.Hex(); got != tt.want {
			t.Errorf("Hex(%+v): got %s, want %s", tt.color, got, tt.want)
		}
	}
}
