package raster

import (
	"fmt"
	"image"
)

// DefaultAlphaThreshold is the alpha value below which a pixel counts as
// transparent when no explicit threshold is supplied.
const DefaultAlphaThreshold = 255

// Grid is an immutable view over decoded pixel data.
//
// A Grid stores one exact RGBA value per pixel plus a transparency predicate
// derived from the alpha threshold it was built with. It is constructed once
// from a decoded image and read-only thereafter.
type Grid struct {
	width  int
	height int
	pixels []RGBA // row-major, len == width*height
	alpha  uint8  // pixels with A < alpha are transparent
}

// FromImage builds a Grid from a decoded image.
//
// Parameters:
//   - img: Source image. The grid covers the image bounds; the concrete
//     color model does not matter, every pixel is converted to 8-bit RGBA.
//   - alphaThreshold: Pixels whose alpha is below this value are treated as
//     transparent and excluded from all regions. Use DefaultAlphaThreshold
//     (255) to keep only fully opaque pixels, or 1 to keep everything that
//     is not fully transparent.
//
// Returns an error if the image has zero or negative dimensions.
func FromImage(img image.Image, alphaThreshold uint8) (*Grid, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	pixels := make([]RGBA, width*height)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			// Convert from 16-bit to 8-bit
			pixels[i] = RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
			i++
		}
	}

	return &Grid{width: width, height: height, pixels: pixels, alpha: alphaThreshold}, nil
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in pixels.
func (g *Grid) Height() int { return g.height }

// At returns the color at (x, y) and whether that pixel is opaque.
// Coordinates outside the grid report a zero color and false.
func (g *Grid) At(x, y int) (RGBA, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return RGBA{}, false
	}
	c := g.pixels[y*g.width+x]
	return c, c.A >= g.alpha
}

// Opaque reports whether the pixel at (x, y) is inside the grid and opaque.
func (g *Grid) Opaque(x, y int) bool {
	_, ok := g.At(x, y)
	return ok
}
