package raster

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA represents an exact 8-bit RGBA color value.
//
// Equality between two RGBA values is exact component equality. The pipeline
// never merges near-duplicate or anti-aliased colors; two pixels belong to
// the same region only when their RGBA values are identical.
type RGBA struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// Hex returns the color as an 8-digit lowercase hex string "#rrggbbaa".
//
// The alpha component is always included so that semi-transparent regions
// keep their opacity when used as an SVG fill.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// hue returns the HSV hue of the color in degrees (0-360), ignoring alpha.
// Used only for deterministic palette ordering.
func (c RGBA) hue() float64 {
	cf := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	h, _, _ := cf.Hsv()
	return h
}
