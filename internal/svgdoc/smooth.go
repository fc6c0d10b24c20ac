package svgdoc

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/gotranspile/gotrace"
)

// TraceSmooth converts the opaque silhouette of an image to SVG using
// potrace-style curve fitting instead of pixel-perfect tracing.
//
// The image is reduced to a binary mask (alpha >= alphaThreshold), traced
// with gotrace, and rendered as a standalone SVG document string. Colors
// are not preserved; the result is a single-tone silhouette. Use the main
// pipeline for flat-color pixel art and this mode for photographic or
// anti-aliased inputs where smooth outlines are preferable.
func TraceSmooth(img image.Image, alphaThreshold uint8) (string, error) {
	mask := alphaMask(img, alphaThreshold)

	bm := gotrace.BitmapFromGray(mask, nil)
	paths, err := gotrace.Trace(bm, nil)
	if err != nil {
		return "", fmt.Errorf("failed to trace silhouette: %w", err)
	}

	var buf bytes.Buffer
	sz := mask.Bounds().Size()
	if err := gotrace.Render("svg", nil, &buf, paths, sz.X, sz.Y); err != nil {
		return "", fmt.Errorf("failed to render traced paths: %w", err)
	}
	return buf.String(), nil
}

// alphaMask builds a grayscale mask where opaque pixels are white (255)
// and transparent pixels are black (0).
func alphaMask(img image.Image, alphaThreshold uint8) *image.Gray {
	bounds := img.Bounds()
	mask := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if uint8(a>>8) >= alphaThreshold {
				mask.SetGray(x-bounds.Min.X, y-bounds.Min.Y, color.Gray{Y: 255})
			}
		}
	}
	return mask
}
