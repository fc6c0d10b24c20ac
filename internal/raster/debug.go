package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// goldenAngle spaces consecutive label hues far apart so adjacent regions
// stay visually distinct even for large label counts.
const goldenAngle = 137.5

// RenderLabelMap paints every region of the label map in a distinct color.
//
// Hues are assigned by label id along the golden angle, so the output is
// deterministic. Transparent pixels stay fully transparent. The result is
// intended for visual debugging of the labeling stage, not for output.
func RenderLabelMap(m *LabelMap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			label := m.At(x, y)
			if label == NoLabel {
				continue
			}
			h := float64(label) * goldenAngle
			h -= 360 * float64(int(h/360))
			r, g, b := colorful.Hsv(h, 0.85, 0.95).RGB255()
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// SaveLabelMap writes the rendered label map to a PNG file.
//
// A scale factor greater than 1 enlarges the image with nearest-neighbor
// resampling so individual pixels stay sharp.
func SaveLabelMap(path string, m *LabelMap, scale int) error {
	if scale < 1 {
		return fmt.Errorf("invalid label map scale %d", scale)
	}
	var img image.Image = RenderLabelMap(m)
	if scale > 1 {
		img = imaging.Resize(img, m.Width()*scale, m.Height()*scale, imaging.NearestNeighbor)
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save label map: %w", err)
	}
	return nil
}
