package raster

import "sort"

// PaletteEntry describes one distinct opaque color and how often it occurs.
type PaletteEntry struct {
	Color  RGBA   `json:"color"`
	Hex    string `json:"hex"`    // "#rrggbbaa"
	Pixels int    `json:"pixels"` // number of opaque pixels with this color
}

// Palette returns the distinct opaque colors of the grid.
//
// Entries are ordered by HSV hue, then by pixel count descending, so the
// listing is deterministic for a given grid. Transparent pixels are ignored.
func Palette(g *Grid) []PaletteEntry {
	counts := make(map[RGBA]int)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if c, ok := g.At(x, y); ok {
				counts[c]++
			}
		}
	}

	entries := make([]PaletteEntry, 0, len(counts))
	for c, n := range counts {
		entries = append(entries, PaletteEntry{Color: c, Hex: c.Hex(), Pixels: n})
	}

	sort.Slice(entries, func(i, j int) bool {
		hi, hj := entries[i].Color.hue(), entries[j].Color.hue()
		if hi != hj {
			return hi < hj
		}
		if entries[i].Pixels != entries[j].Pixels {
			return entries[i].Pixels > entries[j].Pixels
		}
		return entries[i].Hex < entries[j].Hex
	})

	return entries
}
