package vectorize

import (
	"runtime"
	"sync"

	"github.com/CoMakar/Pixvg/internal/contour"
	"github.com/CoMakar/Pixvg/internal/raster"
)

// Options configures a conversion run.
type Options struct {
	// Scale multiplies every output coordinate. Must be >= 1; the pixel
	// grid itself is never resampled.
	Scale int

	// Workers bounds the per-region worker pool. Zero selects
	// runtime.NumCPU(). The worker count never affects the output, only
	// how the per-region work is spread.
	Workers int
}

// Region is one color region in final (scaled) coordinates.
type Region struct {
	// Label is the region's id; regions appear in the document in label order.
	Label int `json:"label"`

	// Color is the region's exact fill color.
	Color raster.RGBA `json:"color"`

	// Outer is the simplified enclosing boundary.
	Outer contour.Loop `json:"outer"`

	// Holes are the simplified cavity boundaries, rendered unfilled.
	Holes []contour.Loop `json:"holes,omitempty"`
}

// Document is the finished vector form of a pixel grid.
//
// Width and Height are the canvas size in output units (grid size times
// scale). Regions are disjoint and together cover exactly the opaque pixels
// of the source grid; a document with zero regions is valid and corresponds
// to an all-transparent grid.
type Document struct {
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Scale   int      `json:"scale"`
	Regions []Region `json:"regions"`
}

// Convert runs the full pipeline over the grid and returns the vector
// document.
//
// Validation failures return an *InvalidInputError before any processing.
// A failed geometric invariant returns an *InconsistencyError and no
// document. Otherwise the conversion is deterministic: the same grid and
// scale always produce an identical document.
func Convert(grid *raster.Grid, opts Options) (*Document, error) {
	if grid.Width() <= 0 || grid.Height() <= 0 {
		return nil, invalidInputf("grid dimensions %dx%d", grid.Width(), grid.Height())
	}
	if opts.Scale < 1 {
		return nil, invalidInputf("scale factor %d, must be >= 1", opts.Scale)
	}

	labels := raster.LabelRegions(grid)
	doc := &Document{
		Width:  grid.Width() * opts.Scale,
		Height: grid.Height() * opts.Scale,
		Scale:  opts.Scale,
	}
	if len(labels.Regions) == 0 {
		return doc, nil
	}

	graphs := contour.BuildGraphs(labels)
	regions, err := traceAll(labels, graphs, opts)
	if err != nil {
		return nil, &InconsistencyError{Err: err}
	}
	doc.Regions = regions
	return doc, nil
}

// traceAll runs tracing, classification, and simplification for every
// region across a worker pool. Workers write disjoint slots of the result
// slice; the slice index equals the label id, which fixes the output order.
func traceAll(labels *raster.LabelMap, graphs []*contour.Graph, opts Options) ([]Region, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(graphs) {
		workers = len(graphs)
	}

	regions := make([]Region, len(graphs))
	errs := make([]error, workers)
	work := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for label := range work {
				if errs[w] != nil {
					continue // keep draining so the feeder never blocks
				}
				errs[w] = traceOne(labels.Regions[label], graphs[label], opts.Scale, &regions[label])
			}
		}(w)
	}

	for label := range graphs {
		work <- label
	}
	close(work)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return regions, nil
}

// traceOne converts a single region's edge graph into its final loops.
func traceOne(info raster.RegionInfo, graph *contour.Graph, scale int, out *Region) error {
	loops, err := graph.Trace()
	if err != nil {
		return err
	}
	outline, err := contour.Classify(loops, info.Label, info.PixelCount)
	if err != nil {
		return err
	}

	out.Label = info.Label
	out.Color = info.Color
	out.Outer = contour.Simplify(outline.Outer, scale)
	for _, h := range outline.Holes {
		out.Holes = append(out.Holes, contour.Simplify(h, scale))
	}
	return nil
}
