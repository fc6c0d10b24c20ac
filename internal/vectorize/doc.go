// Package vectorize orchestrates the raster-to-vector pipeline.
//
// Convert runs the full transformation: region labeling, boundary-edge
// building, contour tracing, loop classification, and path simplification,
// producing a Document ready for SVG emission. The pipeline is a
// single-pass, purely synchronous transformation with no I/O; decoding the
// input raster and serializing the output document are caller concerns.
//
// # Ownership and Parallelism
//
// Each stage owns the data it produces and hands it off to the next stage
// without sharing; nothing mutates a predecessor's output. Once labeling is
// complete the per-region work (tracing, classification, simplification)
// has no cross-region data dependency, so Convert fans regions out across
// a bounded worker pool. Workers write to disjoint slots of the result
// slice, and the final document always lists regions in label-id order, so
// output is reproducible regardless of worker count.
//
// # Error Taxonomy
//
// Convert distinguishes two failure classes:
//
//   - InvalidInputError: bad caller input (non-positive grid dimensions,
//     scale factor below 1), rejected before any processing begins.
//   - InconsistencyError: an internal geometric invariant failed. This
//     indicates a bug in labeling or tracing, never bad input; the whole
//     conversion aborts and no partial document is produced.
//
// An all-transparent grid is not an error: it converts to a valid document
// with zero regions.
package vectorize
