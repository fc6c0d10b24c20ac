// Package contour turns labeled pixel regions into closed vector loops.
//
// The package implements the middle stages of the conversion pipeline:
//
//  1. Edge building: every side a region pixel shares with a pixel of a
//     different label (or with the transparent background / image border)
//     becomes one oriented unit edge along the pixel grid.
//  2. Tracing: the edges of each region are chained into closed loops of
//     integer corner coordinates.
//  3. Classification: loops are split into one outer boundary and zero or
//     more hole loops per region, and the geometric invariants between them
//     are verified.
//  4. Simplification: collinear corner points are collapsed and the integer
//     scale factor is applied.
//
// # Orientation Convention
//
// Edges are oriented so that the region's interior lies to the right of the
// travel direction. In screen coordinates (Y down) this traces outer
// boundaries clockwise and cavity boundaries counter-clockwise, which makes
// the shoelace signed area positive for outer loops and negative for holes.
// Emitters relying on the nonzero fill rule can use the loops as-is; the
// even-odd rule is orientation-independent and also renders holes unfilled.
//
// # Saddle Corners
//
// At a corner where two pixels of the same region touch only diagonally,
// four boundary edges meet. The tracer always takes the turn toward the
// interior (the left turn under the orientation above), which splits the
// crossing into two separate simple loops instead of one self-intersecting
// loop.
package contour
