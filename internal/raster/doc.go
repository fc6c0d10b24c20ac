// Package raster provides the pixel-side half of the conversion pipeline:
// an immutable grid view over decoded image data and the partitioning of
// that grid into maximal 4-connected same-color regions.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Coordinates outside [0,width) x [0,height) are not part of the grid;
// accessors treat them as transparent.
//
// # Transparency
//
// A pixel is transparent when its alpha component falls below the threshold
// supplied at grid construction time. Transparent pixels belong to no region
// and never merge with opaque neighbors.
//
// # Connectivity
//
// Region labeling uses the Von Neumann neighborhood (4-connectivity): two
// pixels merge only when they share an edge, carry exactly the same RGBA
// value, and are both opaque. Diagonal adjacency never merges regions, and
// color comparison is exact component equality with no tolerance.
//
// # Thread Safety
//
// Grid and LabelMap are immutable after construction and safe for concurrent
// reads. Construction itself is single-threaded.
package raster
