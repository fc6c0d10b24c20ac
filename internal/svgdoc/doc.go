// Package svgdoc serializes converted documents to SVG.
//
// Each region becomes a single <path> element: the outer loop is the first
// sub-path, followed by one sub-path per hole, all in M/L/Z form with
// integer coordinates. Paths are filled with the region's exact color under
// fill-rule="evenodd", so hole sub-paths render see-through regardless of
// their winding. The root element carries shape-rendering="crispEdges" to
// keep pixel boundaries sharp when viewers rasterize the result.
//
// The package also provides a smooth tracing mode built on gotrace, which
// fits potrace-style curves to the opaque silhouette of an image instead of
// reproducing it pixel-perfectly. It is an alternative engine for inputs
// that are not flat-color pixel art.
package svgdoc
