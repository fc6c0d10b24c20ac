package svgdoc

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/CoMakar/Pixvg/internal/contour"
	"github.com/CoMakar/Pixvg/internal/vectorize"
)

// Write serializes the document as a complete SVG file.
//
// Regions are emitted in document order (label order), one <path> each.
// A document with zero regions produces a valid empty SVG of the canvas
// size. Write performs no geometric work; coordinates are used as-is.
func Write(w io.Writer, doc *vectorize.Document) error {
	canvas := svg.New(w)
	canvas.Start(doc.Width, doc.Height, `shape-rendering="crispEdges"`)
	for _, r := range doc.Regions {
		canvas.Path(PathData(&r), fmt.Sprintf(`fill="%s" fill-rule="evenodd"`, r.Color.Hex()))
	}
	canvas.End()
	return nil
}

// PathData builds the path data string for one region: the outer loop as
// the first closed sub-path, then each hole loop as a further closed
// sub-path.
func PathData(r *vectorize.Region) string {
	var b strings.Builder
	writeLoop(&b, r.Outer)
	for _, h := range r.Holes {
		writeLoop(&b, h)
	}
	return b.String()
}

// writeLoop appends one closed M/L...Z sub-path.
func writeLoop(b *strings.Builder, l contour.Loop) {
	for i, p := range l {
		if i == 0 {
			fmt.Fprintf(b, "M%d,%d", p.X, p.Y)
		} else {
			fmt.Fprintf(b, "L%d,%d", p.X, p.Y)
		}
	}
	b.WriteString("Z")
}
