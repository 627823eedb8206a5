package transform

import (
	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/pixelgrid-mcp/internal/grid"
)

// mapPixels replaces every cell of g with fn applied to its color. Rows are
// processed in parallel; fn must not depend on any other cell.
func mapPixels(g grid.Grid, fn func(grid.Color) grid.Color) {
	width := g.Width()
	parallel.Line(g.Height(), func(start, end int) {
		for row := start; row < end; row++ {
			for col := 0; col < width; col++ {
				g.Set(row, col, fn(g.At(row, col)))
			}
		}
	})
}
