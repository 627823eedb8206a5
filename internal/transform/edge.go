package transform

import (
	"github.com/ironsheep/pixelgrid-mcp/internal/grid"
)

// DetectEdges classifies each cell by comparing its color with its right
// neighbour and the neighbour below. A cell is an edge when either distance
// exceeds threshold.
//
// With darkEdges set, edges become black and all other cells white; with it
// cleared the polarity is inverted. The last row and last column have no
// neighbour pair and are left unmodified.
//
// The pass runs in row-major order, so both neighbours of a cell still hold
// their original colors when it is classified. The return value is the
// number of edge cells.
func DetectEdges(g grid.Grid, threshold float64, darkEdges bool) int {
	edge, plain := grid.Black, grid.White
	if !darkEdges {
		edge, plain = plain, edge
	}

	height, width := g.Height(), g.Width()
	count := 0
	for row := 0; row < height-1; row++ {
		for col := 0; col < width-1; col++ {
			here := g.At(row, col)
			if here.DistanceTo(g.At(row, col+1)) > threshold ||
				here.DistanceTo(g.At(row+1, col)) > threshold {
				g.Set(row, col, edge)
				count++
			} else {
				g.Set(row, col, plain)
			}
		}
	}
	return count
}
