package transform

import (
	"github.com/ironsheep/pixelgrid-mcp/internal/grid"
)

// Named colors used across the tests.
var (
	colA = grid.Color{R: 10, G: 0, B: 0}
	colB = grid.Color{R: 20, G: 0, B: 0}
	colC = grid.Color{R: 30, G: 0, B: 0}
	colD = grid.Color{R: 40, G: 0, B: 0}
)

// createPatternGrid returns a grid where every cell has a distinct color
// derived from its coordinates.
func createPatternGrid(height, width int) *grid.Buffer {
	g := grid.New(height, width)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			g.Set(row, col, grid.Color{
				R: uint8(row * 16),
				G: uint8(col * 16),
				B: uint8((row*width + col) % 256),
			})
		}
	}
	return g
}

// createFilledGrid returns a grid with every cell set to c.
func createFilledGrid(height, width int, c grid.Color) *grid.Buffer {
	g := grid.New(height, width)
	g.Fill(c)
	return g
}
