package picture

import (
	"fmt"

	"github.com/ironsheep/pixelgrid-mcp/internal/grid"
)

// Overlay draws grid lines onto g every spacing rows and columns, in place.
// When labeled, each intersection gets a "row,col" label so coordinates for
// region operations can be read off the image. It returns the number of
// lines drawn.
func Overlay(g grid.Grid, spacing int, labeled bool, line grid.Color) (int, error) {
	if spacing <= 0 {
		return 0, fmt.Errorf("grid spacing must be positive, got %d", spacing)
	}

	h, w := g.Height(), g.Width()
	lines := 0

	for col := spacing; col < w; col += spacing {
		for row := 0; row < h; row++ {
			g.Set(row, col, line)
		}
		lines++
	}
	for row := spacing; row < h; row += spacing {
		for col := 0; col < w; col++ {
			g.Set(row, col, line)
		}
		lines++
	}

	if labeled {
		for row := spacing; row < h; row += spacing {
			for col := spacing; col < w; col += spacing {
				drawLabel(g, row+2, col+2, fmt.Sprintf("%d,%d", row, col), grid.White, grid.Black)
			}
		}
	}
	return lines, nil
}

// 3x5 glyphs for digits and the comma.
var glyphs = map[rune][5]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	',': {"000", "000", "000", "010", "010"},
}

const (
	glyphAdvance = 4
	labelHeight  = 7
)

// drawLabel draws text with its top-left corner at (row, col) on a bg box.
// Parts falling outside g are clipped; unknown runes leave a gap.
func drawLabel(g grid.Grid, row, col int, text string, fg, bg grid.Color) {
	set := func(r, c int, color grid.Color) {
		if grid.CheckBounds(g, r, c) == nil {
			g.Set(r, c, color)
		}
	}

	width := len(text) * glyphAdvance
	for dr := -1; dr < labelHeight; dr++ {
		for dc := -1; dc < width; dc++ {
			set(row+dr, col+dc, bg)
		}
	}

	c := col
	for _, ch := range text {
		if glyph, ok := glyphs[ch]; ok {
			for r, bits := range glyph {
				for i, bit := range bits {
					if bit == '1' {
						set(row+r, c+i, fg)
					}
				}
			}
		}
		c += glyphAdvance
	}
}
