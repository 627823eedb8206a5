package picture

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/pixelgrid-mcp/internal/grid"
)

// ParseColor parses "#RRGGBB" or "#RGB"; the leading '#' is optional.
func ParseColor(hex string) (grid.Color, error) {
	if hex == "" {
		return grid.Color{}, fmt.Errorf("empty color string")
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return grid.Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return grid.Color{R: r, G: g, B: b}, nil
}

// HSLColor represents a color in HSL space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult describes one sampled pixel.
type ColorResult struct {
	Row int        `json:"row"`
	Col int        `json:"col"`
	Hex string     `json:"hex"`
	RGB grid.Color `json:"rgb"`
	HSL HSLColor   `json:"hsl"`
}

// SampleColor returns the color at (row, col) in several notations.
//
// Coordinates outside the grid return a *grid.BoundsError rather than
// panicking, since they usually come from user input.
func SampleColor(g grid.Grid, row, col int) (*ColorResult, error) {
	if err := grid.CheckBounds(g, row, col); err != nil {
		return nil, err
	}

	c := g.At(row, col)
	h, s, l := toColorful(c).Hsl()

	return &ColorResult{
		Row: row,
		Col: col,
		Hex: c.Hex(),
		RGB: c,
		HSL: HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}, nil
}

func toColorful(c grid.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}
