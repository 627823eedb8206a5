package transform

import (
	"fmt"

	"github.com/ironsheep/pixelgrid-mcp/internal/grid"
)

// Channel names one RGB component.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// ParseChannel converts "red", "green" or "blue" to a Channel.
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "red", "r":
		return Red, nil
	case "green", "g":
		return Green, nil
	case "blue", "b":
		return Blue, nil
	}
	return 0, fmt.Errorf("unknown channel: %s", s)
}

func (ch Channel) String() string {
	switch ch {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Channel(%d)", int(ch))
}

// ZeroBlue sets the blue channel of every pixel to 0.
func ZeroBlue(g grid.Grid) {
	ZeroChannel(g, Blue)
}

// KeepOnlyBlue sets red and green to 0, leaving blue untouched.
func KeepOnlyBlue(g grid.Grid) {
	KeepOnlyChannel(g, Blue)
}

// ZeroChannel sets ch to 0 for every pixel.
func ZeroChannel(g grid.Grid, ch Channel) {
	mapPixels(g, func(c grid.Color) grid.Color {
		switch ch {
		case Red:
			c.R = 0
		case Green:
			c.G = 0
		case Blue:
			c.B = 0
		}
		return c
	})
}

// KeepOnlyChannel zeroes every channel except ch.
func KeepOnlyChannel(g grid.Grid, ch Channel) {
	mapPixels(g, func(c grid.Color) grid.Color {
		out := grid.Color{}
		switch ch {
		case Red:
			out.R = c.R
		case Green:
			out.G = c.G
		case Blue:
			out.B = c.B
		}
		return out
	})
}

// Negate replaces each channel value v with 255-v.
func Negate(g grid.Grid) {
	mapPixels(g, func(c grid.Color) grid.Color {
		return grid.Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
	})
}

// Grayscale sets all three channels to the mean (r+g+b)/3, truncated
// toward zero: (1,1,2) becomes (1,1,1) and (2,2,1) becomes (1,1,1).
func Grayscale(g grid.Grid) {
	mapPixels(g, func(c grid.Color) grid.Color {
		avg := uint8((int(c.R) + int(c.G) + int(c.B)) / 3)
		return grid.Color{R: avg, G: avg, B: avg}
	})
}
