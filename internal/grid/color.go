package grid

import (
	"fmt"
	"math"
)

// Color is an RGB color with 8-bit components.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// DistanceTo returns the Euclidean distance between c and o in RGB space.
//
// The result is in [0, ~441.67]; it is symmetric and zero only when the two
// colors are identical.
func (c Color) DistanceTo(o Color) float64 {
	dr := int(c.R) - int(o.R)
	dg := int(c.G) - int(o.G)
	db := int(c.B) - int(o.B)
	return math.Sqrt(float64(dr*dr + dg*dg + db*db))
}

// Hex formats the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}
