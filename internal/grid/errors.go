package grid

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is matched by every *BoundsError via errors.Is.
var ErrOutOfBounds = errors.New("coordinates outside grid bounds")

// BoundsError reports an access at (Row, Col) on a Height x Width grid.
type BoundsError struct {
	Row, Col      int
	Height, Width int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d grid", e.Row, e.Col, e.Height, e.Width)
}

// Is reports whether target is ErrOutOfBounds.
func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// CheckBounds returns a *BoundsError when (row, col) is not a cell of g.
func CheckBounds(g Grid, row, col int) error {
	h, w := g.Height(), g.Width()
	if row < 0 || row >= h || col < 0 || col >= w {
		return &BoundsError{Row: row, Col: col, Height: h, Width: w}
	}
	return nil
}
