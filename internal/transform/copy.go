package transform

import (
	"fmt"

	"github.com/ironsheep/pixelgrid-mcp/internal/grid"
)

// Placement positions a source grid on a base grid with its (0,0) cell at
// (Row, Col).
type Placement struct {
	Source grid.Grid
	Row    int
	Col    int
}

// Copy copies src into dst so that src (0,0) lands on dst (startRow,
// startCol). The copy stops at whichever grid edge comes first in each
// dimension, so the copied area is
// min(srcHeight, dstHeight-startRow) x min(srcWidth, dstWidth-startCol).
//
// Negative offsets return a *grid.BoundsError. An offset at or past the
// destination edge copies nothing. The returned count is the number of
// cells written.
func Copy(dst, src grid.Grid, startRow, startCol int) (int, error) {
	if startRow < 0 || startCol < 0 {
		return 0, &grid.BoundsError{Row: startRow, Col: startCol, Height: dst.Height(), Width: dst.Width()}
	}
	return copyInto(dst, src, startRow, dst.Height(), startCol, dst.Width()), nil
}

// CopyRegion copies src, starting at its origin, into the destination
// rectangle rows [startRow, endRow) x columns [startCol, endCol). Source and
// destination indices advance together and the copy stops at whichever runs
// out first.
//
// Only the cells that will be written must lie within dst: the rectangle is
// first clipped to the source size, so a rectangle reaching past dst is
// fine when the source runs out before the edge. Otherwise a
// *grid.BoundsError is returned and nothing is written.
func CopyRegion(dst, src grid.Grid, startRow, endRow, startCol, endCol int) (int, error) {
	endRow = min(endRow, startRow+src.Height())
	endCol = min(endCol, startCol+src.Width())
	rect := grid.Region{RowStart: startRow, RowEnd: endRow, ColStart: startCol, ColEnd: endCol}
	if err := rect.Check(dst); err != nil {
		return 0, err
	}
	return copyInto(dst, src, startRow, endRow, startCol, endCol), nil
}

// copyInto performs the lockstep copy. Bounds are assumed valid.
func copyInto(dst, src grid.Grid, startRow, endRow, startCol, endCol int) int {
	srcH, srcW := src.Height(), src.Width()
	count := 0
	for fromRow, toRow := 0, startRow; fromRow < srcH && toRow < endRow; fromRow, toRow = fromRow+1, toRow+1 {
		for fromCol, toCol := 0, startCol; fromCol < srcW && toCol < endCol; fromCol, toCol = fromCol+1, toCol+1 {
			dst.Set(toRow, toCol, src.At(fromRow, fromCol))
			count++
		}
	}
	return count
}

// Compose copies each placement onto base in order. Later placements
// overwrite earlier ones where they overlap.
//
// Compose stops at the first placement that fails; placements before it
// remain applied. The returned count is the total number of cells written.
func Compose(base grid.Grid, placements []Placement) (int, error) {
	total := 0
	for i, p := range placements {
		n, err := Copy(base, p.Source, p.Row, p.Col)
		if err != nil {
			return total, fmt.Errorf("placement %d at (%d,%d): %w", i, p.Row, p.Col, err)
		}
		total += n
	}
	return total, nil
}

// Collage composes the placements onto base and then mirrors the result
// left to right with MirrorVertical.
func Collage(base grid.Grid, placements []Placement) (int, error) {
	n, err := Compose(base, placements)
	if err != nil {
		return n, err
	}
	MirrorVertical(base)
	return n, nil
}
