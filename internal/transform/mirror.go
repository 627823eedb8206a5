package transform

import (
	"github.com/ironsheep/pixelgrid-mcp/internal/grid"
)

// MirrorVertical copies the left half onto the right half across the
// vertical center line. For odd widths the center column is untouched.
func MirrorVertical(g grid.Grid) {
	width := g.Width()
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < width/2; col++ {
			g.Set(row, width-1-col, g.At(row, col))
		}
	}
}

// MirrorVerticalRightToLeft copies the right half onto the left half.
func MirrorVerticalRightToLeft(g grid.Grid) {
	width := g.Width()
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < width/2; col++ {
			g.Set(row, col, g.At(row, width-1-col))
		}
	}
}

// MirrorHorizontal copies the top half onto the bottom half across the
// horizontal center line. For odd heights the center row is untouched.
func MirrorHorizontal(g grid.Grid) {
	height := g.Height()
	for row := 0; row < height/2; row++ {
		for col := 0; col < g.Width(); col++ {
			g.Set(height-1-row, col, g.At(row, col))
		}
	}
}

// MirrorHorizontalBottomToTop copies the bottom half onto the top half.
func MirrorHorizontalBottomToTop(g grid.Grid) {
	height := g.Height()
	for row := 0; row < height/2; row++ {
		for col := 0; col < g.Width(); col++ {
			g.Set(row, col, g.At(height-1-row, col))
		}
	}
}

// MirrorDiagonal copies the upper triangle of the top-left n x n block
// (n = min(height, width)) onto the lower triangle, so (r,c) lands on (c,r).
// Cells outside that block are untouched.
func MirrorDiagonal(g grid.Grid) {
	n := min(g.Height(), g.Width())
	for row := 0; row < n; row++ {
		for col := row; col < n; col++ {
			g.Set(col, row, g.At(row, col))
		}
	}
}

// MirrorRegion reflects rows [rowStart, rowEnd) x columns [colStart,
// mirrorPoint) across the vertical line at column mirrorPoint: cell (r, c)
// is copied to (r, 2*mirrorPoint-c).
//
// The source rectangle must lie within g; otherwise a *grid.BoundsError is
// returned and nothing is written. Targets past the right edge are skipped.
// The returned count is the number of cells written.
func MirrorRegion(g grid.Grid, rowStart, rowEnd, colStart, mirrorPoint int) (int, error) {
	src := grid.Region{RowStart: rowStart, RowEnd: rowEnd, ColStart: colStart, ColEnd: mirrorPoint}
	if err := src.Check(g); err != nil {
		return 0, err
	}

	width := g.Width()
	count := 0
	for row := rowStart; row < rowEnd; row++ {
		for col := colStart; col < mirrorPoint; col++ {
			target := 2*mirrorPoint - col
			if target >= width {
				continue
			}
			g.Set(row, target, g.At(row, col))
			count++
		}
	}
	return count, nil
}

// MirrorRegionHorizontal is MirrorRegion across a horizontal line: rows
// [rowStart, mirrorPoint) x columns [colStart, colEnd) are copied so that
// (r, c) lands on (2*mirrorPoint-r, c). Targets past the bottom edge are
// skipped.
func MirrorRegionHorizontal(g grid.Grid, colStart, colEnd, rowStart, mirrorPoint int) (int, error) {
	src := grid.Region{RowStart: rowStart, RowEnd: mirrorPoint, ColStart: colStart, ColEnd: colEnd}
	if err := src.Check(g); err != nil {
		return 0, err
	}

	height := g.Height()
	count := 0
	for row := rowStart; row < mirrorPoint; row++ {
		target := 2*mirrorPoint - row
		if target >= height {
			continue
		}
		for col := colStart; col < colEnd; col++ {
			g.Set(target, col, g.At(row, col))
			count++
		}
	}
	return count, nil
}
