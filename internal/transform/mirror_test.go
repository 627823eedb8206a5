package transform

import (
	"errors"
	"testing"

	"github.com/ironsheep/pixelgrid-mcp/internal/grid"
)

func TestMirrorVertical_Row(t *testing.T) {
	g := grid.FromRows([][]grid.Color{{colA, colB, colC, colD}})
	MirrorVertical(g)

	want := []grid.Color{colA, colB, colB, colA}
	for col, w := range want {
		if got := g.At(0, col); got != w {
			t.Errorf("col %d: got %v, want %v", col, got, w)
		}
	}
}

func TestMirrorVertical_OddWidthKeepsCenter(t *testing.T) {
	g := grid.FromRows([][]grid.Color{{colA, colB, colC, colD, grid.White}})
	MirrorVertical(g)

	want := []grid.Color{colA, colB, colC, colB, colA}
	for col, w := range want {
		if got := g.At(0, col); got != w {
			t.Errorf("col %d: got %v, want %v", col, got, w)
		}
	}
}

func TestMirrorVerticalRightToLeft(t *testing.T) {
	g := grid.FromRows([][]grid.Color{{colA, colB, colC, colD}})
	MirrorVerticalRightToLeft(g)

	want := []grid.Color{colD, colC, colC, colD}
	for col, w := range want {
		if got := g.At(0, col); got != w {
			t.Errorf("col %d: got %v, want %v", col, got, w)
		}
	}
}

func TestMirrorHorizontal(t *testing.T) {
	g := grid.FromRows([][]grid.Color{{colA}, {colB}, {colC}, {colD}, {grid.White}})
	MirrorHorizontal(g)

	want := []grid.Color{colA, colB, colC, colB, colA}
	for row, w := range want {
		if got := g.At(row, 0); got != w {
			t.Errorf("row %d: got %v, want %v", row, got, w)
		}
	}
}

func TestMirrorHorizontalBottomToTop(t *testing.T) {
	g := grid.FromRows([][]grid.Color{{colA}, {colB}, {colC}, {colD}})
	MirrorHorizontalBottomToTop(g)

	want := []grid.Color{colD, colC, colC, colD}
	for row, w := range want {
		if got := g.At(row, 0); got != w {
			t.Errorf("row %d: got %v, want %v", row, got, w)
		}
	}
}

func TestMirrors_Symmetric(t *testing.T) {
	tests := []struct {
		name   string
		mirror func(grid.Grid)
		pair   func(g grid.Grid, row, col int) (int, int)
	}{
		{"vertical", MirrorVertical, func(g grid.Grid, r, c int) (int, int) { return r, g.Width() - 1 - c }},
		{"vertical right to left", MirrorVerticalRightToLeft, func(g grid.Grid, r, c int) (int, int) { return r, g.Width() - 1 - c }},
		{"horizontal", MirrorHorizontal, func(g grid.Grid, r, c int) (int, int) { return g.Height() - 1 - r, c }},
		{"horizontal bottom to top", MirrorHorizontalBottomToTop, func(g grid.Grid, r, c int) (int, int) { return g.Height() - 1 - r, c }},
	}

	for _, tt := range tests {
		for _, size := range [][2]int{{4, 6}, {5, 7}, {1, 1}} {
			t.Run(tt.name, func(t *testing.T) {
				g := createPatternGrid(size[0], size[1])
				tt.mirror(g)
				for row := 0; row < g.Height(); row++ {
					for col := 0; col < g.Width(); col++ {
						pr, pc := tt.pair(g, row, col)
						if g.At(row, col) != g.At(pr, pc) {
							t.Fatalf("%dx%d: (%d,%d) != (%d,%d)", size[0], size[1], row, col, pr, pc)
						}
					}
				}
			})
		}
	}
}

func TestMirrorVertical_TwiceIsStable(t *testing.T) {
	for _, width := range []int{6, 7} {
		g := createPatternGrid(3, width)
		MirrorVertical(g)
		once := g.Clone()
		MirrorVertical(g)
		if !grid.Equal(g, once) {
			t.Errorf("width %d: second mirror changed an already symmetric grid", width)
		}
	}
}

func TestMirrorVertical_KeepsSourceHalf(t *testing.T) {
	g := createPatternGrid(4, 7)
	orig := g.Clone()
	MirrorVertical(g)

	for row := 0; row < 4; row++ {
		for col := 0; col <= 3; col++ {
			if g.At(row, col) != orig.At(row, col) {
				t.Fatalf("source cell (%d,%d) changed", row, col)
			}
		}
	}
}

func TestMirrorDiagonal_Square(t *testing.T) {
	g := createPatternGrid(4, 4)
	orig := g.Clone()
	MirrorDiagonal(g)

	for row := 0; row < 4; row++ {
		for col := row; col < 4; col++ {
			if g.At(row, col) != orig.At(row, col) {
				t.Errorf("upper cell (%d,%d) changed", row, col)
			}
			if g.At(col, row) != orig.At(row, col) {
				t.Errorf("lower cell (%d,%d): got %v, want %v", col, row, g.At(col, row), orig.At(row, col))
			}
		}
	}
}

func TestMirrorDiagonal_NonSquare(t *testing.T) {
	g := createPatternGrid(2, 3)
	orig := g.Clone()
	MirrorDiagonal(g)

	if g.At(1, 0) != orig.At(0, 1) {
		t.Errorf("(1,0): got %v, want %v", g.At(1, 0), orig.At(0, 1))
	}
	for row := 0; row < 2; row++ {
		if g.At(row, 2) != orig.At(row, 2) {
			t.Errorf("column 2 row %d changed", row)
		}
	}

	tall := createPatternGrid(3, 2)
	origTall := tall.Clone()
	MirrorDiagonal(tall)
	for col := 0; col < 2; col++ {
		if tall.At(2, col) != origTall.At(2, col) {
			t.Errorf("row 2 col %d changed", col)
		}
	}
}

func TestMirrorRegion(t *testing.T) {
	g := createPatternGrid(6, 10)
	orig := g.Clone()

	// rows 1..3, columns 2..4 reflected across column 5 onto columns 8..6
	count, err := MirrorRegion(g, 1, 4, 2, 5)
	if err != nil {
		t.Fatalf("MirrorRegion failed: %v", err)
	}
	if count != 9 {
		t.Errorf("count: got %d, want 9", count)
	}

	for row := 1; row < 4; row++ {
		for col := 2; col < 5; col++ {
			if got, want := g.At(row, 10-col), orig.At(row, col); got != want {
				t.Errorf("(%d,%d): got %v, want %v", row, 10-col, got, want)
			}
		}
		if g.At(row, 5) != orig.At(row, 5) {
			t.Errorf("mirror column changed on row %d", row)
		}
	}
	for col := 0; col < 10; col++ {
		if g.At(0, col) != orig.At(0, col) || g.At(5, col) != orig.At(5, col) {
			t.Fatalf("rows outside region changed at col %d", col)
		}
	}
}

func TestMirrorRegion_SkipsTargetsPastEdge(t *testing.T) {
	g := createPatternGrid(2, 8)
	orig := g.Clone()

	// columns 0..5 mirror across 6: targets 12..7, only 7 is inside
	count, err := MirrorRegion(g, 0, 2, 0, 6)
	if err != nil {
		t.Fatalf("MirrorRegion failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count: got %d, want 2", count)
	}
	for row := 0; row < 2; row++ {
		if g.At(row, 7) != orig.At(row, 5) {
			t.Errorf("row %d col 7: got %v, want %v", row, g.At(row, 7), orig.At(row, 5))
		}
	}
}

func TestMirrorRegion_OutOfBounds(t *testing.T) {
	g := createPatternGrid(5, 5)
	orig := g.Clone()

	tests := []struct {
		name                                    string
		rowStart, rowEnd, colStart, mirrorPoint int
	}{
		{"negative row", -1, 3, 0, 2},
		{"row end past edge", 0, 6, 0, 2},
		{"negative col", 0, 3, -2, 2},
		{"mirror point past edge", 0, 3, 0, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MirrorRegion(g, tt.rowStart, tt.rowEnd, tt.colStart, tt.mirrorPoint)
			if !errors.Is(err, grid.ErrOutOfBounds) {
				t.Errorf("expected bounds error, got %v", err)
			}
			if !grid.Equal(g, orig) {
				t.Error("grid modified by failed call")
			}
		})
	}
}

func TestMirrorRegionHorizontal(t *testing.T) {
	g := createPatternGrid(10, 4)
	orig := g.Clone()

	// rows 2..4 of columns 1..2 reflected across row 5 onto rows 8..6
	count, err := MirrorRegionHorizontal(g, 1, 3, 2, 5)
	if err != nil {
		t.Fatalf("MirrorRegionHorizontal failed: %v", err)
	}
	if count != 6 {
		t.Errorf("count: got %d, want 6", count)
	}
	for row := 2; row < 5; row++ {
		for col := 1; col < 3; col++ {
			if got, want := g.At(10-row, col), orig.At(row, col); got != want {
				t.Errorf("(%d,%d): got %v, want %v", 10-row, col, got, want)
			}
		}
	}
	if g.At(8, 0) != orig.At(8, 0) || g.At(8, 3) != orig.At(8, 3) {
		t.Error("columns outside region changed")
	}

	// targets below the last row are skipped
	count, err = MirrorRegionHorizontal(g, 0, 4, 6, 8)
	if err != nil {
		t.Fatalf("MirrorRegionHorizontal failed: %v", err)
	}
	if count != 4 {
		t.Errorf("count with skipped rows: got %d, want 4", count)
	}
}
