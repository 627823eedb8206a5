package grid

import "fmt"

// Grid is a fixed-size 2D view of pixel colors.
//
// Implementations panic with a *BoundsError when At or Set is called with
// coordinates outside [0,Height()) x [0,Width()).
type Grid interface {
	Height() int
	Width() int
	At(row, col int) Color
	Set(row, col int, c Color)
}

// Region is a half-open rectangle of cells: rows [RowStart, RowEnd) and
// columns [ColStart, ColEnd).
type Region struct {
	RowStart int `json:"row_start" toml:"row_start"`
	RowEnd   int `json:"row_end" toml:"row_end"`
	ColStart int `json:"col_start" toml:"col_start"`
	ColEnd   int `json:"col_end" toml:"col_end"`
}

// Full returns the region covering all of g.
func Full(g Grid) Region {
	return Region{RowEnd: g.Height(), ColEnd: g.Width()}
}

// Empty reports whether the region contains no cells.
func (r Region) Empty() bool {
	return r.RowStart >= r.RowEnd || r.ColStart >= r.ColEnd
}

// Cells returns the number of cells in the region.
func (r Region) Cells() int {
	if r.Empty() {
		return 0
	}
	return (r.RowEnd - r.RowStart) * (r.ColEnd - r.ColStart)
}

func (r Region) String() string {
	return fmt.Sprintf("rows [%d,%d) cols [%d,%d)", r.RowStart, r.RowEnd, r.ColStart, r.ColEnd)
}

// Check returns a *BoundsError when a non-empty region reaches outside g.
// Empty regions touch no cells and always pass.
func (r Region) Check(g Grid) error {
	if r.Empty() {
		return nil
	}
	if err := CheckBounds(g, r.RowStart, r.ColStart); err != nil {
		return err
	}
	return CheckBounds(g, r.RowEnd-1, r.ColEnd-1)
}

// Buffer is an in-memory Grid.
type Buffer struct {
	height, width int
	cells         []Color
}

// New returns a height x width buffer filled with black.
func New(height, width int) *Buffer {
	if height < 0 || width < 0 {
		panic(&BoundsError{Row: height, Col: width})
	}
	return &Buffer{
		height: height,
		width:  width,
		cells:  make([]Color, height*width),
	}
}

// FromRows builds a buffer from row slices. Every row must have the same
// length as the first.
func FromRows(rows [][]Color) *Buffer {
	if len(rows) == 0 {
		return New(0, 0)
	}
	b := New(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != b.width {
			panic(&BoundsError{Row: r, Col: len(row), Height: b.height, Width: b.width})
		}
		copy(b.cells[r*b.width:], row)
	}
	return b
}

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.height }

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.width }

// At returns the color at (row, col).
func (b *Buffer) At(row, col int) Color {
	return b.cells[b.index(row, col)]
}

// Set stores c at (row, col).
func (b *Buffer) Set(row, col int, c Color) {
	b.cells[b.index(row, col)] = c
}

func (b *Buffer) index(row, col int) int {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		panic(&BoundsError{Row: row, Col: col, Height: b.height, Width: b.width})
	}
	return row*b.width + col
}

// Fill sets every cell to c.
func (b *Buffer) Fill(c Color) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Clone returns an independent copy of b.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{height: b.height, width: b.width, cells: make([]Color, len(b.cells))}
	copy(out.cells, b.cells)
	return out
}

// Rows returns the contents as row slices.
func (b *Buffer) Rows() [][]Color {
	rows := make([][]Color, b.height)
	for r := range rows {
		rows[r] = append([]Color(nil), b.cells[r*b.width:(r+1)*b.width]...)
	}
	return rows
}

// Equal reports whether a and b have the same size and colors.
func Equal(a, b Grid) bool {
	if a.Height() != b.Height() || a.Width() != b.Width() {
		return false
	}
	for r := 0; r < a.Height(); r++ {
		for c := 0; c < a.Width(); c++ {
			if a.At(r, c) != b.At(r, c) {
				return false
			}
		}
	}
	return true
}
