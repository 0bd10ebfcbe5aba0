package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Default playfield dimensions.
const (
	DefaultRows = 20
	DefaultCols = 10
)

// Board is the fixed-size grid of locked cells. Row 0 is the topmost visible
// row. An empty cell holds core.ColorDefault; a locked cell holds the color
// of the piece that filled it. Dimensions never change after creation.
type Board struct {
	rows  int
	cols  int
	cells [][]core.Color
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(rows, cols int) *Board {
	b := &Board{rows: rows, cols: cols}
	b.cells = make([][]core.Color, rows)
	for y := range b.cells {
		b.cells[y] = make([]core.Color, cols)
	}
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// Cell returns the color at (x, y). Coordinates outside the grid read as empty.
func (b *Board) Cell(x, y int) core.Color {
	if !b.inside(x, y) {
		return core.ColorDefault
	}
	return b.cells[y][x]
}

// IsOccupied reports whether (x, y) blocks a piece. Columns outside
// [0, cols) and rows at or below the floor are blocked; rows above the top
// (y < 0) are open so pieces can spawn partially hidden.
func (b *Board) IsOccupied(x, y int) bool {
	if x < 0 || x >= b.cols || y >= b.rows {
		return true
	}
	if y < 0 {
		return false
	}
	return !b.cells[y][x].IsEmpty()
}

// LockCell writes a color into (x, y). Cells above the board or outside the
// grid are skipped.
func (b *Board) LockCell(x, y int, c core.Color) {
	if !b.inside(x, y) {
		return
	}
	b.cells[y][x] = c
}

// Fits reports whether every occupied cell of p is a legal position.
func (b *Board) Fits(p Piece) bool {
	for y, row := range p.Shape {
		for x, filled := range row {
			if filled && b.IsOccupied(p.X+x, p.Y+y) {
				return false
			}
		}
	}
	return true
}

// Lock writes every occupied cell of p into the board using the piece color.
func (b *Board) Lock(p Piece) {
	for _, c := range p.Cells() {
		b.LockCell(c.X, c.Y, p.Color)
	}
}

// ClearFullRows removes every full row, shifting the rows above it down and
// inserting empty rows at the top. Rows are scanned bottom to top and the
// same index is examined again after a removal, so no row is skipped.
// Returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := b.rows - 1; y >= 0; {
		if b.rowFull(y) {
			b.removeRow(y)
			cleared++
			continue
		}
		y--
	}
	return cleared
}

// Reset empties every cell.
func (b *Board) Reset() {
	for y := range b.cells {
		clear(b.cells[y])
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := NewBoard(b.rows, b.cols)
	for y := range b.cells {
		copy(out.cells[y], b.cells[y])
	}
	return out
}

// Cells returns a copy of the grid, row-major, top row first.
func (b *Board) Cells() [][]core.Color {
	return b.Clone().cells
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// removeRow drops row y and inserts an empty row at the top, reusing the
// removed row's storage.
func (b *Board) removeRow(y int) {
	removed := b.cells[y]
	copy(b.cells[1:y+1], b.cells[:y])
	clear(removed)
	b.cells[0] = removed
}
