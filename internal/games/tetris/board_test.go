package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func fillRow(b *Board, y int, c core.Color, skip ...int) {
	for x := 0; x < b.Cols(); x++ {
		hole := false
		for _, s := range skip {
			if s == x {
				hole = true
			}
		}
		if !hole {
			b.LockCell(x, y, c)
		}
	}
}

func TestBoardIsOccupiedBounds(t *testing.T) {
	b := NewBoard(20, 10)
	b.LockCell(3, 5, core.ColorRed)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"left of board", -1, 5, true},
		{"right of board", 10, 5, true},
		{"floor", 0, 20, true},
		{"below floor", 0, 25, true},
		{"above top", 0, -1, false},
		{"far above top", 9, -4, false},
		{"empty cell", 4, 5, false},
		{"locked cell", 3, 5, true},
		{"above top outside columns", -1, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsOccupied(tt.x, tt.y))
		})
	}
}

func TestBoardLockCellSkipsOutOfRange(t *testing.T) {
	b := NewBoard(4, 4)
	b.LockCell(1, -1, core.ColorRed)
	b.LockCell(-1, 1, core.ColorRed)
	b.LockCell(4, 1, core.ColorRed)
	b.LockCell(1, 4, core.ColorRed)

	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			assert.True(t, b.Cell(x, y).IsEmpty(), "cell (%d,%d)", x, y)
		}
	}
}

func TestBoardFits(t *testing.T) {
	b := NewBoard(20, 10)
	o := NewPiece(PieceO, 10)

	assert.True(t, b.Fits(o))
	assert.False(t, b.Fits(o.Translate(-5, 0)), "outside left")
	assert.False(t, b.Fits(o.Translate(5, 0)), "outside right")
	assert.False(t, b.Fits(o.Translate(0, 19)), "through floor")
	assert.True(t, b.Fits(o.Translate(0, 18)), "resting on floor")
	assert.True(t, b.Fits(o.Translate(0, -3)), "above the top")

	b.LockCell(4, 10, core.ColorBlue)
	assert.False(t, b.Fits(o.Translate(0, 9)))
	assert.True(t, b.Fits(o.Translate(0, 8)))
}

func TestBoardClearFullRowsFullEmptyFull(t *testing.T) {
	b := NewBoard(4, 3)
	b.LockCell(0, 0, core.ColorGreen) // marker above the pattern
	fillRow(b, 1, core.ColorRed)
	fillRow(b, 3, core.ColorRed)

	cleared := b.ClearFullRows()

	require.Equal(t, 2, cleared)
	assert.Equal(t, 4, b.Rows())
	assert.Equal(t, [][]core.Color{
		{0, 0, 0},
		{0, 0, 0},
		{core.ColorGreen, 0, 0},
		{0, 0, 0},
	}, b.Cells())
}

func TestBoardClearFullRowsAdjacent(t *testing.T) {
	b := NewBoard(6, 4)
	b.LockCell(2, 1, core.ColorCyan)
	for y := 2; y < 6; y++ {
		fillRow(b, y, core.ColorYellow)
	}

	assert.Equal(t, 4, b.ClearFullRows())
	assert.Equal(t, core.ColorCyan, b.Cell(2, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 4; x++ {
			assert.True(t, b.Cell(x, y).IsEmpty())
		}
	}
}

func TestBoardClearFullRowsNone(t *testing.T) {
	b := NewBoard(4, 4)
	fillRow(b, 3, core.ColorRed, 2)
	before := b.Cells()

	assert.Equal(t, 0, b.ClearFullRows())
	assert.Equal(t, before, b.Cells())
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard(4, 4)
	b.LockCell(1, 1, core.ColorRed)

	c := b.Clone()
	c.LockCell(2, 2, core.ColorBlue)
	b.Reset()

	assert.Equal(t, core.ColorRed, c.Cell(1, 1))
	assert.Equal(t, core.ColorBlue, c.Cell(2, 2))
	assert.True(t, b.Cell(1, 1).IsEmpty())
	assert.True(t, b.Cell(2, 2).IsEmpty())
}
