package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func shapeFrom(rows ...string) [][]bool {
	out := make([][]bool, len(rows))
	for y, row := range rows {
		out[y] = make([]bool, len(row))
		for x, ch := range row {
			out[y][x] = ch == '#'
		}
	}
	return out
}

func TestShapesHaveFourCells(t *testing.T) {
	for _, pt := range AllPieceTypes() {
		t.Run(pt.String(), func(t *testing.T) {
			p := NewPiece(pt, DefaultCols)
			assert.Len(t, p.Cells(), 4)
			assert.False(t, p.Color.IsEmpty())
		})
	}
}

func TestShapeOfReturnsCopy(t *testing.T) {
	a := ShapeOf(PieceT)
	a[0][0] = true

	assert.False(t, ShapeOf(PieceT)[0][0])
}

func TestSpawnX(t *testing.T) {
	tests := []struct {
		piece PieceType
		want  int
	}{
		{PieceI, 3},
		{PieceO, 4},
		{PieceT, 3},
		{PieceZ, 3},
	}
	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			p := NewPiece(tt.piece, 10)
			assert.Equal(t, tt.want, p.X)
			assert.Equal(t, 0, p.Y)
		})
	}
}

func TestRotateCW(t *testing.T) {
	got := RotateCW(shapeFrom(
		".#.",
		"###",
		"...",
	))
	assert.Equal(t, shapeFrom(
		".#.",
		".##",
		".#.",
	), got)

	// Non-square matrices swap dimensions.
	got = RotateCW(shapeFrom(
		"##.",
		"#..",
	))
	assert.Equal(t, shapeFrom(
		"##",
		".#",
		"..",
	), got)
}

func TestFourRotationsAreIdentity(t *testing.T) {
	for _, pt := range AllPieceTypes() {
		t.Run(pt.String(), func(t *testing.T) {
			p := NewPiece(pt, DefaultCols)
			r := p
			for i := 0; i < 4; i++ {
				r = r.Rotated()
			}
			assert.Equal(t, p.Shape, r.Shape)
		})
	}
}

func TestRotatedDoesNotModifyOriginal(t *testing.T) {
	p := NewPiece(PieceL, DefaultCols)
	before := p.Clone()

	_ = p.Rotated()
	_ = p.Translate(2, 3)

	assert.Equal(t, before, p)
}

func TestPieceCells(t *testing.T) {
	p := NewPiece(PieceO, 10).Translate(0, 3)

	require.Len(t, p.Cells(), 4)
	assert.ElementsMatch(t, []core.Point{
		{X: 4, Y: 3}, {X: 5, Y: 3},
		{X: 4, Y: 4}, {X: 5, Y: 4},
	}, p.Cells())
}
