package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is a tetromino with an orientation and a top-left anchor in board
// coordinates. Pieces are values: transforms return new pieces and never
// modify the receiver's shape in place.
type Piece struct {
	Type  PieceType
	Shape [][]bool
	X, Y  int
	Color core.Color
}

// NewPiece creates a piece of type t at the spawn position of a board with
// the given number of columns.
func NewPiece(t PieceType, cols int) Piece {
	shape := ShapeOf(t)
	width := 0
	if len(shape) > 0 {
		width = len(shape[0])
	}
	return Piece{
		Type:  t,
		Shape: shape,
		X:     SpawnX(cols, width),
		Y:     0,
		Color: ColorOf(t),
	}
}

// Width returns the number of columns of the shape matrix.
func (p Piece) Width() int {
	if len(p.Shape) == 0 {
		return 0
	}
	return len(p.Shape[0])
}

// Height returns the number of rows of the shape matrix.
func (p Piece) Height() int {
	return len(p.Shape)
}

// Translate returns a copy of p with the anchor shifted by (dx, dy).
func (p Piece) Translate(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of p rotated 90 degrees clockwise around its
// bounding box. The anchor is unchanged.
func (p Piece) Rotated() Piece {
	p.Shape = RotateCW(p.Shape)
	return p
}

// Cells returns the board coordinates of every occupied cell of p.
func (p Piece) Cells() []core.Point {
	cells := make([]core.Point, 0, 4)
	for y, row := range p.Shape {
		for x, filled := range row {
			if filled {
				cells = append(cells, core.Point{X: x, Y: y}.Add(p.X, p.Y))
			}
		}
	}
	return cells
}

// Clone returns a deep copy of p.
func (p Piece) Clone() Piece {
	p.Shape = cloneShape(p.Shape)
	return p
}

// RotateCW rotates an R×C matrix clockwise into a C×R matrix where
// result[x][R-1-y] = source[y][x].
func RotateCW(shape [][]bool) [][]bool {
	rows := len(shape)
	if rows == 0 {
		return nil
	}
	cols := len(shape[0])

	rotated := make([][]bool, cols)
	for x := range rotated {
		rotated[x] = make([]bool, rows)
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			rotated[x][rows-1-y] = shape[y][x]
		}
	}
	return rotated
}

func cloneShape(shape [][]bool) [][]bool {
	if shape == nil {
		return nil
	}
	out := make([][]bool, len(shape))
	for y, row := range shape {
		out[y] = make([]bool, len(row))
		copy(out[y], row)
	}
	return out
}
