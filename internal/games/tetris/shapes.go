// Package tetris implements the falling-block puzzle: the piece catalog, the
// playfield, collision and rotation rules, and the session state machine that
// drives spawning, locking, line clears and scoring. The package performs no
// scheduling and no I/O; the platform calls Game.Step at a fixed tick rate.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// PieceType identifies one of the seven tetrominoes.
type PieceType int

const (
	PieceI PieceType = iota
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceT
	PieceZ
)

// pieceTypes lists the catalog in a stable order for random selection.
var pieceTypes = [...]PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceT, PieceZ}

type shapeDef struct {
	rows  []string // '#' marks an occupied cell
	color core.Color
}

// catalog holds the spawn orientation of every piece. The I piece sits in a
// 4x4 box with padding so its rotations keep the same bounding box.
var catalog = map[PieceType]shapeDef{
	PieceI: {rows: []string{
		"....",
		"####",
		"....",
		"....",
	}, color: core.ColorCyan},
	PieceJ: {rows: []string{
		"#..",
		"###",
		"...",
	}, color: core.ColorBlue},
	PieceL: {rows: []string{
		"..#",
		"###",
		"...",
	}, color: core.ColorOrange},
	PieceO: {rows: []string{
		"##",
		"##",
	}, color: core.ColorYellow},
	PieceS: {rows: []string{
		".##",
		"##.",
		"...",
	}, color: core.ColorGreen},
	PieceT: {rows: []string{
		".#.",
		"###",
		"...",
	}, color: core.ColorMagenta},
	PieceZ: {rows: []string{
		"##.",
		".##",
		"...",
	}, color: core.ColorRed},
}

// AllPieceTypes returns the seven piece types in catalog order.
func AllPieceTypes() []PieceType {
	out := make([]PieceType, len(pieceTypes))
	copy(out, pieceTypes[:])
	return out
}

// ShapeOf returns a fresh copy of the spawn matrix for t.
// Unknown types yield nil.
func ShapeOf(t PieceType) [][]bool {
	def, ok := catalog[t]
	if !ok {
		return nil
	}
	shape := make([][]bool, len(def.rows))
	for y, row := range def.rows {
		shape[y] = make([]bool, len(row))
		for x, ch := range row {
			shape[y][x] = ch == '#'
		}
	}
	return shape
}

// ColorOf returns the fixed color of t.
func ColorOf(t PieceType) core.Color {
	return catalog[t].color
}

// SpawnX returns the horizontally centered anchor column for a matrix of the
// given width: floor(cols/2) - ceil(width/2).
func SpawnX(cols, width int) int {
	return cols/2 - (width+1)/2
}

// String returns the single-letter name of the piece.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceZ:
		return "Z"
	default:
		return "?"
	}
}
