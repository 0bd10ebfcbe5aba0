package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Side panel geometry, in screen cells.
const (
	panelWidth  = 14
	panelHeight = 20
	previewRows = 4
)

// Render draws the current frame: the bordered playfield, the falling piece,
// the side panel and any state overlay. It only reads session state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.session.Snapshot()
	board := g.boardRect(dst)

	g.renderBoard(dst, board, snap)
	g.renderPanel(dst, core.NewRect(board.Right()+1, board.Y, panelWidth, panelHeight), snap)

	switch snap.State {
	case StateIdle:
		g.renderOverlay(dst, board, core.ColorBrightWhite, "TETRIS", "", "Press Enter", "to start")
	case StatePaused:
		g.renderOverlay(dst, board, core.ColorBrightYellow, "PAUSED", "", "Press P", "to resume")
	case StateGameOver:
		lines := []string{"GAME OVER", "", fmt.Sprintf("Score: %d", snap.Score)}
		if snap.NewHighScore {
			lines = append(lines, "New high score!")
		}
		lines = append(lines, "", "Enter: restart")
		g.renderOverlay(dst, board, core.ColorRed, lines...)
	}
}

// boardRect centers the playfield plus panel on the screen and returns the
// bordered playfield rectangle.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	w := g.rules.Cols*2 + 2
	h := g.rules.Rows + 2
	total := w + 1 + panelWidth
	x := max(0, (dst.Width()-total)/2)
	y := max(0, (dst.Height()-max(h, panelHeight))/2)
	return core.NewRect(x, y, w, h)
}

func (g *Game) renderBoard(dst *core.Screen, r core.Rect, snap Snapshot) {
	dst.DrawBox(r, core.ColorGray)
	in := r.Inner()

	for y, row := range snap.Board {
		for x, c := range row {
			px, py := in.X+x*2, in.Y+y
			if c.IsEmpty() {
				dst.SetColor(px, py, ' ', core.ColorDefault)
				dst.SetColor(px+1, py, '.', core.ColorGray)
				continue
			}
			drawBlock(dst, px, py, c)
		}
	}

	if !snap.HasPiece() {
		return
	}
	for _, p := range snap.Current.Cells() {
		if p.Y < 0 {
			continue
		}
		drawBlock(dst, in.X+p.X*2, in.Y+p.Y, snap.Current.Color)
	}
}

func (g *Game) renderPanel(dst *core.Screen, r core.Rect, snap Snapshot) {
	preview := core.NewRect(r.X, r.Y, r.W, previewRows+2)
	dst.DrawBox(preview, core.ColorGray)
	dst.DrawTextColor(preview.X+2, preview.Y, " NEXT ", core.ColorWhite)
	if snap.HasPiece() {
		drawPreview(dst, preview.Inner(), snap.Next)
	}

	y := preview.Bottom() + 1
	stats := []struct {
		label string
		value int
		color core.Color
	}{
		{"SCORE", snap.Score, core.ColorBrightWhite},
		{"HIGH", snap.HighScore, core.ColorBrightYellow},
		{"LEVEL", snap.Level, core.ColorCyan},
		{"LINES", snap.Lines, core.ColorGreen},
	}
	for _, s := range stats {
		dst.DrawTextColor(r.X+1, y, s.label, core.ColorGray)
		dst.DrawTextColor(r.X+1, y+1, fmt.Sprintf("%d", s.value), s.color)
		y += 3
	}

	if g.flash != "" {
		dst.DrawTextCentered(core.NewRect(r.X, y, r.W, 1), y, g.flash, core.ColorBrightYellow)
	}
}

// drawPreview centers the occupied cells of p inside r.
func drawPreview(dst *core.Screen, r core.Rect, p Piece) {
	cells := p.Cells()
	if len(cells) == 0 {
		return
	}
	minX, minY := cells[0].X, cells[0].Y
	maxX, maxY := minX, minY
	for _, c := range cells[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	w := (maxX - minX + 1) * 2
	h := maxY - minY + 1
	ox := r.X + (r.W-w)/2
	oy := r.Y + (r.H-h)/2
	for _, c := range cells {
		drawBlock(dst, ox+(c.X-minX)*2, oy+(c.Y-minY), p.Color)
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetColor(x, y, '█', c)
	dst.SetColor(x+1, y, '█', c)
}

// renderOverlay draws a bordered message box across the middle of r.
func (g *Game) renderOverlay(dst *core.Screen, r core.Rect, c core.Color, lines ...string) {
	h := len(lines) + 2
	box := core.NewRect(r.X, r.Y+(r.H-h)/2, r.W, h)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, line := range lines {
		dst.DrawTextCentered(box, box.Y+1+i, line, c)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.MinSize()
	full := core.NewRect(0, 0, dst.Width(), dst.Height())
	mid := dst.Height() / 2
	dst.DrawTextCentered(full, mid-1, "Window too small", core.ColorRed)
	dst.DrawTextCentered(full, mid+1, fmt.Sprintf("Need %dx%d", w, h), core.ColorGray)
}
