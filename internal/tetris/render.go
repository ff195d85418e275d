package tetris

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/termtris/internal/core"
)

const (
	blockRune = '█'
	emptyRune = '·'
	panelW    = 14 // minimum width of the side panel
)

// cellSize returns how many terminal columns and rows one board cell covers.
// A cell is twice as wide as it is tall so blocks look square.
func (g *Game) cellSize() (w, h int) {
	return 2 * g.scale, g.scale
}

// boardSize returns the framed board dimensions in terminal cells.
func (g *Game) boardSize() (w, h int) {
	cw, ch := g.cellSize()
	return g.rules.Width*cw + 2, g.rules.Height*ch + 2
}

func (g *Game) panelWidth() int {
	cw, _ := g.cellSize()
	return core.Max(panelW, 4*cw+2)
}

// layoutSize is the minimum screen that fits title, board, panel and hint.
func (g *Game) layoutSize() (w, h int) {
	bw, bh := g.boardSize()
	return bw + 2 + g.panelWidth(), bh + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.engine.Snapshot()
	totalW, totalH := g.layoutSize()
	boardW, boardH := g.boardSize()
	originX := core.Max((g.screenW-totalW)/2, 0)
	originY := core.Max((g.screenH-totalH)/2, 0)

	board := core.NewRect(originX, originY+1, boardW, boardH)

	title := "TETRIS"
	dst.DrawTextWithColor(board.X+(boardW-len(title))/2, originY, title, core.ColorBrightWhite)

	g.renderBoard(dst, board, snap)
	g.renderPanel(dst, board.Right()+2, board.Y, snap)
	dst.DrawTextWithColor(originX, board.Bottom(), g.Controls(), core.ColorGray)

	if snap.GameOver && !snap.Quit {
		g.renderGameOver(dst, board, snap)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.layoutSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderBoard draws the frame, locked cells and the active piece.
// Board row 0 is drawn at the bottom of the frame.
func (g *Game) renderBoard(dst *core.Screen, frame core.Rect, snap Snapshot) {
	dst.DrawBox(frame, core.ColorWhite)

	cw, ch := g.cellSize()
	inner := frame.Inset(1)
	for row := 0; row < snap.Height; row++ {
		y := inner.Y + (snap.Height-1-row)*ch
		for col := 0; col < snap.Width; col++ {
			x := inner.X + col*cw
			k := snap.KindAt(col, row)
			if k == KindNone {
				dst.SetWithColor(x, y+ch-1, emptyRune, core.ColorGray)
				continue
			}
			dst.DrawRect(core.NewRect(x, y, cw, ch), blockRune, k.Color())
		}
	}
}

// renderPanel draws score, lines, level and the next-piece preview.
func (g *Game) renderPanel(dst *core.Screen, x, y int, snap Snapshot) {
	stats := []struct {
		label string
		value int
	}{
		{"Score", snap.Score},
		{"Lines", snap.Lines},
		{"Level", snap.Level},
	}
	for i, s := range stats {
		dst.DrawTextWithColor(x, y+i*2, s.label, core.ColorGray)
		dst.DrawTextWithColor(x, y+i*2+1, fmt.Sprintf("%d", s.value), core.ColorBrightWhite)
	}

	if !g.cfg.Pieces.Preview || !snap.Next.Valid() {
		return
	}
	py := y + len(stats)*2 + 1
	dst.DrawTextWithColor(x, py, "Next", core.ColorGray)
	g.renderPreview(dst, x, py+1, snap.Next)
}

// renderPreview draws a kind in spawn orientation, shifted to its top row.
func (g *Game) renderPreview(dst *core.Screen, x, y int, k Kind) {
	cw, ch := g.cellSize()
	shape := shapes[k][0]
	top := shape[0].dy
	for _, o := range shape {
		top = core.Min(top, o.dy)
	}
	for _, o := range shape {
		dst.DrawRect(core.NewRect(x+o.dx*cw, y+(o.dy-top)*ch, cw, ch), blockRune, k.Color())
	}
}

// renderGameOver draws the final overlay on top of the board.
func (g *Game) renderGameOver(dst *core.Screen, board core.Rect, snap Snapshot) {
	lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", snap.Score)}
	if g.saveErr != "" {
		lines = append(lines, g.saveErr)
	}
	lines = append(lines, "R: restart", "any key: quit")
	g.drawOverlay(dst, board.X+board.W/2, board.Y+board.H/2, lines...)
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawTextWithColor(x, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
