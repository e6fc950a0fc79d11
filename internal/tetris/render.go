package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Each board cell is drawn two runes wide so the well looks square in a
// terminal's tall character grid.
const (
	cellWidth    = 2
	sidebarWidth = 18

	blockRune = '█'
	ghostRune = '░'
	flashRune = '▓'
)

func (g *Game) wellWidth() int {
	return g.session.Board().Width()*cellWidth + 2
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	board := g.session.Board()
	wellW := g.wellWidth()
	wellX := (dst.Width() - (wellW + sidebarWidth + 2)) / 2
	if wellX < 0 {
		wellX = 0
	}
	wellY := g.hudHeight

	dst.DrawBox(core.NewRect(wellX, wellY, wellW, board.Height()+2))
	g.renderBoard(dst, wellX+1, wellY+1)
	g.renderGhost(dst, wellX+1, wellY+1)
	g.renderCurrent(dst, wellX+1, wellY+1)
	g.renderSidebar(dst, wellX+wellW+2, wellY)

	switch g.session.Phase() {
	case PhaseNotStarted:
		g.renderOverlay(dst,
			fmt.Sprintf("Start level: %d", g.session.StartLevel()),
			"+/- to change, Enter to play")
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case PhaseGameOver:
		g.renderOverlay(dst,
			fmt.Sprintf("Game Over! Score: %d", g.session.Score()),
			"Press R to restart")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris | Score: %d  Level: %d  Lines: %d",
		g.session.Score(), g.session.Level(), g.session.Lines())
	if g.muted {
		hud += "  [muted]"
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the settled cells, flashing freshly cleared rows.
func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	board := g.session.Board()
	flash := make(map[int]bool, len(g.flashRows))
	for _, y := range g.flashRows {
		flash[y] = true
	}

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			switch {
			case flash[y]:
				g.drawCell(dst, ox, oy, x, y, flashRune, core.ColorBrightWhite)
			case board.At(x, y) != KindNone:
				g.drawCell(dst, ox, oy, x, y, blockRune, board.At(x, y).Color())
			}
		}
	}
}

// renderGhost previews where the falling piece would land.
func (g *Game) renderGhost(dst *core.Screen, ox, oy int) {
	if !g.gameCfg.Gameplay.GhostPiece {
		return
	}
	piece, pos, ok := g.session.Current()
	if !ok {
		return
	}
	ghost, ok := g.session.GhostPosition()
	if !ok || ghost == pos {
		return
	}
	for r, row := range piece.Shape {
		for c, occupied := range row {
			if occupied {
				g.drawCell(dst, ox, oy, ghost.X+c, ghost.Y+r, ghostRune, core.ColorGray)
			}
		}
	}
}

// renderCurrent draws the falling piece over the board.
func (g *Game) renderCurrent(dst *core.Screen, ox, oy int) {
	piece, pos, ok := g.session.Current()
	if !ok {
		return
	}
	for r, row := range piece.Shape {
		for c, occupied := range row {
			if occupied {
				g.drawCell(dst, ox, oy, pos.X+c, pos.Y+r, blockRune, piece.Color())
			}
		}
	}
}

// drawCell paints one board cell (cellWidth runes). Cells above the top of
// the well (y < 0) are clipped.
func (g *Game) drawCell(dst *core.Screen, ox, oy, x, y int, r rune, color core.Color) {
	if y < 0 || y >= g.session.Board().Height() {
		return
	}
	for i := 0; i < cellWidth; i++ {
		dst.SetColored(ox+x*cellWidth+i, oy+y, r, color)
	}
}

// renderSidebar draws the next-piece preview and counters.
func (g *Game) renderSidebar(dst *core.Screen, sx, sy int) {
	dst.DrawText(sx, sy, "Next")
	previewBox := core.NewRect(sx, sy+1, 4*cellWidth+2, 6)
	dst.DrawBox(previewBox)

	if next := g.session.NextKind(); next.Valid() {
		piece := NewPiece(next)
		for r, row := range piece.Shape {
			for c, occupied := range row {
				if occupied {
					for i := 0; i < cellWidth; i++ {
						dst.SetColored(sx+1+c*cellWidth+i, sy+2+r, blockRune, piece.Color())
					}
				}
			}
		}
	}

	y := sy + 8
	dst.DrawText(sx, y, fmt.Sprintf("Score  %d", g.session.Score()))
	dst.DrawText(sx, y+1, fmt.Sprintf("Level  %d", g.session.Level()))
	dst.DrawText(sx, y+2, fmt.Sprintf("Lines  %d", g.session.Lines()))

	dst.DrawTextColored(sx, y+4, "←/→ move", core.ColorGray)
	dst.DrawTextColored(sx, y+5, "↑ rotate", core.ColorGray)
	dst.DrawTextColored(sx, y+6, "↓ soft drop", core.ColorGray)
	dst.DrawTextColored(sx, y+7, "space hard drop", core.ColorGray)
	dst.DrawTextColored(sx, y+8, "p pause  q quit", core.ColorGray)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
