package blocks

import (
	"fmt"

	"github.com/vovakirdan/tetra/internal/core"
	"github.com/vovakirdan/tetra/internal/tetris"
)

const (
	cellWidth  = 2  // Terminal columns per playfield cell
	panelWidth = 14 // Side panel with preview and counters
	panelGap   = 2
	hudHeight  = 1
)

// shapeColors maps each tetromino to its display color.
var shapeColors = map[tetris.Shape]core.Color{
	tetris.ShapeI: core.ColorCyan,
	tetris.ShapeJ: core.ColorBlue,
	tetris.ShapeL: core.ColorOrange,
	tetris.ShapeO: core.ColorYellow,
	tetris.ShapeS: core.ColorGreen,
	tetris.ShapeT: core.ColorMagenta,
	tetris.ShapeZ: core.ColorRed,
}

// boardSize returns the on-screen size of the bordered playfield.
func (g *Game) boardSize() (w, h int) {
	return g.engine.Columns()*cellWidth + 2, g.engine.Rows() + 2
}

// checkScreenSize checks if the screen is large enough for the board and panel.
func (g *Game) checkScreenSize() {
	boardW, boardH := g.boardSize()
	minW := boardW + panelGap + panelWidth
	minH := boardH + hudHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	layout := core.NewRect(0, 0, g.screenW, g.screenH).CenterIn(boardW+panelGap+panelWidth, boardH+hudHeight)
	board := core.NewRect(layout.X, layout.Y+hudHeight, boardW, boardH)

	dst.DrawTextColor(board.X, layout.Y, g.Title(), core.ColorBrightWhite)
	g.renderBoard(dst, board)
	g.renderPanel(dst, board.Right()+panelGap, board.Y)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	boardW, boardH := g.boardSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", boardW+panelGap+panelWidth, boardH+hudHeight))
}

// renderBoard draws the border, locked cells, ghost and active piece.
// Cells above the top edge are never drawn.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBox(board)

	originX, originY := board.X+1, board.Y+1
	put := func(row, col int, text string, color core.Color) {
		if row < 0 {
			return
		}
		dst.DrawTextColor(originX+col*cellWidth, originY+row, text, color)
	}

	for r := range g.engine.Rows() {
		for c := range g.engine.Columns() {
			if s := g.engine.Cell(r, c); s != tetris.ShapeNone {
				put(r, c, "██", shapeColors[s])
			} else {
				put(r, c, " .", core.ColorDim)
			}
		}
	}

	if g.cfg.Display.Ghost && !g.engine.IsGameOver() {
		for _, p := range g.engine.GhostCells() {
			put(p.Row, p.Column, "░░", core.ColorGray)
		}
	}

	// A blocked spawn overlaps locked cells; the final board shows only the stack
	if g.engine.IsGameOver() {
		return
	}
	active := g.engine.Active()
	for _, p := range active.Cells() {
		put(p.Row, p.Column, "██", shapeColors[active.Shape])
	}
}

// renderPanel draws the next-piece preview and counters.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	if g.cfg.Display.Preview {
		dst.DrawText(x, y, "NEXT")
		next := g.engine.Next()
		m := tetris.ShapeMatrix(next)
		for r, row := range m {
			for c, filled := range row {
				if filled {
					dst.DrawTextColor(x+c*cellWidth, y+1+r, "██", shapeColors[next])
				}
			}
		}
		y += 6
	}

	stats := g.engine.Stats()
	dst.DrawText(x, y, fmt.Sprintf("Lines  %d", stats.Lines))
	dst.DrawText(x, y+1, fmt.Sprintf("Pieces %d", stats.Pieces))
	dst.DrawTextColor(x, y+3, fmt.Sprintf("Tick %d", g.tick), core.ColorDim)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX, centerY := board.Center()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "P to resume")
		return
	}

	if g.engine.IsGameOver() {
		lines := fmt.Sprintf("Lines: %d", g.engine.Stats().Lines)
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", lines, "R to restart")
	}
}

// drawOverlay draws a boxed block of centered lines.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(0, 0, maxLen+4, len(lines)+2)
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→: Move | ↑: Rotate | ↓: Soft drop | Space: Hard drop | P: Pause | Q: Quit"
}
