package shisen

import (
	"fmt"

	platformcore "github.com/taotao54321/shisen-tui/internal/core"
	"github.com/taotao54321/shisen-tui/internal/games/shisen/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.board == nil {
		return
	}

	g.renderBoard(dst)
	if g.pathTicks > 0 {
		g.renderPath(dst, g.lastMove)
	}

	switch {
	case g.won:
		g.renderOverlay(dst, "Cleared!", "Time "+formatDuration(g.ElapsedSeconds())+" | R: new board")
	case g.gameOver:
		g.renderOverlay(dst, "Stuck...", "No moves left | R: new board")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.title
	if g.board != nil {
		hud = fmt.Sprintf(" %s | Pairs left: %d | Removed: %d | Time: %s",
			g.title, g.PairsLeft(), g.pairsRemoved, formatDuration(g.ElapsedSeconds()))
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)

	dst.DrawHLine(0, 1, dst.Width(), '─', platformcore.ColorGray)

	controls := " ←↑↓→: Move | Space: Select | X: Deselect | T: Hint | P: Pause | R: Restart"
	dst.DrawTextWithColor(0, 2, controls, platformcore.ColorGray)

	dst.DrawHLine(0, 3, dst.Width(), '─', platformcore.ColorGray)
}

// tileOrigin returns the screen position of a board square's cell.
func (g *Game) tileOrigin(sq core.Square) (int, int) {
	return g.gridOffsetX + sq.C*g.cellW, g.gridOffsetY + sq.R*g.cellH
}

// renderBoard draws the tiles, the cursor and the current highlights.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	hinting := g.hintTicks > 0

	for _, sq := range g.board.SquaresInner() {
		x, y := g.tileOrigin(sq)
		cell := g.board.At(sq)

		if cell.Tile {
			face := faceFor(cell.Kind)
			labelColor := face.color
			frameColor := platformcore.ColorGray

			if hinting && (sq == g.hint.Src() || sq == g.hint.Dst()) {
				labelColor = platformcore.ColorBrightCyan
				frameColor = platformcore.ColorBrightCyan
			}
			if g.hasSelected && sq == g.selected {
				labelColor = platformcore.ColorBrightYellow
				frameColor = platformcore.ColorBrightYellow
			}

			dst.SetWithColor(x, y, '[', frameColor)
			dst.DrawTextWithColor(x+1, y, face.label, labelColor)
			dst.SetWithColor(x+3, y, ']', frameColor)
		} else {
			dst.SetWithColor(x+1, y, '·', platformcore.ColorGray)
		}

		// Cursor brackets overwrite the tile frame.
		if sq == g.cursor {
			dst.SetWithColor(x, y, '<', platformcore.ColorBrightYellow)
			dst.SetWithColor(x+3, y, '>', platformcore.ColorBrightYellow)
		}
	}
}

// renderPath draws the connecting line of the last removed pair.
// Segments run through cell centers; bends are marked with a cross.
func (g *Game) renderPath(dst *platformcore.Screen, mv core.Move) {
	const pathColor = platformcore.ColorOrange

	path := mv.Path()
	for i := 1; i < len(path); i++ {
		x1, y1 := g.cellCenter(path[i-1])
		x2, y2 := g.cellCenter(path[i])

		if x1 == x2 {
			y := platformcore.Min(y1, y2)
			dst.DrawVLine(x1, y, platformcore.Abs(y2-y1)+1, '│', pathColor)
		} else {
			x := platformcore.Min(x1, x2)
			dst.DrawHLine(x, y1, platformcore.Abs(x2-x1)+1, '─', pathColor)
		}
	}
	for _, sq := range path[1 : len(path)-1] {
		x, y := g.cellCenter(sq)
		dst.SetWithColor(x, y, '┼', pathColor)
	}
	for _, sq := range []core.Square{mv.Src(), mv.Dst()} {
		x, y := g.cellCenter(sq)
		dst.SetWithColor(x, y, '●', pathColor)
	}
}

// cellCenter returns the screen position of a square's center point.
// Valid for border squares too, so paths can run outside the tiles.
func (g *Game) cellCenter(sq core.Square) (int, int) {
	x, y := g.tileOrigin(sq)
	return x + g.cellW/2, y
}

// renderOverlay draws a centered boxed message over the board.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := platformcore.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := platformcore.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// formatDuration renders whole seconds as mm:ss.
func formatDuration(secs int) string {
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
