package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tile2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)

	boardW = Size*cellWidth + 1
	boardH = Size*cellHeight + 1
	boardY = 3
)

// ranker is implemented by recorders that can place an entry on the
// leaderboard.
type ranker interface {
	Rank(id string) int
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.engine == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX)
	g.renderOverlays(dst, boardX)

	dst.DrawTextColor((g.screenW-len(g.Controls()))/2, g.screenH-1, g.Controls(), core.ColorGray)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title and the score boxes.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "2048"
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorTitle)

	score := fmt.Sprintf("SCORE %d", g.engine.Score())
	dst.DrawText(boardX, 1, score)

	best := fmt.Sprintf("BEST %d", g.engine.BestScore())
	bestX := boardX + boardW - len(best)
	if bestX <= boardX+len(score) {
		bestX = boardX + len(score) + 1
	}
	dst.DrawText(bestX, 1, best)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX int) {
	for y := range Size + 1 {
		for x := range Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetColor(px, py, junction(x, y), core.ColorFrame)

			if x < Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorFrame)
				}
			}
			if y < Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorFrame)
				}
			}
		}
	}

	grid := g.engine.Grid()
	for y := range Size {
		for x := range Size {
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			val := grid.At(x, y)
			if val == 0 {
				dst.SetColor(cellX+(cellWidth-1)/2, cellY, '·', core.ColorGray)
				continue
			}

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, core.TileColor(val))
		}
	}
}

// junction picks the box-drawing rune for a grid line crossing.
func junction(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == Size:
		return '┐'
	case y == Size && x == 0:
		return '└'
	case y == Size && x == Size:
		return '┘'
	case y == 0:
		return '┬'
	case y == Size:
		return '┴'
	case x == 0:
		return '├'
	case x == Size:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.engine.Status() == StatusGameOver:
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d", g.engine.Score())}
		if rank := g.rank(); rank > 0 {
			lines = append(lines, fmt.Sprintf("Leaderboard #%d", rank))
		}
		lines = append(lines, "R to play again")
		g.drawOverlay(dst, centerX, centerY, lines...)
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "P to resume")
	case g.winOverlay:
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!",
			fmt.Sprintf("%d reached", g.engine.WinTile()), "Enter: keep going", "R: new game")
	}
}

// rank returns the leaderboard position of the finished game, 0 if unknown.
func (g *Game) rank() int {
	entry, ok := g.engine.LastEntry()
	if !ok {
		return 0
	}
	r, ok := g.recorder.(ranker)
	if !ok {
		return 0
	}
	return r.Rank(entry.ID)
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorFrame)

	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorTitle
		}
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, c)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD P R B Q"
}
