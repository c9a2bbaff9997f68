package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BlockChar  = '█'
)

// Minimum screen size the field can be drawn in.
const (
	minScreenW = 40
	minScreenH = 12
)

// viewport maps field units onto the screen cells inside the border.
type viewport struct {
	x0, y0 int     // Top-left inner cell
	w, h   int     // Inner size in cells
	sx, sy float64 // Cells per field unit
}

func (g *Game) viewport(dst *core.Screen) viewport {
	// Row 0 is the HUD, the field box takes the rest.
	box := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	v := viewport{x0: box.X + 1, y0: box.Y + 1, w: box.W - 2, h: box.H - 2}
	v.sx = float64(v.w) / g.cfg.Field.Width
	v.sy = float64(v.h) / g.cfg.Field.Height
	return v
}

func (v viewport) cellX(fx float64) int {
	return v.x0 + core.Clamp(int(math.Floor(fx*v.sx)), 0, v.w-1)
}

func (v viewport) cellY(fy float64) int {
	return v.y0 + core.Clamp(int(math.Floor(fy*v.sy)), 0, v.h-1)
}

// span returns the cell columns covered by [left, right), at least one.
// The end is exclusive so shapes a gap apart never share a cell.
func (v viewport) span(left, right float64) (int, int) {
	from := v.cellX(left)
	to := max(v.cellX(right)-1, from)
	return from, to
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := g.viewport(dst)
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-1), core.ColorGray)

	g.renderHUD(dst)
	g.renderBlocks(dst, v)
	g.renderPaddle(dst, v)
	g.renderBall(dst, v)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives and remaining blocks on row 0.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorYellow)

	lives := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextColor((dst.Width()-len(lives))/2, 0, lives, core.ColorRed)

	blocks := fmt.Sprintf("Blocks: %d/%d", g.grid.AliveCount(), g.grid.Total())
	dst.DrawTextColor(dst.Width()-len(blocks)-1, 0, blocks, core.ColorCyan)
}

func (g *Game) renderBlocks(dst *core.Screen, v viewport) {
	g.grid.EachAlive(func(c Cell, b Block) {
		color := core.ColorBlue
		if c.Row%2 == 1 {
			color = core.ColorBrightBlue
		}
		from, to := v.span(b.Rect.Left(), b.Rect.Right())
		y := v.cellY(b.Rect.Top())
		for x := from; x <= to; x++ {
			dst.SetColor(x, y, BlockChar, color)
		}
	})
}

func (g *Game) renderPaddle(dst *core.Screen, v viewport) {
	from, to := v.span(g.paddle.Rect.Left(), g.paddle.Rect.Right())
	y := v.cellY(g.paddle.Rect.Top())
	for x := from; x <= to; x++ {
		dst.SetColor(x, y, PaddleChar, core.ColorRed)
	}
}

func (g *Game) renderBall(dst *core.Screen, v viewport) {
	// A ball below the field has been lost; nothing to draw.
	if g.ball.Pos.Y > g.cfg.Field.Height {
		return
	}
	dst.SetColor(v.cellX(g.ball.Pos.X), v.cellY(g.ball.Pos.Y), BallChar, core.ColorWhite)
}

// renderOverlay draws the end-of-game message.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase {
	case PhaseLost:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d", g.score))
	case PhaseCleared:
		g.drawCenteredBox(dst, "FIELD CLEARED", fmt.Sprintf("Final Score: %d", g.score))
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
