// Package breakout implements a Breakout-style block breaker: a paddle, a
// bouncing ball and a fixed grid of blocks on a 1200x800 field.
package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Layout describes the block grid geometry in field units.
type Layout struct {
	Rows, Cols int
	BlockW     float64
	BlockH     float64
	MarginTop  float64
	MarginLeft float64
	RowGap     float64
	ColGap     float64
}

// ClassicLayout is the only block arrangement the game ships with.
var ClassicLayout = Layout{
	Rows:       6,
	Cols:       8,
	BlockW:     100,
	BlockH:     20,
	MarginTop:  50,
	MarginLeft: 130,
	RowGap:     10,
	ColGap:     20,
}

// Block is a single destructible block.
type Block struct {
	Rect  core.RectF
	Alive bool
}

// Cell addresses a block in the grid.
type Cell struct {
	Row, Col int
}

// Grid is a row-major arrangement of blocks. Blocks are only ever removed,
// and removal marks a block dead in place so indices never shift.
type Grid struct {
	layout Layout
	blocks [][]Block
	alive  int
}

// NewGrid lays blocks out left-to-right, top-to-bottom.
func NewGrid(layout Layout) *Grid {
	g := &Grid{
		layout: layout,
		blocks: make([][]Block, layout.Rows),
	}

	y := layout.MarginTop
	for row := range layout.Rows {
		g.blocks[row] = make([]Block, layout.Cols)
		x := layout.MarginLeft
		for col := range layout.Cols {
			g.blocks[row][col] = Block{
				Rect:  core.NewRectF(x, y, layout.BlockW, layout.BlockH),
				Alive: true,
			}
			x += layout.BlockW + layout.ColGap
		}
		y += layout.BlockH + layout.RowGap
	}

	g.alive = layout.Rows * layout.Cols
	return g
}

// Rows returns the number of block rows.
func (g *Grid) Rows() int { return g.layout.Rows }

// Cols returns the number of block columns.
func (g *Grid) Cols() int { return g.layout.Cols }

// AliveCount returns the number of blocks still standing.
func (g *Grid) AliveCount() int { return g.alive }

// Total returns the number of blocks the grid started with.
func (g *Grid) Total() int { return g.layout.Rows * g.layout.Cols }

// Block returns the block at (row, col).
func (g *Grid) Block(row, col int) (Block, bool) {
	if !g.inRange(row, col) {
		return Block{}, false
	}
	return g.blocks[row][col], true
}

// Remove destroys the block at (row, col). It returns false when the cell is
// out of range or already empty.
func (g *Grid) Remove(row, col int) bool {
	if !g.inRange(row, col) || !g.blocks[row][col].Alive {
		return false
	}
	g.blocks[row][col].Alive = false
	g.alive--
	return true
}

// ZoneBottom is the block-zone threshold: the bottom edge of the lowest row.
// It comes from the layout and does not move as blocks disappear.
func (g *Grid) ZoneBottom() float64 {
	if g.layout.Rows == 0 {
		return 0
	}
	lastTop := g.layout.MarginTop + float64(g.layout.Rows-1)*(g.layout.BlockH+g.layout.RowGap)
	return lastTop + g.layout.BlockH
}

// EachAlive calls fn for every standing block in row-major order.
func (g *Grid) EachAlive(fn func(c Cell, b Block)) {
	for row := range g.blocks {
		for col, b := range g.blocks[row] {
			if b.Alive {
				fn(Cell{Row: row, Col: col}, b)
			}
		}
	}
}

// Collide scans rows top to bottom and columns left to right for the first
// standing block the ball touches. That block is removed, the ball reflects
// off it, and the scan stops: at most one block falls per call.
func (g *Grid) Collide(ball *Ball) (Cell, bool) {
	for row := range g.blocks {
		for col := range g.blocks[row] {
			b := &g.blocks[row][col]
			if !b.Alive {
				continue
			}
			closest, hit := ball.Circle().TouchesRect(b.Rect)
			if !hit {
				continue
			}
			g.Remove(row, col)
			ball.Reflect(closest)
			return Cell{Row: row, Col: col}, true
		}
	}
	return Cell{}, false
}

func (g *Grid) inRange(row, col int) bool {
	return row >= 0 && row < g.layout.Rows && col >= 0 && col < g.layout.Cols
}
