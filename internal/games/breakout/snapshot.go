package breakout

import "math"

// Snapshot contains the complete game state for determinism checks and the
// end-of-game summary. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64
	PaddleX     float64
	PaddleDir   int
	BallX       float64
	BallY       float64
	BallVX      float64
	BallVY      float64
	Score       int
	Lives       int
	Phase       int
	Elapsed     float64
	BlocksAlive int

	// Block states, row-major (row*cols + col): 1 = alive, 0 = destroyed
	BlockData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	blockData := make([]int, 0, g.grid.Total())
	for row := range g.grid.Rows() {
		for col := range g.grid.Cols() {
			b, _ := g.grid.Block(row, col)
			if b.Alive {
				blockData = append(blockData, 1)
			} else {
				blockData = append(blockData, 0)
			}
		}
	}

	return Snapshot{
		Tick:        uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		PaddleX:     g.paddle.Rect.Pos.X,
		PaddleDir:   int(g.paddle.Dir),
		BallX:       g.ball.Pos.X,
		BallY:       g.ball.Pos.Y,
		BallVX:      g.ball.Vel.X,
		BallVY:      g.ball.Vel.Y,
		Score:       g.score,
		Lives:       g.lives,
		Phase:       int(g.phase),
		Elapsed:     g.elapsed,
		BlocksAlive: g.grid.AliveCount(),
		BlockData:   blockData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, f := range []float64{snap.PaddleX, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.Elapsed} {
		h = h*31 + math.Float64bits(f)
	}
	for _, v := range []int{snap.PaddleDir, snap.Score, snap.Lives, snap.Phase, snap.BlocksAlive} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
