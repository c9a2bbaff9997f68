package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Phase is the game's lifecycle state. Lost and Cleared are terminal.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLost          // Ball fell past the loss line
	PhaseCleared       // Every block destroyed
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLost:
		return "lost"
	case PhaseCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// TickResult describes what one Update did.
type TickResult struct {
	Domain  CollisionDomain // Which collision domain was evaluated
	Hit     bool            // Whether the ball bounced off something
	Removed *Cell           // Block destroyed this tick, if any
	Phase   Phase           // Phase after the tick
}

// Game owns the paddle, ball and block grid and advances them together.
type Game struct {
	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig

	paddle *Paddle
	ball   *Ball
	grid   *Grid

	score     int
	lives     int
	phase     Phase
	elapsed   float64 // Accumulated seconds not yet consumed by the timestep
	tickCount int
}

// New creates a game ready to play with the given configuration.
func New(cfg config.BreakoutConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset starts a fresh game. The runtime config only affects rendering.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	cfg := g.cfg

	g.paddle = &Paddle{
		Rect: core.NewRectF(
			cfg.Field.Width/2-cfg.Paddle.Width/2,
			cfg.Paddle.Y,
			cfg.Paddle.Width,
			cfg.Paddle.Height,
		),
		Dir:    DirNone,
		Speed:  cfg.Paddle.Speed,
		FieldW: cfg.Field.Width,
	}
	g.ball = &Ball{
		Pos:    core.V(cfg.Ball.X, cfg.Ball.Y),
		Vel:    core.V(cfg.Ball.VX, cfg.Ball.VY),
		Radius: cfg.Ball.Radius,
	}
	g.grid = NewGrid(ClassicLayout)

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.phase = PhasePlaying
	g.elapsed = 0
	g.tickCount = 0
}

// Update runs one simulation tick: set the paddle's direction, advance the
// ball (collisions, then movement, then the loss check) and the paddle by
// the accumulated time, then consume one timestep from the accumulator if
// it has reached it. Once the game is over Update changes nothing.
func (g *Game) Update(dir Direction) TickResult {
	if g.GameOver() {
		return TickResult{Domain: DomainNone, Phase: g.phase}
	}
	g.tickCount++

	g.paddle.SetDirection(dir)
	res := g.advanceBall(g.elapsed)
	g.paddle.Tick(g.elapsed)

	// Only one timestep is consumed per tick; the remainder carries over.
	if step := g.cfg.Gameplay.Timestep; g.elapsed >= step {
		g.elapsed -= step
	}

	res.Phase = g.phase
	return res
}

// Accumulate adds wall-clock seconds to the elapsed-time accumulator.
func (g *Game) Accumulate(seconds float64) {
	if seconds > 0 {
		g.elapsed += seconds
	}
}

// advanceBall evaluates exactly one collision domain, in priority order
// wall, block zone, paddle. A ball inside the block zone is never tested
// against the paddle in the same tick.
func (g *Game) advanceBall(elapsed float64) TickResult {
	var res TickResult
	ball := g.ball

	switch {
	case ball.TouchesWall(g.cfg.Field.Width):
		res.Domain = DomainWall
		res.Hit = true
		ball.BounceWalls(g.cfg.Field.Width)

	case ball.Top() <= g.grid.ZoneBottom():
		res.Domain = DomainBlocks
		if cell, ok := g.grid.Collide(ball); ok {
			res.Hit = true
			res.Removed = &cell
			g.score += g.cfg.Gameplay.ScorePerBlock
			if g.grid.AliveCount() == 0 {
				g.phase = PhaseCleared
			}
		}

	default:
		res.Domain = DomainPaddle
		res.Hit = ball.HitRect(g.paddle.Rect)
	}

	ball.Move(elapsed)

	if g.phase == PhasePlaying && ball.Bottom() >= g.cfg.Gameplay.LossLine {
		g.phase = PhaseLost
	}
	return res
}

// Step adapts Update to the shell's input frames: Left wins over Right when
// both are held. The frame's elapsed time is accumulated after the update,
// so it drives the next tick. Once the game is over Step changes nothing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.GameOver() {
		return core.StepResult{State: g.State()}
	}

	dir := DirNone
	switch {
	case in.Has(core.ActionLeft):
		dir = DirLeft
	case in.Has(core.ActionRight):
		dir = DirRight
	}

	res := g.Update(dir)
	g.Accumulate(in.Elapsed.Seconds())

	return core.StepResult{State: g.State(), Events: g.events(res)}
}

// events converts a tick result into loggable events.
func (g *Game) events(res TickResult) []core.Event {
	var evs []core.Event
	if res.Removed != nil {
		evs = append(evs, core.Event{
			Name: "block destroyed",
			Attrs: []any{
				"row", res.Removed.Row,
				"col", res.Removed.Col,
				"score", g.score,
				"remaining", g.grid.AliveCount(),
				"paddle", g.paddle.Dir.String(),
			},
		})
	}
	if res.Domain == DomainNone {
		return evs
	}
	switch res.Phase {
	case PhaseLost:
		evs = append(evs, core.Event{
			Name:  "ball lost",
			Attrs: []any{"score", g.score, "tick", g.tickCount},
		})
	case PhaseCleared:
		evs = append(evs, core.Event{
			Name:  "field cleared",
			Attrs: []any{"score", g.score, "tick", g.tickCount},
		})
	}
	return evs
}

// LoseLife decrements the lives counter, never below zero. The game loop
// does not call it and lives never end the game; it is kept so the counter
// can be driven from outside.
func (g *Game) LoseLife() {
	if g.lives > 0 {
		g.lives--
	}
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the lives counter.
func (g *Game) Lives() int { return g.lives }

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase { return g.phase }

// GameOver reports whether the game has ended, lost or cleared.
func (g *Game) GameOver() bool { return g.phase != PhasePlaying }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		GameOver: g.GameOver(),
		Won:      g.phase == PhaseCleared,
	}
}
