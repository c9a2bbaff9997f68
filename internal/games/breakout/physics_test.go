package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func newTestPaddle() *Paddle {
	return &Paddle{
		Rect:   core.NewRectF(525, 700, 150, 20),
		Speed:  15,
		FieldW: 1200,
	}
}

func TestPaddleSetDirectionIsDeferred(t *testing.T) {
	p := newTestPaddle()
	p.SetDirection(DirRight)

	if p.Rect.Pos.X != 525 {
		t.Errorf("SetDirection moved the paddle to %v", p.Rect.Pos.X)
	}
	if p.Dir != DirRight {
		t.Errorf("Dir = %v, expected right", p.Dir)
	}
}

func TestPaddleTick(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		dir      Direction
		elapsed  float64
		expected float64
	}{
		{"none stays", 525, DirNone, 1, 525},
		{"left", 525, DirLeft, 1, 510},
		{"right", 525, DirRight, 1, 540},
		{"scaled by elapsed", 525, DirRight, 0.1, 526.5},
		{"clamped left", 10, DirLeft, 1, 0},
		{"clamped right", 1045, DirRight, 1, 1050},
		{"zero elapsed", 525, DirLeft, 0, 525},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPaddle()
			p.Rect.Pos.X = tc.start
			p.SetDirection(tc.dir)
			p.Tick(tc.elapsed)

			if math.Abs(p.Rect.Pos.X-tc.expected) > 1e-9 {
				t.Errorf("X = %v, expected %v", p.Rect.Pos.X, tc.expected)
			}
			if p.Rect.Pos.Y != 700 {
				t.Errorf("Y changed to %v", p.Rect.Pos.Y)
			}
		})
	}
}

func TestPaddleStaysInField(t *testing.T) {
	p := newTestPaddle()
	p.Speed = 4000

	dirs := []Direction{DirLeft, DirLeft, DirRight, DirNone, DirRight, DirRight, DirLeft}
	for i := range 500 {
		p.SetDirection(dirs[i%len(dirs)])
		p.Tick(0.05 + float64(i%7)*0.03)

		if p.Rect.Left() < 0 || p.Rect.Right() > 1200 {
			t.Fatalf("tick %d: paddle [%v, %v] outside field", i, p.Rect.Left(), p.Rect.Right())
		}
	}
}

func TestBallReflect(t *testing.T) {
	tests := []struct {
		name     string
		closest  core.Vec2
		expected core.Vec2
	}{
		{"corner flips both", core.V(90, 90), core.V(-5, 5)},
		{"top or bottom flips y", core.V(100, 90), core.V(5, 5)},
		{"side flips x", core.V(90, 100), core.V(-5, -5)},
		{"centre inside flips y", core.V(100, 100), core.V(5, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Ball{Pos: core.V(100, 100), Vel: core.V(5, -5), Radius: 12}
			b.Reflect(tc.closest)
			if b.Vel != tc.expected {
				t.Errorf("Vel = %v, expected %v", b.Vel, tc.expected)
			}
		})
	}
}

func TestBallHitRect(t *testing.T) {
	paddle := core.NewRectF(525, 700, 150, 20)

	tests := []struct {
		name     string
		pos      core.Vec2
		hit      bool
		expected core.Vec2
	}{
		{"above centre", core.V(600, 690), true, core.V(5, -5)},
		{"exactly radius away", core.V(600, 688), true, core.V(5, -5)},
		{"too far", core.V(600, 687), false, core.V(5, 5)},
		{"top-left corner", core.V(520, 695), true, core.V(-5, -5)},
		{"left side", core.V(515, 710), true, core.V(-5, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Ball{Pos: tc.pos, Vel: core.V(5, 5), Radius: 12}
			if got := b.HitRect(paddle); got != tc.hit {
				t.Errorf("HitRect() = %v, expected %v", got, tc.hit)
			}
			if b.Vel != tc.expected {
				t.Errorf("Vel = %v, expected %v", b.Vel, tc.expected)
			}
		})
	}
}

func TestBallWalls(t *testing.T) {
	tests := []struct {
		name     string
		pos      core.Vec2
		vel      core.Vec2
		touches  bool
		expected core.Vec2
	}{
		{"left wall", core.V(0, 400), core.V(-5, 5), true, core.V(5, 5)},
		{"left edge touching", core.V(12, 400), core.V(-5, 5), true, core.V(5, 5)},
		{"right wall", core.V(1190, 400), core.V(5, 5), true, core.V(-5, 5)},
		{"top wall", core.V(600, 10), core.V(5, -5), true, core.V(5, 5)},
		{"top-left corner", core.V(5, 5), core.V(-5, -5), true, core.V(5, 5)},
		{"open field", core.V(600, 400), core.V(5, 5), false, core.V(5, 5)},
		{"bottom is not a wall", core.V(600, 799), core.V(5, 5), false, core.V(5, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Ball{Pos: tc.pos, Vel: tc.vel, Radius: 12}
			if got := b.TouchesWall(1200); got != tc.touches {
				t.Fatalf("TouchesWall() = %v, expected %v", got, tc.touches)
			}
			if tc.touches {
				b.BounceWalls(1200)
			}
			if b.Vel != tc.expected {
				t.Errorf("Vel = %v, expected %v", b.Vel, tc.expected)
			}
		})
	}
}

func TestBallMove(t *testing.T) {
	b := &Ball{Pos: core.V(600, 650), Vel: core.V(5, 5), Radius: 12}
	b.Move(0.1)

	if math.Abs(b.Pos.X-600.5) > 1e-9 || math.Abs(b.Pos.Y-650.5) > 1e-9 {
		t.Errorf("Pos = %v, expected (600.5, 650.5)", b.Pos)
	}

	b.Move(0)
	if math.Abs(b.Pos.X-600.5) > 1e-9 {
		t.Errorf("Move(0) changed position to %v", b.Pos)
	}
}

func TestEnumStrings(t *testing.T) {
	if DirLeft.String() != "left" || DirRight.String() != "right" || DirNone.String() != "none" {
		t.Error("Direction.String() mismatch")
	}
	if DomainWall.String() != "wall" || DomainBlocks.String() != "blocks" || DomainPaddle.String() != "paddle" || DomainNone.String() != "none" {
		t.Error("CollisionDomain.String() mismatch")
	}
}
