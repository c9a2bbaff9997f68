package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Direction is the paddle's intended movement.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Paddle is the player's paddle. Its y never changes.
type Paddle struct {
	Rect   core.RectF
	Dir    Direction
	Speed  float64 // Units per second
	FieldW float64
}

// SetDirection records the movement to apply on the next Tick.
func (p *Paddle) SetDirection(d Direction) {
	p.Dir = d
}

// Tick moves the paddle by speed*elapsed in its direction and clamps it so
// both edges stay inside the field.
func (p *Paddle) Tick(elapsed float64) {
	switch p.Dir {
	case DirLeft:
		p.Rect.Pos.X -= p.Speed * elapsed
	case DirRight:
		p.Rect.Pos.X += p.Speed * elapsed
	default:
		return
	}
	p.Rect.Pos.X = core.ClampF(p.Rect.Pos.X, 0, p.FieldW-p.Rect.Size.X)
}

// Ball is the ball. Vel is the increment applied per second of accumulated
// time; bounces only ever change its signs.
type Ball struct {
	Pos    core.Vec2 // Centre
	Vel    core.Vec2
	Radius float64
}

// Circle returns the ball's outline.
func (b *Ball) Circle() core.Circle {
	return core.Circle{Center: b.Pos, Radius: b.Radius}
}

// Top returns the y of the ball's top edge.
func (b *Ball) Top() float64 { return b.Pos.Y - b.Radius }

// Bottom returns the y of the ball's bottom edge.
func (b *Ball) Bottom() float64 { return b.Pos.Y + b.Radius }

// Move advances the ball by Vel*elapsed.
func (b *Ball) Move(elapsed float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(elapsed))
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.Vel.X = -b.Vel.X
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.Vel.Y = -b.Vel.Y
}

// Reflect bounces the ball off a rectangle given the rectangle's closest
// point to the ball centre. This is a corner/face approximation, not true
// circle-rectangle reflection:
//   - closest point differs on both axes: corner, flip both components
//   - same x: hit from above or below, flip y
//   - same y: hit from the side, flip x
func (b *Ball) Reflect(closest core.Vec2) {
	switch {
	case closest.X != b.Pos.X && closest.Y != b.Pos.Y:
		b.BounceX()
		b.BounceY()
	case closest.X == b.Pos.X:
		b.BounceY()
	case closest.Y == b.Pos.Y:
		b.BounceX()
	}
}

// HitRect runs the closest-point test against r and reflects on contact.
func (b *Ball) HitRect(r core.RectF) bool {
	closest, hit := b.Circle().TouchesRect(r)
	if hit {
		b.Reflect(closest)
	}
	return hit
}

// TouchesWall reports whether the ball reaches the left, right or top wall.
// The bottom of the field is not a wall.
func (b *Ball) TouchesWall(fieldW float64) bool {
	return b.touchesSide(fieldW) || b.Top() <= 0
}

// BounceWalls flips the velocity axis of every wall the ball touches.
func (b *Ball) BounceWalls(fieldW float64) {
	if b.touchesSide(fieldW) {
		b.BounceX()
	}
	if b.Top() <= 0 {
		b.BounceY()
	}
}

func (b *Ball) touchesSide(fieldW float64) bool {
	return b.Pos.X-b.Radius <= 0 || b.Pos.X+b.Radius >= fieldW
}

// CollisionDomain names the single kind of collision checked in a tick.
type CollisionDomain int

const (
	DomainNone   CollisionDomain = iota // Nothing checked (game over)
	DomainWall                          // Ball touched a wall
	DomainBlocks                        // Ball inside the block zone, grid scanned
	DomainPaddle                        // Ball below the block zone, paddle tested
)

// String returns a human-readable name for the domain.
func (d CollisionDomain) String() string {
	switch d {
	case DomainWall:
		return "wall"
	case DomainBlocks:
		return "blocks"
	case DomainPaddle:
		return "paddle"
	default:
		return "none"
	}
}
