// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec2 is a point or displacement in field units.
type Vec2 struct {
	X, Y float64
}

// V creates a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// RectF is an axis-aligned rectangle in field units.
// Pos is the top-left corner.
type RectF struct {
	Pos  Vec2
	Size Vec2
}

// NewRectF creates a RectF from its top-left corner and size.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{Pos: V(x, y), Size: V(w, h)}
}

// Left returns the x of the left edge.
func (r RectF) Left() float64 { return r.Pos.X }

// Top returns the y of the top edge.
func (r RectF) Top() float64 { return r.Pos.Y }

// Right returns the x of the right edge.
func (r RectF) Right() float64 { return r.Pos.X + r.Size.X }

// Bottom returns the y of the bottom edge.
func (r RectF) Bottom() float64 { return r.Pos.Y + r.Size.Y }

// ClosestPoint returns the point of r nearest to p, found by clamping each
// axis of p into the rectangle's extent independently. A point inside r is
// returned unchanged.
func (r RectF) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: ClampF(p.X, r.Left(), r.Right()),
		Y: ClampF(p.Y, r.Top(), r.Bottom()),
	}
}

// Circle is a circle in field units.
type Circle struct {
	Center Vec2
	Radius float64
}

// TouchesRect reports whether the circle reaches r and returns the closest
// point of r to the centre. Touching at exactly the radius counts.
func (c Circle) TouchesRect(r RectF) (Vec2, bool) {
	closest := r.ClosestPoint(c.Center)
	return closest, Distance(c.Center, closest) <= c.Radius
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
