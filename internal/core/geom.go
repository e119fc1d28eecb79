// Package core provides fundamental types and utilities for the arkanoid platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in viewport cells.
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

// Vec2 is a point or a vector in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// FRect is an axis-aligned rectangle in world units (origin top-left).
type FRect struct {
	X, Y float64
	W, H float64
}

// NewFRect creates a new world-space rectangle.
func NewFRect(x, y, w, h float64) FRect {
	return FRect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r FRect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r FRect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r FRect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether the rectangle has no area.
func (r FRect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if the two rectangles share a non-empty area.
// Rectangles that only touch along an edge do not intersect.
func (r FRect) Intersects(other FRect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// ContainsPoint reports whether p lies inside the half-open rectangle
// [X, X+W) x [Y, Y+H).
func (r FRect) ContainsPoint(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Corners returns the corners in the order top-left, top-right,
// bottom-right, bottom-left.
func (r FRect) Corners() [4]Vec2 {
	return [4]Vec2{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
}

// Scaled maps the rectangle into a viewport of vw x vh cells for a world of
// ww x wh units. Any non-empty rectangle covers at least one cell.
func (r FRect) Scaled(ww, wh float64, vw, vh int) Rect {
	if ww <= 0 || wh <= 0 {
		return Rect{}
	}
	sx := float64(vw) / ww
	sy := float64(vh) / wh

	x0 := int(math.Floor(r.X * sx))
	y0 := int(math.Floor(r.Y * sy))
	x1 := int(math.Ceil(r.Right() * sx))
	y1 := int(math.Ceil(r.Bottom() * sy))

	w := Max(1, x1-x0)
	h := Max(1, y1-y0)
	return Rect{X: x0, Y: y0, W: w, H: h}
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
