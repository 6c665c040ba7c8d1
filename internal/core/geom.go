// Package core provides fundamental types and utilities shared by the game,
// the physics provider and the terminal platform.
// It has no Bubble Tea dependency so game logic stays pure and testable.
package core

import "math"

// Rect is an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
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

// Box is a floating point axis-aligned bounding box in world units.
// The physics provider and the game entities work in this space; the
// renderer scales it down to screen cells.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBox creates a box from its top-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// BoxFromCenter creates a box of the given size centered on (cx, cy).
func BoxFromCenter(cx, cy, w, h float64) Box {
	return Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Intersects reports whether two boxes overlap with positive area.
// Touching edges do not count as an overlap.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Penetration returns the overlap depth of b into other along each axis.
// Both values are zero when the boxes do not intersect.
func (b Box) Penetration(other Box) (dx, dy float64) {
	if !b.Intersects(other) {
		return 0, 0
	}
	dx = math.Min(b.Right(), other.Right()) - math.Max(b.X, other.X)
	dy = math.Min(b.Bottom(), other.Bottom()) - math.Max(b.Y, other.Y)
	return dx, dy
}

// Scale maps a world box onto a grid of cells using the given factors.
// The result covers every cell the box touches.
func (b Box) Scale(sx, sy float64) Rect {
	x0 := int(math.Floor(b.X * sx))
	y0 := int(math.Floor(b.Y * sy))
	x1 := int(math.Ceil(b.Right() * sx))
	y1 := int(math.Ceil(b.Bottom() * sy))
	return NewRect(x0, y0, x1-x0, y1-y0)
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
