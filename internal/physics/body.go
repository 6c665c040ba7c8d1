// Package physics is the arcade-style physics and collision provider the
// game is written against: gravity integration, constant velocities, world
// bounds and axis-aligned overlap callbacks.
package physics

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// BodyKind selects how a body takes part in the simulation.
type BodyKind int

const (
	KindStatic    BodyKind = iota // Never moves (ground)
	KindDynamic                   // Gravity and velocity, can be separated by colliders (bird)
	KindKinematic                 // Constant velocity, immovable (pipes)
	KindZone                      // Constant velocity, only reports overlaps (score triggers)
)

// String returns the kind name used in logs.
func (k BodyKind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindDynamic:
		return "dynamic"
	case KindKinematic:
		return "kinematic"
	case KindZone:
		return "zone"
	default:
		return "unknown"
	}
}

// Body is a rectangle owned by a World.
// Positions are the top-left corner in world units; velocities are units per second.
type Body struct {
	ID   int
	Tag  string
	Kind BodyKind

	X, Y   float64
	W, H   float64
	VX, VY float64

	AllowGravity       bool
	CollideWorldBounds bool

	// Data is free for the owner, e.g. a back-pointer to a game entity.
	Data any

	obj       *resolv.Object
	destroyed bool
}

// Box returns the body's current bounds.
func (b *Body) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Center returns the center of the body.
func (b *Body) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() float64 {
	return b.Y + b.H
}

// SetCenter moves the body so that its center is at (cx, cy).
func (b *Body) SetCenter(cx, cy float64) {
	b.X = cx - b.W/2
	b.Y = cy - b.H/2
	b.sync()
}

// SetVelocity sets both velocity components.
func (b *Body) SetVelocity(vx, vy float64) {
	b.VX = vx
	b.VY = vy
}

// Destroyed reports whether the body has been removed from its world.
func (b *Body) Destroyed() bool {
	return b.destroyed
}

// movable reports whether integration moves the body.
func (b *Body) movable() bool {
	return b.Kind != KindStatic
}

// sync pushes the body bounds into the broad-phase grid.
func (b *Body) sync() {
	if b.obj == nil || b.destroyed {
		return
	}
	b.obj.X, b.obj.Y = b.X, b.Y
	b.obj.W, b.obj.H = b.W, b.H
	b.obj.Update()
}
