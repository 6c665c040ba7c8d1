package physics

import (
	"math"

	"github.com/solarlune/resolv"
)

// Handler is called when two bodies touch. a is the body the rule was
// registered for, b the body it touched.
type Handler func(a, b *Body)

// Provider is the capability the game needs from a physics engine.
// Any engine that honors these semantics can replace World.
type Provider interface {
	// AddStatic creates an immovable body that never integrates.
	AddStatic(tag string, x, y, w, h float64) *Body
	// AddDynamic creates a body that integrates velocity and, when enabled, gravity.
	AddDynamic(tag string, x, y, w, h float64) *Body
	// AddKinematic creates an immovable body that moves at its own velocity.
	AddKinematic(tag string, x, y, w, h float64) *Body
	// AddZone creates an invisible trigger body that moves at its own velocity.
	AddZone(tag string, x, y, w, h float64) *Body

	// Collide separates a from every body tagged tag and calls fn on contact.
	Collide(a *Body, tag string, fn Handler)
	// OverlapTag calls fn while a overlaps any body tagged tag, without separation.
	OverlapTag(a *Body, tag string, fn Handler)
	// Overlap calls fn while a and b overlap. The rule is dropped once either is destroyed.
	Overlap(a, b *Body, fn Handler)

	// Destroy removes a body. Destroying a body twice is a no-op.
	Destroy(b *Body)
	// Bodies returns the live bodies carrying tag, oldest first.
	Bodies(tag string) []*Body
	// Step integrates dt seconds and then resolves contact rules in registration order.
	Step(dt float64)
}

// WorldConfig sizes the simulated world.
type WorldConfig struct {
	Width    float64 // World bounds, also the broad-phase grid extent
	Height   float64
	Gravity  float64 // Downward acceleration in units per second squared
	CellSize int     // Broad-phase grid cell size in units
}

type contactRule struct {
	body     *Body
	tag      string // Set for tag rules
	other    *Body  // Set for pair rules
	separate bool
	fn       Handler
}

// World is the Provider implementation backed by a resolv broad-phase grid.
// Candidates come from the grid cells a body touches; the exact test is an
// axis-aligned box intersection. World is not safe for concurrent use.
type World struct {
	cfg    WorldConfig
	space  *resolv.Space
	bodies []*Body
	rules  []contactRule
	nextID int
}

var _ Provider = (*World)(nil)

// NewWorld creates an empty world.
func NewWorld(cfg WorldConfig) *World {
	if cfg.CellSize <= 0 {
		cfg.CellSize = 16
	}
	// Round up so the last partial row and column of cells exist.
	cols := int(math.Ceil(cfg.Width/float64(cfg.CellSize))) * cfg.CellSize
	rows := int(math.Ceil(cfg.Height/float64(cfg.CellSize))) * cfg.CellSize
	return &World{
		cfg:   cfg,
		space: resolv.NewSpace(cols, rows, cfg.CellSize, cfg.CellSize),
	}
}

// AddStatic implements Provider.
func (w *World) AddStatic(tag string, x, y, w2, h float64) *Body {
	return w.add(KindStatic, tag, x, y, w2, h)
}

// AddDynamic implements Provider. Gravity starts disabled.
func (w *World) AddDynamic(tag string, x, y, w2, h float64) *Body {
	return w.add(KindDynamic, tag, x, y, w2, h)
}

// AddKinematic implements Provider.
func (w *World) AddKinematic(tag string, x, y, w2, h float64) *Body {
	return w.add(KindKinematic, tag, x, y, w2, h)
}

// AddZone implements Provider.
func (w *World) AddZone(tag string, x, y, w2, h float64) *Body {
	return w.add(KindZone, tag, x, y, w2, h)
}

func (w *World) add(kind BodyKind, tag string, x, y, width, height float64) *Body {
	w.nextID++
	b := &Body{
		ID:   w.nextID,
		Tag:  tag,
		Kind: kind,
		X:    x,
		Y:    y,
		W:    width,
		H:    height,
	}
	b.obj = resolv.NewObject(x, y, width, height, tag)
	b.obj.Data = b
	w.space.Add(b.obj)
	w.bodies = append(w.bodies, b)
	return b
}

// Collide implements Provider.
func (w *World) Collide(a *Body, tag string, fn Handler) {
	w.rules = append(w.rules, contactRule{body: a, tag: tag, separate: true, fn: fn})
}

// OverlapTag implements Provider.
func (w *World) OverlapTag(a *Body, tag string, fn Handler) {
	w.rules = append(w.rules, contactRule{body: a, tag: tag, fn: fn})
}

// Overlap implements Provider.
func (w *World) Overlap(a, b *Body, fn Handler) {
	w.rules = append(w.rules, contactRule{body: a, other: b, fn: fn})
}

// Destroy implements Provider.
func (w *World) Destroy(b *Body) {
	if b == nil || b.destroyed {
		return
	}
	w.space.Remove(b.obj)
	b.destroyed = true

	for i, cur := range w.bodies {
		if cur == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
}

// Bodies implements Provider.
func (w *World) Bodies(tag string) []*Body {
	var out []*Body
	for _, b := range w.bodies {
		if b.Tag == tag {
			out = append(out, b)
		}
	}
	return out
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Rules returns the number of registered contact rules still in effect.
func (w *World) Rules() int {
	w.pruneRules()
	return len(w.rules)
}

// Step implements Provider.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	for _, b := range w.bodies {
		w.integrate(b, dt)
	}

	// Handlers may destroy bodies or register rules; iterate over a snapshot.
	rules := make([]contactRule, len(w.rules))
	copy(rules, w.rules)
	for _, r := range rules {
		w.resolve(r)
	}

	w.pruneRules()
}

func (w *World) integrate(b *Body, dt float64) {
	if !b.movable() {
		return
	}
	if b.Kind == KindDynamic && b.AllowGravity {
		b.VY += w.cfg.Gravity * dt
	}
	b.X += b.VX * dt
	b.Y += b.VY * dt

	if b.CollideWorldBounds {
		w.clampToBounds(b)
	}
	b.sync()
}

func (w *World) clampToBounds(b *Body) {
	if b.X < 0 {
		b.X = 0
		b.VX = 0
	} else if b.X+b.W > w.cfg.Width {
		b.X = w.cfg.Width - b.W
		b.VX = 0
	}
	if b.Y < 0 {
		b.Y = 0
		b.VY = 0
	} else if b.Y+b.H > w.cfg.Height {
		b.Y = w.cfg.Height - b.H
		b.VY = 0
	}
}

func (w *World) resolve(r contactRule) {
	if r.body.destroyed {
		return
	}

	if r.other != nil {
		if !r.other.destroyed && r.body.Box().Intersects(r.other.Box()) {
			r.fn(r.body, r.other)
		}
		return
	}

	for _, other := range w.candidates(r.body, r.tag) {
		if r.body.destroyed {
			return
		}
		if other.destroyed || !r.body.Box().Intersects(other.Box()) {
			continue
		}
		if r.separate {
			separate(r.body, other)
		}
		r.fn(r.body, other)
	}
}

// candidates returns the bodies tagged tag that share a grid cell with b.
func (w *World) candidates(b *Body, tag string) []*Body {
	collision := b.obj.Check(0, 0, tag)
	if collision == nil {
		return nil
	}

	out := make([]*Body, 0, len(collision.Objects))
	for _, obj := range collision.Objects {
		other, ok := obj.Data.(*Body)
		if !ok || other == b {
			continue
		}
		out = append(out, other)
	}
	return out
}

func (w *World) pruneRules() {
	live := w.rules[:0]
	for _, r := range w.rules {
		if r.body.destroyed || (r.other != nil && r.other.destroyed) {
			continue
		}
		live = append(live, r)
	}
	for i := len(live); i < len(w.rules); i++ {
		w.rules[i] = contactRule{}
	}
	w.rules = live
}

// separate pushes a dynamic body out of an immovable one along the axis of
// least penetration and stops its motion into the obstacle.
func separate(b, obstacle *Body) {
	if b.Kind != KindDynamic {
		return
	}
	dx, dy := b.Box().Penetration(obstacle.Box())
	if dx == 0 && dy == 0 {
		return
	}

	bx, by := b.Center()
	ox, oy := obstacle.Center()

	if dy <= dx {
		if by < oy {
			b.Y -= dy
			if b.VY > 0 {
				b.VY = 0
			}
		} else {
			b.Y += dy
			if b.VY < 0 {
				b.VY = 0
			}
		}
	} else {
		if bx < ox {
			b.X -= dx
			if b.VX > 0 {
				b.VX = 0
			}
		} else {
			b.X += dx
			if b.VX < 0 {
				b.VX = 0
			}
		}
	}
	b.sync()
}
