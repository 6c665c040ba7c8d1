package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
)

// Physics tags shared by bodies and contact rules.
const (
	TagBird   = "bird"
	TagGround = "ground"
	TagPipe   = "pipe"
	TagZone   = "zone"
)

// Bird is the player. Exactly one exists per session; restarts reposition it.
type Bird struct {
	body   *physics.Body
	angle  float64
	tinted bool
	startX float64
	startY float64
}

// X returns the horizontal center.
func (b *Bird) X() float64 {
	x, _ := b.body.Center()
	return x
}

// Y returns the vertical center.
func (b *Bird) Y() float64 {
	_, y := b.body.Center()
	return y
}

// Velocity returns the current velocity in units per second.
func (b *Bird) Velocity() (float64, float64) {
	return b.body.VX, b.body.VY
}

// Angle returns the pitch in degrees; positive is nose down.
func (b *Bird) Angle() float64 { return b.angle }

// Tinted reports whether the bird is drawn as crashed.
func (b *Bird) Tinted() bool { return b.tinted }

// GravityEnabled reports whether gravity currently acts on the bird.
func (b *Bird) GravityEnabled() bool { return b.body.AllowGravity }

// Box returns the bird's bounds.
func (b *Bird) Box() core.Box { return b.body.Box() }

// Start returns the fixed start coordinate (center).
func (b *Bird) Start() (float64, float64) { return b.startX, b.startY }

func (b *Bird) reset() {
	b.body.SetCenter(b.startX, b.startY)
	b.body.SetVelocity(0, 0)
	b.body.AllowGravity = false
	b.angle = 0
	b.tinted = false
}

// Orientation says which side of the gap a pipe sits on.
type Orientation int

const (
	OrientationTop    Orientation = iota // Hangs from above, flipped
	OrientationBottom                    // Rises from the ground
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == OrientationTop {
		return "top"
	}
	return "bottom"
}

// Pipe is one half of a pipe pair.
type Pipe struct {
	orientation Orientation
	body        *physics.Body
}

// Orientation returns which side of the gap the pipe is on.
func (p *Pipe) Orientation() Orientation { return p.orientation }

// X returns the anchor, the horizontal center of the pipe.
func (p *Pipe) X() float64 {
	x, _ := p.body.Center()
	return x
}

// Edge returns the y-coordinate of the edge facing the gap.
func (p *Pipe) Edge() float64 {
	if p.orientation == OrientationTop {
		return p.body.Bottom()
	}
	return p.body.Y
}

// VX returns the horizontal velocity.
func (p *Pipe) VX() float64 { return p.body.VX }

// Box returns the pipe's bounds.
func (p *Pipe) Box() core.Box { return p.body.Box() }

// Destroyed reports whether the pipe has been removed from the world.
func (p *Pipe) Destroyed() bool { return p.body.Destroyed() }

// ScoreZone is the invisible trigger that travels with a pipe pair and pays
// out one point on first contact with the bird.
type ScoreZone struct {
	body *physics.Body
}

// X returns the horizontal center.
func (z *ScoreZone) X() float64 {
	x, _ := z.body.Center()
	return x
}

// VX returns the horizontal velocity.
func (z *ScoreZone) VX() float64 { return z.body.VX }

// Box returns the zone's bounds.
func (z *ScoreZone) Box() core.Box { return z.body.Box() }

// Destroyed reports whether the zone has been consumed or cleared.
func (z *ScoreZone) Destroyed() bool { return z.body.Destroyed() }
