package flappy

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// bob animates the idle hover as an offset around the start height,
// sweeping between -amplitude and +amplitude with an ease-in-out curve.
type bob struct {
	amplitude float32
	sweep     float32 // Seconds from one extreme to the other
	target    float32
	tween     *gween.Tween
}

func newBob(amplitude float64, period time.Duration) *bob {
	b := &bob{
		amplitude: float32(amplitude),
		sweep:     float32(period.Seconds() / 2),
	}
	b.reset()
	return b
}

// reset starts again from zero offset, heading down.
func (b *bob) reset() {
	if b.amplitude == 0 || b.sweep <= 0 {
		b.tween = nil
		return
	}
	b.target = b.amplitude
	b.tween = gween.New(0, b.target, b.sweep/2, ease.InOutSine)
}

// update advances dt seconds and returns the current offset.
func (b *bob) update(dt float64) float64 {
	if b.tween == nil {
		return 0
	}
	v, done := b.tween.Update(float32(dt))
	if done {
		b.target = -b.target
		b.tween = gween.New(v, b.target, b.sweep, ease.InOutSine)
	}
	return float64(v)
}
