package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PairLayout is the geometry of one spawn: two pipes and their score zone.
type PairLayout struct {
	GapCenter int
	Top       core.Box
	Bottom    core.Box
	Zone      core.Box
}

// Spawner picks gap centers and lays out pipe pairs.
type Spawner struct {
	rng    *rand.Rand
	pipes  config.PipesConfig
	zone   config.ZoneConfig
	worldH float64
}

// NewSpawner creates a spawner with a deterministic RNG.
func NewSpawner(seed int64, cfg config.FlappyConfig) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		pipes:  cfg.Pipes,
		zone:   cfg.Zone,
		worldH: cfg.World.Height,
	}
}

// GapCenter returns a uniformly random gap center in [GapMin, GapMax].
func (sp *Spawner) GapCenter() int {
	return sp.pipes.GapMin + sp.rng.Intn(sp.pipes.GapMax-sp.pipes.GapMin+1)
}

// Layout places a pair around gapCenter at the spawn x.
// The top pipe's bottom edge and the bottom pipe's top edge sit half a gap
// from the center; the zone spans the full world height just right of the anchor.
func (sp *Spawner) Layout(gapCenter int) PairLayout {
	x := sp.pipes.SpawnX
	c := float64(gapCenter)
	half := sp.pipes.Gap / 2
	w, h := sp.pipes.Width, sp.pipes.Height

	return PairLayout{
		GapCenter: gapCenter,
		Top:       core.NewBox(x-w/2, c-half-h, w, h),
		Bottom:    core.NewBox(x-w/2, c+half, w, h),
		Zone:      core.BoxFromCenter(x+sp.zone.OffsetX, sp.worldH/2, sp.zone.Width, sp.worldH),
	}
}

// Next draws a gap center and returns its layout.
func (sp *Spawner) Next() PairLayout {
	return sp.Layout(sp.GapCenter())
}
