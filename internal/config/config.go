// Package config provides YAML-based game configuration loading and the
// command-line settings layer for the flappy binary.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains every tunable constant of the game.
// All lengths are world units; the world is scaled onto the terminal at render time.
type FlappyConfig struct {
	World  WorldConfig  `yaml:"world"`
	Ground GroundConfig `yaml:"ground"`
	Bird   BirdConfig   `yaml:"bird"`
	Pipes  PipesConfig  `yaml:"pipes"`
	Zone   ZoneConfig   `yaml:"zone"`
}

// WorldConfig defines the simulated playfield.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gravity float64 `yaml:"gravity"` // Downward, units per second squared
}

// GroundConfig defines the static floor strip.
type GroundConfig struct {
	Y      float64 `yaml:"y"` // Top edge
	Height float64 `yaml:"height"`
}

// BirdConfig defines the player.
type BirdConfig struct {
	StartX        float64 `yaml:"start_x"` // Center
	StartY        float64 `yaml:"start_y"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	FlapVelocity  float64 `yaml:"flap_velocity"` // Negative is upward
	AngleDivisor  float64 `yaml:"angle_divisor"`
	MinAngle      float64 `yaml:"min_angle"`
	MaxAngle      float64 `yaml:"max_angle"`
	BobAmplitude  float64 `yaml:"bob_amplitude"` // Idle hover distance either side of StartY
	BobPeriodMs   int     `yaml:"bob_period_ms"` // One full up-and-down cycle
	CollideBounds bool    `yaml:"collide_bounds"`
}

// PipesConfig defines pipe pairs and their spawning.
type PipesConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"` // Leftward, units per second
	Gap             float64 `yaml:"gap"`
	GapMin          int     `yaml:"gap_min"` // Inclusive range for the gap center
	GapMax          int     `yaml:"gap_max"`
	SpawnX          float64 `yaml:"spawn_x"`
	DespawnX        float64 `yaml:"despawn_x"`
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"`
}

// ZoneConfig defines the invisible score trigger that follows each pair.
type ZoneConfig struct {
	OffsetX float64 `yaml:"offset_x"` // From the pipe anchor
	Width   float64 `yaml:"width"`
}

// SpawnInterval returns the pipe spawn interval as a duration.
func (c PipesConfig) SpawnInterval() time.Duration {
	return time.Duration(c.SpawnIntervalMs) * time.Millisecond
}

// BobPeriod returns the idle bob cycle as a duration.
func (c BirdConfig) BobPeriod() time.Duration {
	return time.Duration(c.BobPeriodMs) * time.Millisecond
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the constants describe a playable game.
func (c FlappyConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("ground.height", c.Ground.Height)
	positive("bird.width", c.Bird.Width)
	positive("bird.height", c.Bird.Height)
	positive("bird.angle_divisor", c.Bird.AngleDivisor)
	positive("pipes.width", c.Pipes.Width)
	positive("pipes.height", c.Pipes.Height)
	positive("pipes.speed", c.Pipes.Speed)
	positive("pipes.gap", c.Pipes.Gap)
	positive("pipes.spawn_interval_ms", float64(c.Pipes.SpawnIntervalMs))
	positive("zone.width", c.Zone.Width)

	if c.World.Gravity < 0 {
		errs = append(errs, fmt.Errorf("%w: world.gravity must not be negative, got %v", ErrInvalidConfig, c.World.Gravity))
	}
	if c.Pipes.GapMin > c.Pipes.GapMax {
		errs = append(errs, fmt.Errorf("%w: empty gap range [%d, %d]", ErrInvalidConfig, c.Pipes.GapMin, c.Pipes.GapMax))
	}
	if c.Bird.MinAngle > c.Bird.MaxAngle {
		errs = append(errs, fmt.Errorf("%w: bird.min_angle %v exceeds bird.max_angle %v", ErrInvalidConfig, c.Bird.MinAngle, c.Bird.MaxAngle))
	}
	if c.Ground.Y <= 0 || c.Ground.Y > c.World.Height {
		errs = append(errs, fmt.Errorf("%w: ground.y %v outside the world", ErrInvalidConfig, c.Ground.Y))
	}
	if c.Pipes.DespawnX >= c.Pipes.SpawnX {
		errs = append(errs, fmt.Errorf("%w: pipes.despawn_x %v must be left of pipes.spawn_x %v", ErrInvalidConfig, c.Pipes.DespawnX, c.Pipes.SpawnX))
	}

	return errors.Join(errs...)
}
