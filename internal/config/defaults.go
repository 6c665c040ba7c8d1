package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in game constants.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:   800,
			Height:  600,
			Gravity: 900,
		},
		Ground: GroundConfig{
			Y:      536,
			Height: 64,
		},
		Bird: BirdConfig{
			StartX:        160,
			StartY:        220,
			Width:         51, // 17x12 sprite at 3x
			Height:        36,
			FlapVelocity:  -320,
			AngleDivisor:  8,
			MinAngle:      -25,
			MaxAngle:      50,
			BobAmplitude:  6,
			BobPeriodMs:   1400,
			CollideBounds: true,
		},
		Pipes: PipesConfig{
			Width:           64,
			Height:          400,
			Speed:           220,
			Gap:             170,
			GapMin:          170,
			GapMax:          420,
			SpawnX:          880,
			DespawnX:        -120,
			SpawnIntervalMs: 1400,
		},
		Zone: ZoneConfig{
			OffsetX: 30,
			Width:   10,
		},
	}
}

// DefaultFlappyYAML returns the embedded default YAML.
func DefaultFlappyYAML() []byte {
	return defaultFlappyYAML
}
