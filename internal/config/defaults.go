package config

import (
	_ "embed"
)

//go:embed defaults/trashtoss.yaml
var defaultTossYAML []byte

// DefaultTossConfig returns the default trash toss configuration.
func DefaultTossConfig() TossConfig {
	return TossConfig{
		World: TossWorld{
			Width:  800,
			Height: 600,
		},
		Physics: TossPhysics{
			Gravity:         0.5,
			GroundMargin:    50,
			WallRestitution: 0.6,
			GroundFriction:  0.8,
			RestVY:          2,
			RestVX:          1,
		},
		Throw: TossThrow{
			PowerMultiplier: 0.3,
			GrabSlack:       10,
			PreviewSteps:    30,
			MaxPower:        200,
			SpawnX:          100,
			SpawnOffsetY:    200,
		},
		Round: TossRound{
			WaitTicks:         60, // 1 second at 60fps
			OutOfBoundsMargin: 50,
			BurstCount:        40,
		},
		Cat: TossCat{
			OffsetX:     300,
			OffsetY:     100,
			Radius:      80,
			ActiveTicks: 120, // 2 seconds at 60fps
			Chance:      0.5,
			Spread:      1.0,
			MinForce:    8,
			MaxForce:    12,
		},
		Bin: TossBin{
			OffsetX:      150,
			Width:        80,
			Height:       100,
			OpeningWidth: 70,
		},
		Confetti: TossConfetti{
			Gravity: 0.3,
			Damping: 0.99,
		},
		Weights: TossWeights{
			Paper:    40,
			Snack:    35,
			MouseToy: 25,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTossYAML
}
