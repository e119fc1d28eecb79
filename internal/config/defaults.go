package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the hard-coded Arkanoid configuration.
// It matches defaults/arkanoid.yaml and is used when the embedded file
// cannot be parsed.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		World: ArkanoidWorld{
			Width:           1000,
			Height:          750,
			Columns:         10,
			Rows:            10,
			EmptyBottomRows: 3,
			TileChance:      50,
			HardTileChance:  0,
		},
		Physics: ArkanoidPhysics{
			MaxStep:       34 * time.Millisecond,
			Microsteps:    10,
			FallMargin:    10,
			EnglishFactor: 0.3,
		},
		Paddle: ArkanoidPaddle{
			WidthRatio:    0.2,
			HeightRatio:   0.01,
			MaxWidthRatio: 0.99,
			Speed:         1000,
		},
		Ball: ArkanoidBall{
			RadiusRatio: 0.15,
			MinRadius:   5,
			Speed:       500,
			Spread:      100,
		},
		Pickups: ArkanoidPickups{
			Chance:         20,
			FallSpeed:      300,
			EffectDuration: 10 * time.Second,
			SpeedUpFactor:  2.0,
			SlowDownFactor: 1.0,
			ShrinkFactor:   0.5,
			WidenFactor:    2.0,
		},
		Scoring: ArkanoidScoring{
			TileReward:   10,
			PickupReward: 1,
			BallPenalty:  100,
		},
		Gameplay: ArkanoidGameplay{
			Lives:          3,
			RestartDelay:   10 * time.Second,
			ScoreOnRestart: ScoreReset,
			KeyHold:        150 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

