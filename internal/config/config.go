// Package config provides YAML-based configuration loading and
// difficulty management for the arkanoid simulation.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ArkanoidConfig contains all configuration for the Arkanoid simulation.
// Distances are world units, speeds are world units per second.
type ArkanoidConfig struct {
	World      ArkanoidWorld    `yaml:"world"`
	Physics    ArkanoidPhysics  `yaml:"physics"`
	Paddle     ArkanoidPaddle   `yaml:"paddle"`
	Ball       ArkanoidBall     `yaml:"ball"`
	Pickups    ArkanoidPickups  `yaml:"pickups"`
	Scoring    ArkanoidScoring  `yaml:"scoring"`
	Gameplay   ArkanoidGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArkanoidWorld defines the arena and the tile grid.
type ArkanoidWorld struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Columns         int     `yaml:"columns"`
	Rows            int     `yaml:"rows"`
	EmptyBottomRows int     `yaml:"empty_bottom_rows"` // Grid rows that never get tiles
	TileChance      int     `yaml:"tile_chance"`       // Percent of grid cells that get a tile
	HardTileChance  int     `yaml:"hard_tile_chance"`  // Percent of tiles that need two hits
}

// ArkanoidPhysics defines integration parameters.
type ArkanoidPhysics struct {
	MaxStep       time.Duration `yaml:"max_step"`       // Upper bound for a single tick
	Microsteps    int           `yaml:"microsteps"`     // Substeps used when a collision is possible
	FallMargin    float64       `yaml:"fall_margin"`    // Distance above the bottom edge where the ball counts as lost
	EnglishFactor float64       `yaml:"english_factor"` // Share of paddle speed added to the ball on a hit
}

// ArkanoidPaddle defines the paddle geometry relative to the world.
type ArkanoidPaddle struct {
	WidthRatio    float64 `yaml:"width_ratio"`
	HeightRatio   float64 `yaml:"height_ratio"`
	MaxWidthRatio float64 `yaml:"max_width_ratio"`
	Speed         float64 `yaml:"speed"`
}

// ArkanoidBall defines the ball parameters.
type ArkanoidBall struct {
	RadiusRatio float64 `yaml:"radius_ratio"` // Radius as a share of tile width
	MinRadius   float64 `yaml:"min_radius"`
	Speed       float64 `yaml:"speed"`  // Vertical launch speed
	Spread      int     `yaml:"spread"` // Horizontal launch speed range, centered on zero
}

// ArkanoidPickups defines pickup spawning and effects.
type ArkanoidPickups struct {
	Chance         int           `yaml:"chance"` // Percent chance per destroyed tile
	FallSpeed      float64       `yaml:"fall_speed"`
	EffectDuration time.Duration `yaml:"effect_duration"`
	SpeedUpFactor  float64       `yaml:"speed_up_factor"`
	SlowDownFactor float64       `yaml:"slow_down_factor"`
	ShrinkFactor   float64       `yaml:"shrink_factor"`
	WidenFactor    float64       `yaml:"widen_factor"`
}

// ArkanoidScoring defines score changes.
type ArkanoidScoring struct {
	TileReward   int `yaml:"tile_reward"`
	PickupReward int `yaml:"pickup_reward"`
	BallPenalty  int `yaml:"ball_penalty"`
}

// ArkanoidGameplay defines lives, restarts and input timing.
type ArkanoidGameplay struct {
	Lives          int           `yaml:"lives"`
	RestartDelay   time.Duration `yaml:"restart_delay"`
	ScoreOnRestart string        `yaml:"score_on_restart"` // "reset" or "keep" after game over
	KeyHold        time.Duration `yaml:"key_hold"`         // Synthesized key-up delay for terminals
}

// Score restart policies.
const (
	ScoreReset = "reset"
	ScoreKeep  = "keep"
)

// Validate reports every invalid setting at once.
func (c ArkanoidConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.World.Columns <= 0 || c.World.Rows <= 0 {
		errs = append(errs, fmt.Errorf("tile grid must be positive, got %dx%d", c.World.Columns, c.World.Rows))
	}
	if c.World.EmptyBottomRows < 0 || c.World.EmptyBottomRows > c.World.Rows {
		errs = append(errs, fmt.Errorf("empty_bottom_rows must be within [0, rows], got %d", c.World.EmptyBottomRows))
	}
	if c.Physics.MaxStep <= 0 {
		errs = append(errs, fmt.Errorf("max_step must be positive, got %s", c.Physics.MaxStep))
	}
	if c.Physics.FallMargin < 0 || c.Physics.FallMargin >= c.World.Height {
		errs = append(errs, fmt.Errorf("fall_margin must be within [0, height), got %g", c.Physics.FallMargin))
	}
	if c.Physics.Microsteps < 1 {
		errs = append(errs, fmt.Errorf("microsteps must be at least 1, got %d", c.Physics.Microsteps))
	}
	if c.Paddle.WidthRatio <= 0 || c.Paddle.HeightRatio <= 0 {
		errs = append(errs, errors.New("paddle ratios must be positive"))
	}
	if c.Ball.RadiusRatio <= 0 {
		errs = append(errs, errors.New("ball radius_ratio must be positive"))
	}
	if c.Gameplay.Lives < 0 {
		errs = append(errs, fmt.Errorf("lives must not be negative, got %d", c.Gameplay.Lives))
	}
	switch c.Gameplay.ScoreOnRestart {
	case "", ScoreReset, ScoreKeep:
	default:
		errs = append(errs, fmt.Errorf("score_on_restart must be %q or %q, got %q", ScoreReset, ScoreKeep, c.Gameplay.ScoreOnRestart))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid arkanoid config: %w", err)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to launch speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
