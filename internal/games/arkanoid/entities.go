package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Tile is a destructible brick. Its body never changes after creation.
type Tile struct {
	ID    int
	Body  core.FRect
	Color core.Color
	Hits  int // Remaining hits, removed at zero
}

// Texture returns the texture name used to draw the tile.
func (t Tile) Texture() string {
	if t.Hits > 1 {
		return "tile_hard"
	}
	return "tile"
}

// tileColors is the palette tiles are painted from.
var tileColors = []core.Color{core.ColorRed, core.ColorBlue, core.ColorGreen}

// Paddle is the player-controlled rectangle.
type Paddle struct {
	Body      core.FRect
	Speed     float64
	MoveLeft  bool
	MoveRight bool
}

// Velocity returns the horizontal speed implied by the held keys.
// Holding both directions cancels out.
func (p Paddle) Velocity() float64 {
	v := 0.0
	if p.MoveLeft {
		v -= p.Speed
	}
	if p.MoveRight {
		v += p.Speed
	}
	return v
}

// Move advances the paddle by dt seconds and keeps it inside [0, worldW].
func (p *Paddle) Move(dt, worldW float64) {
	p.Body.X += p.Velocity() * dt
	p.clamp(worldW)
}

func (p *Paddle) clamp(worldW float64) {
	p.Body.X = core.ClampF(p.Body.X, 0, worldW-p.Body.W)
}

// PickupType represents the effect of a falling pickup.
type PickupType int

const (
	PickupSpeedUp     PickupType = iota // Double game speed for a while
	PickupSlowDown                      // Back to normal speed for a while
	PickupShrinkBall                    // Halve the ball radius for a while
	PickupWidenPaddle                   // Double paddle width until restart
	PickupCount                         // Sentinel for counting types
)

// String returns the name of the pickup type.
func (p PickupType) String() string {
	switch p {
	case PickupSpeedUp:
		return "speed_up"
	case PickupSlowDown:
		return "slow_down"
	case PickupShrinkBall:
		return "shrink_ball"
	case PickupWidenPaddle:
		return "widen_paddle"
	default:
		return "unknown"
	}
}

// Texture returns the texture name used to draw the pickup.
func (p PickupType) Texture() string {
	return "pickup_" + p.String()
}

// Pickup is a falling bonus spawned by a destroyed tile.
type Pickup struct {
	ID    int
	Type  PickupType
	Body  core.FRect
	Color core.Color
}

// Fall moves the pickup down and returns the area it swept through.
func (p *Pickup) Fall(distance float64) core.FRect {
	hull := p.Body
	p.Body.Y += distance
	hull.H = p.Body.Y - hull.Y + hull.H
	return hull
}
