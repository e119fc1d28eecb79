package arkanoid

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Ball is the moving circle. Pos is its center, Vel is in world units per second.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// Bounds returns the square enclosing the ball, used for all collision tests.
func (b Ball) Bounds() core.FRect {
	return core.NewFRect(b.Pos.X-b.Radius, b.Pos.Y-b.Radius, 2*b.Radius, 2*b.Radius)
}

// Move advances the ball by dt seconds.
func (b *Ball) Move(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// Collision describes how a ball overlaps a target rectangle.
// Faces and corners are named from the target's point of view:
// CollisionLeft means the ball hit the target's left face.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionLeft
	CollisionRight
	CollisionAbove
	CollisionBelow
	CollisionTopLeft
	CollisionTopRight
	CollisionBottomLeft
	CollisionBottomRight
	CollisionInside
)

// String returns the collision name.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionAbove:
		return "above"
	case CollisionBelow:
		return "below"
	case CollisionTopLeft:
		return "top-left"
	case CollisionTopRight:
		return "top-right"
	case CollisionBottomLeft:
		return "bottom-left"
	case CollisionBottomRight:
		return "bottom-right"
	case CollisionInside:
		return "inside"
	default:
		return "unknown"
	}
}

// direction returns the signs the ball velocity should take after the hit.
// Zero means the axis is unaffected. CollisionInside has no preferred
// direction and returns zeros.
func (c Collision) direction() (dx, dy float64) {
	switch c {
	case CollisionLeft:
		return -1, 0
	case CollisionRight:
		return 1, 0
	case CollisionAbove:
		return 0, -1
	case CollisionBelow:
		return 0, 1
	case CollisionTopLeft:
		return -1, -1
	case CollisionTopRight:
		return 1, -1
	case CollisionBottomLeft:
		return -1, 1
	case CollisionBottomRight:
		return 1, 1
	default:
		return 0, 0
	}
}

// InvariantError reports geometry that cannot happen for two axis-aligned
// rectangles. It is raised with panic.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("arkanoid: invariant violated in %s: %s", e.Op, e.Detail)
}

// Corner bits, in the order returned by FRect.Corners.
const (
	cornerTL uint8 = 1 << iota
	cornerTR
	cornerBR
	cornerBL
)

// cornerEpsilon is the distance difference under which a single-corner
// overlap is treated as a true corner hit.
const cornerEpsilon = 1e-3

// Classify infers which face or corner of target the ball's bounding square
// entered through. It panics with *InvariantError when exactly three corners
// (or two opposite corners) of body lie inside target.
func Classify(body, target core.FRect) Collision {
	if !body.Intersects(target) {
		return CollisionNone
	}

	corners := body.Corners()
	var mask uint8
	inside := 0
	for i, c := range corners {
		if target.ContainsPoint(c) {
			mask |= 1 << i
			inside++
		}
	}

	switch inside {
	case 0:
		// Overlap without a contained corner: the body straddles the target.
		return CollisionNone
	case 4:
		return CollisionInside
	case 3:
		panic(&InvariantError{Op: "Classify", Detail: fmt.Sprintf("3 corners inside (mask %04b) for %+v vs %+v", mask, body, target)})
	case 2:
		switch mask {
		case cornerTL | cornerTR:
			return CollisionBelow
		case cornerBL | cornerBR:
			return CollisionAbove
		case cornerTL | cornerBL:
			return CollisionRight
		case cornerTR | cornerBR:
			return CollisionLeft
		default:
			panic(&InvariantError{Op: "Classify", Detail: fmt.Sprintf("opposite corners inside (mask %04b) for %+v vs %+v", mask, body, target)})
		}
	}

	var p core.Vec2
	var corner uint8
	for i, c := range corners {
		if mask&(1<<i) != 0 {
			p, corner = c, 1<<i
		}
	}

	hSide, hDist := CollisionLeft, p.X-target.X
	if d := target.Right() - p.X; d < hDist {
		hSide, hDist = CollisionRight, d
	}
	vSide, vDist := CollisionAbove, p.Y-target.Y
	if d := target.Bottom() - p.Y; d < vDist {
		vSide, vDist = CollisionBelow, d
	}

	if math.Abs(hDist-vDist) <= cornerEpsilon {
		switch corner {
		case cornerBR:
			return CollisionTopLeft
		case cornerBL:
			return CollisionTopRight
		case cornerTR:
			return CollisionBottomLeft
		default:
			return CollisionBottomRight
		}
	}
	if hDist < vDist {
		return hSide
	}
	return vSide
}

// reflection accumulates the velocity changes requested by every body the
// ball overlaps in one detection pass. Each axis changes at most once.
type reflection struct {
	flipX, flipY bool
	signX, signY float64
}

// add records the response to hitting target.
func (r *reflection) add(c Collision, ball, target core.FRect, vel core.Vec2) {
	dx, dy := c.direction()
	if c == CollisionInside {
		dx = away(ball.Center().X, target.Center().X, vel.X)
		dy = away(ball.Center().Y, target.Center().Y, vel.Y)
	}
	if dx != 0 && !r.flipX {
		r.flipX, r.signX = true, dx
	}
	if dy != 0 && !r.flipY {
		r.flipY, r.signY = true, dy
	}
}

// apply points each flipped velocity component away from what was hit.
// A component already moving away is left alone, so lingering overlap
// over several microsteps cannot flip it back.
func (r reflection) apply(v *core.Vec2) {
	if r.flipX {
		v.X = r.signX * math.Abs(v.X)
	}
	if r.flipY {
		v.Y = r.signY * math.Abs(v.Y)
	}
}

// away returns the direction from b towards a, or the reverse of v when the
// centers coincide.
func away(a, b, v float64) float64 {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case v > 0:
		return -1
	default:
		return 1
	}
}
