package arkanoid

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func TestClassify(t *testing.T) {
	target := core.NewFRect(0, 0, 100, 100)

	tests := []struct {
		name     string
		x, y     float64
		expected Collision
	}{
		{"fully inside", 20, 20, CollisionInside},
		{"top-left corner", 0, 0, CollisionTopLeft},
		{"far away", 120, 120, CollisionNone},
		{"right face", 100, 60, CollisionRight},
		{"left face", 0, 50, CollisionLeft},
		{"top face", 50, 0, CollisionAbove},
		{"bottom face", 50, 100, CollisionBelow},
		{"bottom-right corner", 100, 100, CollisionBottomRight},
		{"right face, mostly outside", 105, 50, CollisionRight},
		{"single corner nearer to the left side", 3, 8, CollisionLeft},
		{"touching the right edge", 110, 50, CollisionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ball := Ball{Pos: core.Vec2{X: tc.x, Y: tc.y}, Radius: 10}
			if got := Classify(ball.Bounds(), target); got != tc.expected {
				t.Errorf("Classify(ball at %v,%v) = %s, expected %s", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClassifyStraddling(t *testing.T) {
	// Body wider and taller than the target: overlap, but no corner inside.
	body := core.NewFRect(-10, -10, 120, 120)
	target := core.NewFRect(0, 0, 100, 100)

	if got := Classify(body, target); got != CollisionNone {
		t.Errorf("Classify(straddling) = %s, expected none", got)
	}
}

func TestReflection(t *testing.T) {
	target := core.NewFRect(0, 0, 100, 100)

	tests := []struct {
		name     string
		hits     []Collision
		ball     core.FRect
		vel      core.Vec2
		expected core.Vec2
	}{
		{
			name:     "left face inverts X",
			hits:     []Collision{CollisionLeft},
			vel:      core.Vec2{X: 100, Y: 50},
			expected: core.Vec2{X: -100, Y: 50},
		},
		{
			name:     "already moving away is kept",
			hits:     []Collision{CollisionLeft},
			vel:      core.Vec2{X: -100, Y: 50},
			expected: core.Vec2{X: -100, Y: 50},
		},
		{
			name:     "two bodies flip Y once",
			hits:     []Collision{CollisionAbove, CollisionAbove},
			vel:      core.Vec2{X: 0, Y: 200},
			expected: core.Vec2{X: 0, Y: -200},
		},
		{
			name:     "corner inverts both",
			hits:     []Collision{CollisionBottomRight},
			vel:      core.Vec2{X: -30, Y: -40},
			expected: core.Vec2{X: 30, Y: 40},
		},
		{
			name:     "inside pushes away from the center",
			hits:     []Collision{CollisionInside},
			ball:     core.NewFRect(10, 70, 20, 20),
			vel:      core.Vec2{X: 30, Y: -40},
			expected: core.Vec2{X: -30, Y: 40},
		},
		{
			name:     "no contact",
			hits:     []Collision{CollisionNone},
			vel:      core.Vec2{X: 30, Y: -40},
			expected: core.Vec2{X: 30, Y: -40},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var r reflection
			for _, c := range tc.hits {
				r.add(c, tc.ball, target, tc.vel)
			}
			v := tc.vel
			r.apply(&v)
			if v != tc.expected {
				t.Errorf("velocity = %v, expected %v", v, tc.expected)
			}
		})
	}
}

func TestInvariantError(t *testing.T) {
	err := &InvariantError{Op: "Classify", Detail: "3 corners inside"}
	if !strings.Contains(err.Error(), "Classify") || !strings.Contains(err.Error(), "3 corners inside") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestBallBoundsAndMove(t *testing.T) {
	b := Ball{Pos: core.Vec2{X: 50, Y: 40}, Vel: core.Vec2{X: 100, Y: -200}, Radius: 5}

	if got := b.Bounds(); got != core.NewFRect(45, 35, 10, 10) {
		t.Errorf("Bounds() = %+v", got)
	}

	b.Move(0.5)
	if b.Pos != (core.Vec2{X: 100, Y: -60}) {
		t.Errorf("after Move(0.5) Pos = %v, expected {100 -60}", b.Pos)
	}
}
