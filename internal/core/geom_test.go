package core

import "testing"

func TestFRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     FRect
		expected bool
	}{
		{
			name:     "overlapping",
			a:        NewFRect(0, 0, 100, 100),
			b:        NewFRect(90, 50, 20, 20),
			expected: true,
		},
		{
			name:     "touching right edge",
			a:        NewFRect(0, 0, 100, 100),
			b:        NewFRect(100, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching bottom edge",
			a:        NewFRect(0, 0, 100, 100),
			b:        NewFRect(0, 100, 10, 10),
			expected: false,
		},
		{
			name:     "sub-unit overlap",
			a:        NewFRect(0, 0, 100, 100),
			b:        NewFRect(99.5, 99.5, 10, 10),
			expected: true,
		},
		{
			name:     "empty rect never intersects",
			a:        NewFRect(0, 0, 100, 100),
			b:        NewFRect(10, 10, 0, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestFRectContainsPoint(t *testing.T) {
	r := NewFRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", Vec2{15, 15}, true},
		{"top-left corner (inclusive)", Vec2{10, 10}, true},
		{"right edge (exclusive)", Vec2{30, 15}, false},
		{"bottom edge (exclusive)", Vec2{15, 25}, false},
		{"outside left", Vec2{9.99, 15}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ContainsPoint(tc.p); got != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestFRectCorners(t *testing.T) {
	c := NewFRect(1, 2, 10, 20).Corners()
	expected := [4]Vec2{{1, 2}, {11, 2}, {11, 22}, {1, 22}}
	if c != expected {
		t.Errorf("Corners() = %v, expected %v", c, expected)
	}
}

func TestFRectScaled(t *testing.T) {
	tests := []struct {
		name     string
		r        FRect
		expected Rect
	}{
		{
			name:     "tile maps to cells",
			r:        NewFRect(100, 75, 100, 75),
			expected: NewRect(8, 2, 8, 3),
		},
		{
			name:     "thin paddle keeps one row",
			r:        NewFRect(400, 737.25, 200, 7.5),
			expected: NewRect(32, 23, 16, 1),
		},
		{
			name:     "origin",
			r:        NewFRect(0, 0, 1000, 750),
			expected: NewRect(0, 0, 80, 24),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Scaled(1000, 750, 80, 24)
			if got != tc.expected {
				t.Errorf("Scaled() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{1, 2}.Add(Vec2{3, 4}).Scale(0.5)
	if v != (Vec2{2, 3}) {
		t.Errorf("Add/Scale = %v, expected {2 3}", v)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
