package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func TestKeyHold(t *testing.T) {
	start := time.Unix(0, 0)
	at := func(ms int) time.Time { return start.Add(time.Duration(ms) * time.Millisecond) }

	tests := []struct {
		name     string
		run      func(h keyHold) []keyEvent
		expected []keyEvent
	}{
		{
			name: "first press is a key down",
			run: func(h keyHold) []keyEvent {
				return h.press(core.ActionLeft, at(0))
			},
			expected: []keyEvent{{down: true, action: core.ActionLeft}},
		},
		{
			name: "repeats are swallowed",
			run: func(h keyHold) []keyEvent {
				h.press(core.ActionLeft, at(0))
				return h.press(core.ActionLeft, at(50))
			},
			expected: nil,
		},
		{
			name: "opposite direction releases the first",
			run: func(h keyHold) []keyEvent {
				h.press(core.ActionLeft, at(0))
				return h.press(core.ActionRight, at(10))
			},
			expected: []keyEvent{
				{down: false, action: core.ActionLeft},
				{down: true, action: core.ActionRight},
			},
		},
		{
			name: "held before the timeout",
			run: func(h keyHold) []keyEvent {
				h.press(core.ActionRight, at(0))
				return h.expire(at(149))
			},
			expected: nil,
		},
		{
			name: "released after the timeout",
			run: func(h keyHold) []keyEvent {
				h.press(core.ActionRight, at(0))
				return h.expire(at(150))
			},
			expected: []keyEvent{{down: false, action: core.ActionRight}},
		},
		{
			name: "repeat extends the hold",
			run: func(h keyHold) []keyEvent {
				h.press(core.ActionRight, at(0))
				h.press(core.ActionRight, at(100))
				return h.expire(at(200))
			},
			expected: nil,
		},
		{
			name: "only movement is held",
			run: func(h keyHold) []keyEvent {
				return h.press(core.ActionLaunch, at(0))
			},
			expected: nil,
		},
		{
			name: "release all",
			run: func(h keyHold) []keyEvent {
				h.press(core.ActionLeft, at(0))
				events := h.releaseAll()
				return append(events, h.expire(at(1000))...)
			},
			expected: []keyEvent{{down: false, action: core.ActionLeft}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.run(newKeyHold(150 * time.Millisecond))
			if len(got) != len(tc.expected) {
				t.Fatalf("events = %+v, expected %+v", got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("event %d = %+v, expected %+v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}
