package tui

import (
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// keyEvent is a synthesized press or release of a held action.
type keyEvent struct {
	down   bool
	action core.Action
}

// keyHold turns terminal key presses, which carry no release event, into
// press/release pairs. A movement key counts as held until no repeat has
// arrived for the hold duration.
type keyHold struct {
	hold time.Duration
	last map[core.Action]time.Time
}

func newKeyHold(hold time.Duration) keyHold {
	return keyHold{hold: hold, last: make(map[core.Action]time.Time)}
}

// press records a press at now. Pressing one direction releases the other.
// Only movement actions are held.
func (h keyHold) press(a core.Action, now time.Time) []keyEvent {
	if !a.IsMovement() {
		return nil
	}

	var events []keyEvent
	if opp := opposite(a); opp != core.ActionNone {
		if _, held := h.last[opp]; held {
			delete(h.last, opp)
			events = append(events, keyEvent{down: false, action: opp})
		}
	}

	_, held := h.last[a]
	h.last[a] = now
	if !held {
		events = append(events, keyEvent{down: true, action: a})
	}
	return events
}

// expire releases every action whose last repeat is older than the hold.
func (h keyHold) expire(now time.Time) []keyEvent {
	var events []keyEvent
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		t, held := h.last[a]
		if held && now.Sub(t) >= h.hold {
			delete(h.last, a)
			events = append(events, keyEvent{down: false, action: a})
		}
	}
	return events
}

// releaseAll releases every held action.
func (h keyHold) releaseAll() []keyEvent {
	var events []keyEvent
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if _, held := h.last[a]; held {
			delete(h.last, a)
			events = append(events, keyEvent{down: false, action: a})
		}
	}
	return events
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	default:
		return core.ActionNone
	}
}
