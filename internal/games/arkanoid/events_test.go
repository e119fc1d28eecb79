package arkanoid

import (
	"testing"
	"time"
)

func TestEventQueueOrder(t *testing.T) {
	q := NewEventQueue()
	q.ScheduleAfter(SetSpeed(3), 3*time.Second)
	q.ScheduleAfter(SetSpeed(1), time.Second)
	q.Schedule(SetSpeed(0))
	q.ScheduleAfter(SetSpeed(2), 2*time.Second)

	q.Advance(5 * time.Second)

	var got []float64
	n := q.Drain(func(e Event) {
		got = append(got, e.Factor)
	})

	if n != 4 {
		t.Fatalf("Drain() = %d, expected 4", n)
	}
	for i, f := range got {
		if f != float64(i) {
			t.Errorf("event %d has factor %g, expected deadline order", i, f)
		}
	}
}

func TestEventQueueFIFOOnTies(t *testing.T) {
	q := NewEventQueue()
	for id := range 5 {
		q.Schedule(TileHit(id))
	}

	var ids []int
	q.Drain(func(e Event) { ids = append(ids, e.ID) })

	for i, id := range ids {
		if id != i {
			t.Fatalf("ids = %v, expected scheduling order", ids)
		}
	}
}

func TestEventQueueNotDue(t *testing.T) {
	q := NewEventQueue()
	q.ScheduleAfter(Restart(false), 10*time.Second)
	q.Advance(5 * time.Second)

	if n := q.Drain(func(Event) { t.Error("event ran before its deadline") }); n != 0 {
		t.Errorf("Drain() = %d, expected 0", n)
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", q.Len())
	}

	e, ok := q.Peek()
	if !ok || e.Deadline != 10*time.Second {
		t.Errorf("Peek() = %+v, %v", e, ok)
	}

	q.Advance(5 * time.Second)
	if n := q.Drain(func(Event) {}); n != 1 {
		t.Errorf("Drain() at the deadline = %d, expected 1", n)
	}
}

func TestEventQueueDrainSurvivesClear(t *testing.T) {
	tests := []struct {
		name     string
		followUp bool
		expected []EventKind
	}{
		{
			name:     "clear drops the rest",
			expected: []EventKind{EventRestart},
		},
		{
			name:     "events scheduled after clear still run",
			followUp: true,
			expected: []EventKind{EventRestart, EventReleaseBall},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := NewEventQueue()
			q.Schedule(Restart(false))
			q.Schedule(TileHit(1))
			q.Schedule(TileHit(2))
			q.ScheduleAfter(SetSpeed(1), time.Second)

			var ran []EventKind
			q.Drain(func(e Event) {
				ran = append(ran, e.Kind)
				if e.Kind == EventRestart {
					q.Clear()
					if tc.followUp {
						q.Schedule(ReleaseBall())
					}
				}
			})

			if len(ran) != len(tc.expected) {
				t.Fatalf("ran %v, expected %v", ran, tc.expected)
			}
			for i := range ran {
				if ran[i] != tc.expected[i] {
					t.Errorf("ran %v, expected %v", ran, tc.expected)
				}
			}
			if q.Len() != 0 {
				t.Errorf("Len() = %d after drain, expected 0", q.Len())
			}
		})
	}
}

func TestEventQueuePending(t *testing.T) {
	q := NewEventQueue()
	q.ScheduleAfter(SetBallSize(2), 2*time.Second)
	q.ScheduleAfter(SetSpeed(1), time.Second)

	pending := q.Pending()
	if len(pending) != 2 || pending[0].Kind != EventSetSpeed || pending[1].Kind != EventSetBallSize {
		t.Errorf("Pending() = %+v", pending)
	}
	if q.Len() != 2 {
		t.Error("Pending() must not consume the queue")
	}

	if _, ok := NewEventQueue().Pop(); ok {
		t.Error("Pop() on an empty queue should report false")
	}
}
