package arkanoid

import (
	"container/heap"
	"time"
)

// EventKind identifies a deferred gameplay effect.
type EventKind int

const (
	EventTileHit EventKind = iota
	EventBallFell
	EventPickupCaught
	EventPickupMissed
	EventLevelWon
	EventGameOver
	EventRestart
	EventReleaseBall
	EventSetSpeed
	EventSetBallSize
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventTileHit:
		return "tile-hit"
	case EventBallFell:
		return "ball-fell"
	case EventPickupCaught:
		return "pickup-caught"
	case EventPickupMissed:
		return "pickup-missed"
	case EventLevelWon:
		return "level-won"
	case EventGameOver:
		return "game-over"
	case EventRestart:
		return "restart"
	case EventReleaseBall:
		return "release-ball"
	case EventSetSpeed:
		return "set-speed"
	case EventSetBallSize:
		return "set-ball-size"
	default:
		return "unknown"
	}
}

// Event is a deferred effect. Only the fields relevant to Kind are set.
type Event struct {
	Kind      EventKind
	ID        int     // Tile or pickup id
	Factor    float64 // Speed or ball size ratio
	KeepScore bool    // Restart keeps the current score

	// Deadline is the queue time at which the event becomes due.
	Deadline time.Duration
}

// TileHit records that the ball touched tile id.
func TileHit(id int) Event { return Event{Kind: EventTileHit, ID: id} }

// BallFell records that the ball left the arena through the bottom.
func BallFell() Event { return Event{Kind: EventBallFell} }

// PickupCaught records that pickup id touched the paddle.
func PickupCaught(id int) Event { return Event{Kind: EventPickupCaught, ID: id} }

// PickupMissed records that pickup id left the arena.
func PickupMissed(id int) Event { return Event{Kind: EventPickupMissed, ID: id} }

// LevelWon ends the level after the last tile is gone.
func LevelWon() Event { return Event{Kind: EventLevelWon} }

// GameOver ends the game after the last ball is lost.
func GameOver() Event { return Event{Kind: EventGameOver} }

// Restart regenerates the level.
func Restart(keepScore bool) Event { return Event{Kind: EventRestart, KeepScore: keepScore} }

// ReleaseBall launches a new ball if none is in play.
func ReleaseBall() Event { return Event{Kind: EventReleaseBall} }

// SetSpeed sets the game speed multiplier.
func SetSpeed(f float64) Event { return Event{Kind: EventSetSpeed, Factor: f} }

// SetBallSize scales the ball radius.
func SetBallSize(f float64) Event { return Event{Kind: EventSetBallSize, Factor: f} }

// EventQueue orders events by deadline. Events with equal deadlines run in
// the order they were scheduled.
//
// The queue keeps its own clock, advanced by the owner once per tick.
// It is not safe for concurrent use.
type EventQueue struct {
	items eventHeap
	now   time.Duration
	seq   uint64
}

// NewEventQueue creates an empty queue with its clock at zero.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Now returns the queue clock.
func (q *EventQueue) Now() time.Duration {
	return q.now
}

// Advance moves the queue clock forward by d.
func (q *EventQueue) Advance(d time.Duration) {
	if d > 0 {
		q.now += d
	}
}

// Schedule enqueues e for the next drain.
func (q *EventQueue) Schedule(e Event) {
	q.ScheduleAfter(e, 0)
}

// ScheduleAfter enqueues e to run no earlier than delay from now.
func (q *EventQueue) ScheduleAfter(e Event, delay time.Duration) {
	e.Deadline = q.now + delay
	q.seq++
	heap.Push(&q.items, queued{event: e, seq: q.seq})
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return q.items.Len()
}

// Peek returns the earliest event without removing it.
func (q *EventQueue) Peek() (Event, bool) {
	if q.items.Len() == 0 {
		return Event{}, false
	}
	return q.items[0].event, true
}

// Pop removes and returns the earliest event.
func (q *EventQueue) Pop() (Event, bool) {
	if q.items.Len() == 0 {
		return Event{}, false
	}
	return heap.Pop(&q.items).(queued).event, true
}

// Clear drops every pending event. The clock is kept.
func (q *EventQueue) Clear() {
	q.items = q.items[:0]
}

// Drain runs fn for every due event in deadline order and returns how many
// ran. The queue is re-examined after each call, so fn may schedule new
// events or Clear the queue.
func (q *EventQueue) Drain(fn func(Event)) int {
	n := 0
	for {
		e, ok := q.Peek()
		if !ok || e.Deadline > q.now {
			return n
		}
		q.Pop()
		fn(e)
		n++
	}
}

// Pending returns a copy of the pending events in deadline order.
func (q *EventQueue) Pending() []Event {
	tmp := make(eventHeap, len(q.items))
	copy(tmp, q.items)
	out := make([]Event, 0, len(tmp))
	for tmp.Len() > 0 {
		out = append(out, heap.Pop(&tmp).(queued).event)
	}
	return out
}

type queued struct {
	event Event
	seq   uint64
}

// eventHeap implements heap.Interface.
type eventHeap []queued

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].event.Deadline != h[j].event.Deadline {
		return h[i].event.Deadline < h[j].event.Deadline
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(queued)) }

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
