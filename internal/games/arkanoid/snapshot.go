package arkanoid

import "math"

// Snapshot contains the complete world state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Ticks  int
	Status string
	Score  int
	Lives  int
	Speed  float64

	PaddleX float64
	PaddleW float64

	HasBall bool
	Ball    [5]float64 // X, Y, VX, VY, Radius

	// Each tile is 2 ints: ID, Hits
	TileData []int

	// Each pickup is 3 ints: ID, Type, Y (rounded)
	PickupData []int

	// Each pending event is 3 ints: Kind, ID, Deadline (ns)
	PendingData []int64

	RNGState uint64 // Zero when the random source is not a SimpleRNG
}

// Snapshot returns the current world state as a Snapshot.
func (w *World) Snapshot() Snapshot {
	tileData := make([]int, 0, len(w.tiles)*2)
	for _, t := range w.tiles {
		tileData = append(tileData, t.ID, t.Hits)
	}

	pickupData := make([]int, 0, len(w.pickups)*3)
	for _, p := range w.pickups {
		pickupData = append(pickupData, p.ID, int(p.Type), int(math.Round(p.Body.Y)))
	}

	pending := w.events.Pending()
	pendingData := make([]int64, 0, len(pending)*3)
	for _, e := range pending {
		pendingData = append(pendingData, int64(e.Kind), int64(e.ID), int64(e.Deadline))
	}

	snap := Snapshot{
		Ticks:         w.ticks,
		Status:        string(w.status),
		Score:         w.score,
		Lives:         w.lives,
		Speed:         w.speed,
		PaddleX:       w.paddle.Body.X,
		PaddleW:       w.paddle.Body.W,
		HasBall:       w.hasBall,
		TileData:      tileData,
		PickupData:    pickupData,
		PendingData:   pendingData,
	}
	if w.hasBall {
		snap.Ball = [5]float64{w.ball.Pos.X, w.ball.Pos.Y, w.ball.Vel.X, w.ball.Vel.Y, w.ball.Radius}
	}
	if rng, ok := w.rng.(*SimpleRNG); ok {
		snap.RNGState = rng.State()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Ticks) //#nosec G115 -- hash computation
	for _, c := range snap.Status {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Speed)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleW)

	if snap.HasBall {
		h = h*31 + 1
		for _, v := range snap.Ball {
			h = h*31 + math.Float64bits(v)
		}
	}

	for _, v := range snap.TileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.PickupData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.PendingData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = h*31 + snap.RNGState

	return h
}
