package arkanoid

// Rand is the random source used for level generation, launch angles and
// pickups. Inject a seeded source for reproducible runs.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG so the whole state fits in a snapshot.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n). It returns 0 for n <= 0.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits have a longer period than low bits in an LCG.
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// State returns the generator state.
func (r *SimpleRNG) State() uint64 {
	return r.state
}
