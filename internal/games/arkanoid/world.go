// Package arkanoid implements the Arkanoid simulation: a ball, a paddle,
// destructible tiles and falling pickups in a fixed world of W x H units.
//
// The World is driven by the shell once per frame through Update, Render
// and OnKeyEvent. Collision responses that change the level (tile
// destruction, scoring, pickups, restarts) never run inside the detection
// pass; they are scheduled on an EventQueue and applied when due.
package arkanoid

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Status is the game status state machine.
type Status string

const (
	StatusInitial  Status = "initial-screen"
	StatusRunning  Status = "running"
	StatusLevelWon Status = "level-won"
	StatusGameOver Status = "game-over"
)

// World owns every entity of one game and advances them in time.
// It is not safe for concurrent use.
type World struct {
	cfg        config.ArkanoidConfig
	rng        Rand
	log        *log.Logger
	difficulty *config.DifficultyManager
	carryScore bool // keep the score when a won level restarts

	tiles   []Tile
	pickups []Pickup
	paddle  Paddle
	ball    Ball
	hasBall bool
	events  *EventQueue

	status Status
	speed  float64
	lives  int
	score  int
	ticks  int

	nextTileID   int
	nextPickupID int

	// Derived from cfg at construction
	tileW, tileH float64
	ballRadius   float64
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger that receives one debug entry per dispatched event.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(w *World) {
		if r != nil {
			w.rng = r
		}
	}
}

// WithDifficulty scales the launch speed of new balls by the current difficulty level.
func WithDifficulty(d *config.DifficultyManager) Option {
	return func(w *World) {
		w.difficulty = d
	}
}

// WithScoreCarry keeps the score across the automatic restart after a won level.
func WithScoreCarry(keep bool) Option {
	return func(w *World) {
		w.carryScore = keep
	}
}

// NewWorld creates a world on the initial screen. The level is generated
// when the game is started.
func NewWorld(cfg config.ArkanoidConfig, opts ...Option) *World {
	w := &World{
		cfg:    cfg,
		rng:    NewSimpleRNG(1),
		log:    log.New(io.Discard),
		events: NewEventQueue(),
		status: StatusInitial,
		speed:  1.0,
		lives:  cfg.Gameplay.Lives,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.tileW = cfg.World.Width / float64(cfg.World.Columns)
	w.tileH = cfg.World.Height / float64(cfg.World.Rows)
	w.ballRadius = w.tileW * cfg.Ball.RadiusRatio
	w.resetPaddle()
	return w
}

// Status returns the current game status.
func (w *World) Status() Status {
	return w.status
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// Lives returns the number of spare balls.
func (w *World) Lives() int {
	return w.lives
}

// Start begins a new game from any status.
func (w *World) Start() {
	w.restart(false)
}

// Update advances the simulation by a wall-clock delta.
func (w *World) Update(delta time.Duration) {
	w.events.Advance(delta)

	// Long frames are cut short so a single step cannot skip over thin geometry.
	step := min(delta, w.cfg.Physics.MaxStep)
	step = time.Duration(float64(step) * w.speed)

	w.events.Drain(w.dispatch)

	if w.status != StatusRunning || step <= 0 {
		return
	}
	w.ticks++
	dt := step.Seconds()

	if w.hasBall && w.ballFell() {
		w.events.Schedule(BallFell())
	}

	w.updatePickups(dt)
	w.integrate(dt)
}

// OnKeyEvent applies a key press (isDown) or release.
func (w *World) OnKeyEvent(isDown bool, a core.Action) {
	switch a {
	case core.ActionLeft:
		w.paddle.MoveLeft = isDown
	case core.ActionRight:
		w.paddle.MoveRight = isDown
	case core.ActionLaunch:
		if !isDown {
			return
		}
		// Key events arrive between ticks, never during detection, so
		// they are dispatched at once.
		if w.status == StatusInitial {
			w.dispatch(Restart(false))
			return
		}
		w.dispatch(ReleaseBall())
	case core.ActionRestart:
		if isDown {
			w.dispatch(Restart(false))
		}
	}
}

// ballFell reports whether the ball crossed the lower arena boundary. The
// line never sits above the paddle bottom: a ball the paddle has just sent
// back may still overlap it by one microstep.
func (w *World) ballFell() bool {
	limit := max(w.cfg.World.Height-w.cfg.Physics.FallMargin, w.paddle.Body.Bottom())
	return w.ball.Bounds().Bottom() > limit
}

// updatePickups moves pickups down and schedules their removal.
func (w *World) updatePickups(dt float64) {
	fall := w.cfg.Pickups.FallSpeed * dt
	for i := range w.pickups {
		p := &w.pickups[i]
		hull := p.Fall(fall)

		if p.Body.Y > w.cfg.World.Height-p.Body.H/2 {
			w.events.Schedule(PickupMissed(p.ID))
			continue
		}
		// The swept hull catches pickups that would pass through the paddle within one step.
		if hull.Intersects(w.paddle.Body) {
			w.events.Schedule(PickupCaught(p.ID))
		}
	}
}

// tickContacts remembers what was already reported during one tick.
type tickContacts struct {
	tiles   map[int]bool
	english bool
}

// integrate moves paddle and ball by dt. When the full step may collide it
// is replayed in microsteps with collision response enabled.
func (w *World) integrate(dt float64) {
	paddle, ball := w.paddle, w.ball

	w.paddle.Move(dt, w.cfg.World.Width)
	if !w.hasBall {
		return
	}
	w.ball.Move(dt)
	if !w.detect(nil) && !w.outOfBounds() {
		return
	}

	w.paddle, w.ball = paddle, ball

	n := max(w.cfg.Physics.Microsteps, 1)
	micro := dt / float64(n)
	contacts := &tickContacts{tiles: make(map[int]bool)}
	for range n {
		w.paddle.Move(micro, w.cfg.World.Width)
		w.ball.Move(micro)
		w.correctBoundaries()
		w.detect(contacts)
	}
}

// detect tests the ball against tiles and the paddle. With contacts nil it
// is a dry run without side effects; otherwise it reflects the ball,
// applies paddle english and schedules tile hits.
func (w *World) detect(contacts *tickContacts) bool {
	body := w.ball.Bounds()
	var refl reflection
	hit := false

	for i := range w.tiles {
		t := &w.tiles[i]
		if !body.Intersects(t.Body) {
			continue
		}
		hit = true
		if contacts == nil {
			continue
		}
		refl.add(Classify(body, t.Body), body, t.Body, w.ball.Vel)
		if !contacts.tiles[t.ID] {
			contacts.tiles[t.ID] = true
			w.events.Schedule(TileHit(t.ID))
		}
	}

	paddleHit := body.Intersects(w.paddle.Body)
	if contacts == nil {
		return hit || paddleHit
	}
	if paddleHit {
		refl.add(Classify(body, w.paddle.Body), body, w.paddle.Body, w.ball.Vel)
	}

	refl.apply(&w.ball.Vel)
	if paddleHit && !contacts.english {
		contacts.english = true
		w.ball.Vel.X += w.paddle.Velocity() * w.cfg.Physics.EnglishFactor
	}
	return hit || paddleHit
}

// outOfBounds reports whether any part of the ball is outside the arena.
func (w *World) outOfBounds() bool {
	b := w.ball.Bounds()
	return b.X < 0 || b.Y < 0 || b.Right() > w.cfg.World.Width || b.Bottom() > w.cfg.World.Height
}

// correctBoundaries reflects the ball off the arena walls and pulls it back inside.
func (w *World) correctBoundaries() {
	ww, wh := w.cfg.World.Width, w.cfg.World.Height
	b := &w.ball
	r := b.Radius

	if b.Pos.X-r < 0 {
		b.Pos.X = r
		b.Vel.X = math.Abs(b.Vel.X)
	}
	if b.Pos.X+r > ww {
		b.Pos.X = ww - r
		b.Vel.X = -math.Abs(b.Vel.X)
	}
	if b.Pos.Y-r < 0 {
		b.Pos.Y = r
		b.Vel.Y = math.Abs(b.Vel.Y)
	}
	if b.Pos.Y+r > wh {
		b.Pos.Y = wh - r
		b.Vel.Y = -math.Abs(b.Vel.Y)
	}
}
