package arkanoid

import (
	"slices"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// dispatch applies one event. It is the only place gameplay state changes.
func (w *World) dispatch(e Event) {
	w.log.Debug("event", "kind", e.Kind, "id", e.ID, "at", w.events.Now())

	switch e.Kind {
	case EventTileHit:
		w.onTileHit(e.ID)
	case EventBallFell:
		w.onBallFell()
	case EventPickupCaught:
		w.onPickupCaught(e.ID)
	case EventPickupMissed:
		w.removePickup(e.ID)
	case EventLevelWon:
		w.onLevelWon()
	case EventGameOver:
		w.onGameOver()
	case EventRestart:
		w.restart(e.KeepScore)
	case EventReleaseBall:
		w.onReleaseBall()
	case EventSetSpeed:
		w.speed = e.Factor
	case EventSetBallSize:
		w.setBallSize(e.Factor)
	}
}

func (w *World) onTileHit(id int) {
	i := slices.IndexFunc(w.tiles, func(t Tile) bool { return t.ID == id })
	if i < 0 {
		return
	}

	w.tiles[i].Hits--
	if w.tiles[i].Hits > 0 {
		return
	}

	tile := w.tiles[i]
	w.score += w.cfg.Scoring.TileReward
	if w.rng.Intn(100) < w.cfg.Pickups.Chance {
		w.spawnPickup(tile)
	}
	w.tiles = slices.Delete(w.tiles, i, i+1)

	if len(w.tiles) == 0 && w.status == StatusRunning {
		w.events.Schedule(LevelWon())
	}
}

// spawnPickup drops a half-size pickup from the center of a destroyed tile.
func (w *World) spawnPickup(t Tile) {
	body := t.Body
	body.W *= 0.5
	body.H *= 0.5
	body.X += (t.Body.W - body.W) / 2
	body.Y += (t.Body.H - body.H) / 2

	w.pickups = append(w.pickups, Pickup{
		ID:    w.nextPickupID,
		Type:  PickupType(w.rng.Intn(int(PickupCount))),
		Body:  body,
		Color: t.Color,
	})
	w.nextPickupID++
}

func (w *World) onBallFell() {
	if !w.hasBall {
		return
	}
	w.hasBall = false
	w.score -= w.cfg.Scoring.BallPenalty

	if w.lives == 0 {
		w.events.Schedule(GameOver())
		return
	}
	w.lives--
}

func (w *World) onPickupCaught(id int) {
	i := slices.IndexFunc(w.pickups, func(p Pickup) bool { return p.ID == id })
	if i < 0 {
		return
	}
	p := w.pickups[i]
	w.pickups = slices.Delete(w.pickups, i, i+1)
	w.score += w.cfg.Scoring.PickupReward

	pc := w.cfg.Pickups
	switch p.Type {
	case PickupSpeedUp:
		w.speed = pc.SpeedUpFactor
		w.events.ScheduleAfter(SetSpeed(1.0), pc.EffectDuration)

	case PickupSlowDown:
		w.speed = pc.SlowDownFactor
		w.events.ScheduleAfter(SetSpeed(1.0), pc.EffectDuration)

	case PickupShrinkBall:
		if !w.hasBall || pc.ShrinkFactor <= 0 || w.ball.Radius*pc.ShrinkFactor < w.cfg.Ball.MinRadius {
			return
		}
		w.setBallSize(pc.ShrinkFactor)
		w.events.ScheduleAfter(SetBallSize(1/pc.ShrinkFactor), pc.EffectDuration)

	case PickupWidenPaddle:
		maxW := w.cfg.World.Width * w.cfg.Paddle.MaxWidthRatio
		w.paddle.Body.W = core.ClampF(w.paddle.Body.W*pc.WidenFactor, 0, maxW)
		w.paddle.clamp(w.cfg.World.Width)
	}
}

func (w *World) removePickup(id int) {
	w.pickups = slices.DeleteFunc(w.pickups, func(p Pickup) bool { return p.ID == id })
}

func (w *World) onLevelWon() {
	if w.status != StatusRunning {
		return
	}
	w.status = StatusLevelWon
	w.events.ScheduleAfter(Restart(w.carryScore), w.cfg.Gameplay.RestartDelay)
}

func (w *World) onGameOver() {
	if w.status != StatusRunning {
		return
	}
	w.status = StatusGameOver
	snap := w.Snapshot()
	w.log.Debug("game over", "score", w.score, "ticks", w.ticks, "hash", snap.Hash())
	keep := w.cfg.Gameplay.ScoreOnRestart == config.ScoreKeep
	w.events.ScheduleAfter(Restart(keep), w.cfg.Gameplay.RestartDelay)
}

func (w *World) onReleaseBall() {
	if w.hasBall || w.status != StatusRunning {
		return
	}
	w.spawnBall()
}

// setBallSize scales the ball radius within [MinRadius, base radius].
func (w *World) setBallSize(f float64) {
	if !w.hasBall {
		return
	}
	w.ball.Radius = core.ClampF(w.ball.Radius*f, w.cfg.Ball.MinRadius, w.ballRadius)
}

// restart regenerates the level and puts a launched ball into play.
func (w *World) restart(keepScore bool) {
	w.events.Clear()
	w.tiles = w.tiles[:0]
	w.pickups = w.pickups[:0]
	w.generateTiles()

	w.speed = 1.0
	w.lives = w.cfg.Gameplay.Lives
	if !keepScore {
		w.score = 0
	}

	w.resetPaddle()
	w.spawnBall()
	w.status = StatusRunning
}

// generateTiles fills the grid sparsely. The bottom rows stay empty so the
// ball has room above the paddle.
func (w *World) generateTiles() {
	wc := w.cfg.World
	for x := range wc.Columns {
		for y := range wc.Rows - wc.EmptyBottomRows {
			if w.rng.Intn(100) >= wc.TileChance {
				continue
			}
			hits := 1
			if w.rng.Intn(100) < wc.HardTileChance {
				hits = 2
			}
			w.tiles = append(w.tiles, Tile{
				ID:    w.nextTileID,
				Body:  core.NewFRect(float64(x)*w.tileW, float64(y)*w.tileH, w.tileW, w.tileH),
				Color: tileColors[w.rng.Intn(len(tileColors))],
				Hits:  hits,
			})
			w.nextTileID++
		}
	}
}

// resetPaddle centers the paddle just above the bottom of the arena.
func (w *World) resetPaddle() {
	ww, wh := w.cfg.World.Width, w.cfg.World.Height
	pw := ww * w.cfg.Paddle.WidthRatio
	ph := wh * w.cfg.Paddle.HeightRatio

	w.paddle = Paddle{
		Body:      core.NewFRect(ww/2-pw/2, wh-ph*1.2-ph/2, pw, ph),
		Speed:     w.cfg.Paddle.Speed,
		MoveLeft:  w.paddle.MoveLeft,
		MoveRight: w.paddle.MoveRight,
	}
}

// spawnBall places a new ball just above the paddle center, moving up.
func (w *World) spawnBall() {
	speed := w.cfg.Ball.Speed
	if w.difficulty != nil {
		speed = w.difficulty.Speed(speed, w.score, w.ticks)
	}
	spread := w.cfg.Ball.Spread
	r := w.ballRadius

	w.ball = Ball{
		Pos: core.Vec2{
			X: w.paddle.Body.Center().X,
			Y: w.paddle.Body.Y - r - 1,
		},
		Vel:    core.Vec2{X: (w.rng.Float64() - 0.5) * float64(spread), Y: -speed},
		Radius: r,
	}
	w.hasBall = true
}
