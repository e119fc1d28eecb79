package arkanoid

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Texture names requested from the surface.
const (
	TextureBall   = "ball"
	TexturePaddle = "paddle"
)

// View is a read-only copy of everything a renderer needs.
type View struct {
	Tiles   []Tile
	Pickups []Pickup
	Paddle  Paddle
	Ball    Ball
	HasBall bool
	Status  Status
	Score   int
	Lives   int
	Speed   float64
	Pending int // Events waiting in the queue
}

// View returns a copy of the current world state.
func (w *World) View() View {
	return View{
		Tiles:   slices.Clone(w.tiles),
		Pickups: slices.Clone(w.pickups),
		Paddle:  w.paddle,
		Ball:    w.ball,
		HasBall: w.hasBall,
		Status:  w.status,
		Score:   w.score,
		Lives:   w.lives,
		Speed:   w.speed,
		Pending: w.events.Len(),
	}
}

// Render draws the world scaled into the surface. When the game is not
// running the overlay named after the status is drawn on top.
func (w *World) Render(dst core.Surface) {
	vw, vh := dst.Size()
	ww, wh := w.cfg.World.Width, w.cfg.World.Height
	toView := func(r core.FRect) core.Rect {
		return r.Scaled(ww, wh, vw, vh)
	}

	for _, t := range w.tiles {
		dst.FillRect(toView(t.Body), t.Color, t.Texture())
	}
	for _, p := range w.pickups {
		dst.FillRect(toView(p.Body), p.Color, p.Type.Texture())
	}
	dst.FillRect(toView(w.paddle.Body), core.ColorWhite, TexturePaddle)
	if w.hasBall {
		dst.FillRect(toView(w.ball.Bounds()), core.ColorBrightYellow, TextureBall)
	}

	if w.status != StatusRunning {
		dst.DrawOverlay(string(w.status))
		return
	}

	dst.DrawText(1, 0, fmt.Sprintf("Lives: %d", w.lives))
	score := fmt.Sprintf("Score: %d", w.score)
	dst.DrawText(vw-len(score)-1, 0, score)
}
