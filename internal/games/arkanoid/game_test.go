package arkanoid

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

// resetSettings restores the package settings after a test changes them.
func resetSettings(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
		SetLogger(nil)
	})
}

func newTestGame(t *testing.T, id string) registry.Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g, err := registry.Create(id)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", id, err)
	}
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	g.Reset(cfg)
	return g
}

func TestRegisteredVariants(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"arkanoid", "Arkanoid"},
		{"arkanoid_endless", "Arkanoid (Endless)"},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			if !registry.Exists(tc.id) {
				t.Fatalf("%s is not registered", tc.id)
			}
			g := newTestGame(t, tc.id)
			if g.ID() != tc.id || g.Title() != tc.title {
				t.Errorf("got %s / %s, expected %s / %s", g.ID(), g.Title(), tc.id, tc.title)
			}

			state := g.State()
			if state.Status != string(StatusInitial) || state.GameOver {
				t.Errorf("initial state = %+v", state)
			}
			if state.Lives != 3 || state.Score != 0 {
				t.Errorf("initial lives=%d score=%d", state.Lives, state.Score)
			}
		})
	}
}

func TestGameLaunchAndUpdate(t *testing.T) {
	g := newTestGame(t, "arkanoid")

	g.OnKeyEvent(true, core.ActionLaunch)
	if g.State().Status != string(StatusRunning) {
		t.Fatalf("status = %s after launch", g.State().Status)
	}

	for range 60 {
		g.Update(frame)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if screen.Row(0) == "" {
		t.Error("render produced an empty HUD row")
	}

	ark, ok := g.(*Game)
	if !ok {
		t.Fatalf("registry returned %T", g)
	}
	if ark.KeyHold() != 150*time.Millisecond {
		t.Errorf("KeyHold() = %v, expected 150ms", ark.KeyHold())
	}
	if ark.World().Snapshot().Ticks != 60 {
		t.Errorf("ticks = %d, expected 60", ark.World().Snapshot().Ticks)
	}
}

func TestGameSeedIsDeterministic(t *testing.T) {
	run := func() uint64 {
		g := newTestGame(t, "arkanoid")
		g.OnKeyEvent(true, core.ActionLaunch)
		g.OnKeyEvent(true, core.ActionLeft)
		for range 200 {
			g.Update(frame)
		}
		snap := g.(*Game).World().Snapshot()
		return snap.Hash()
	}

	if h1, h2 := run(), run(); h1 != h2 {
		t.Errorf("same seed produced different worlds: %d vs %d", h1, h2)
	}
}

func TestGameCustomConfig(t *testing.T) {
	resetSettings(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)

	g := newTestGame(t, "arkanoid")
	if g.State().Lives != 7 {
		t.Errorf("lives = %d, expected 7 from the custom config", g.State().Lives)
	}
}

func TestGameBrokenConfigFallsBack(t *testing.T) {
	resetSettings(t)
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))

	g := newTestGame(t, "arkanoid")
	if g.State().Lives != 3 {
		t.Errorf("lives = %d, expected the default 3", g.State().Lives)
	}
}

func TestGameDifficultyPreset(t *testing.T) {
	tests := []struct {
		preset string
		lives  int
	}{
		{"easy", 5},
		{"normal", 3},
		{"hard", 2},
		{"bogus", 3},
	}

	for _, tc := range tests {
		t.Run(tc.preset, func(t *testing.T) {
			resetSettings(t)
			SetDifficultyPreset(tc.preset)

			g := newTestGame(t, "arkanoid")
			if g.State().Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", g.State().Lives, tc.lives)
			}
		})
	}
}
