package arkanoid

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeClassic GameMode = iota // Score resets on every restart
	ModeEndless                 // Score carries over when a won level restarts
)

var (
	settingsMu       sync.RWMutex
	configPath       string                  // custom config path set via CLI
	difficultyPreset config.DifficultyPreset // difficulty preset set via CLI
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger handed to every new World.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a World to the registry.Game interface.
type Game struct {
	mode    GameMode
	world   *World
	cfg     config.ArkanoidConfig
	runtime core.RuntimeConfig
}

// New creates a new Arkanoid game instance (classic mode).
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a new Arkanoid game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "arkanoid_endless"
	}
	return "arkanoid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Arkanoid (Endless)"
	}
	return "Arkanoid"
}

// Reset loads the configuration and creates a fresh world on the initial screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	settingsMu.RLock()
	path, preset, l := configPath, difficultyPreset, logger
	settingsMu.RUnlock()

	g.runtime = runtime

	cfg, err := config.LoadArkanoid(path)
	if err != nil {
		l.Warn("using default config", "err", err)
		cfg = config.DefaultArkanoidConfig()
	}

	// Apply difficulty preset if set
	if preset != "" {
		config.ApplyArkanoidPreset(&cfg, preset)
	}
	g.cfg = cfg

	g.world = NewWorld(cfg,
		WithLogger(l.With("game", g.ID())),
		WithRand(NewSimpleRNG(runtime.Seed)),
		WithDifficulty(config.NewDifficultyManager(cfg.Difficulty)),
		WithScoreCarry(g.mode == ModeEndless),
	)
}

// Update advances the world.
func (g *Game) Update(delta time.Duration) {
	g.world.Update(delta)
}

// OnKeyEvent forwards input to the world.
func (g *Game) OnKeyEvent(isDown bool, a core.Action) {
	g.world.OnKeyEvent(isDown, a)
}

// Render draws the world.
func (g *Game) Render(dst core.Surface) {
	g.world.Render(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		Lives:    g.world.Lives(),
		Status:   string(g.world.Status()),
		GameOver: g.world.Status() == StatusGameOver,
	}
}

// KeyHold returns how long a movement key counts as held after its last
// press, for shells that receive no key-up events.
func (g *Game) KeyHold() time.Duration {
	return g.cfg.Gameplay.KeyHold
}

// World exposes the simulation for inspection.
func (g *Game) World() *World {
	return g.world
}

// Register the games with the registry
func init() {
	registry.Register("arkanoid", func() registry.Game {
		return New()
	})
	registry.Register("arkanoid_endless", func() registry.Game {
		return NewEndless()
	})
}
