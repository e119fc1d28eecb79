package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// defaultKeyHold is used for games that do not say how long a key stays held.
const defaultKeyHold = 150 * time.Millisecond

// keyHolder is implemented by games that configure the synthesized key-up delay.
type keyHolder interface {
	KeyHold() time.Duration
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel is the Bubble Tea model running one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	hold       keyHold
	clock      func() time.Time
	lastTick   time.Time
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score of the current game over was recorded
}

// NewGameModel resets game and creates a model running it.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:   game,
		screen: newGameScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:  store,
		config: cfg,
		keys:   DefaultGameKeyMap(),
		help:   h,
		clock:  time.Now,
	}
	m.reset()
	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// reset starts the game over with the current config.
func (m *GameModel) reset() {
	m.game.Reset(m.config)
	hold := defaultKeyHold
	if kh, ok := m.game.(keyHolder); ok && kh.KeyHold() > 0 {
		hold = kh.KeyHold()
	}
	m.hold = newKeyHold(hold)
	m.gameState = m.game.State()
	m.lastTick = time.Time{}
	m.scoreSaved = false
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// World coordinates do not depend on the viewport, so the game keeps running.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.fitScreen()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	case key.Matches(msg, m.keys.Stop):
		m.send(m.hold.releaseAll())
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.send(m.hold.press(a, m.clock()))
	case core.ActionLaunch, core.ActionRestart:
		m.game.OnKeyEvent(true, a)
		m.game.OnKeyEvent(false, a)
		m.gameState = m.game.State()
	}

	return m, nil
}

// fitScreen sizes the game screen to the terminal minus the help bar.
func (m GameModel) fitScreen() {
	rows := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			rows = max(rows, len(col))
		}
	}
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-rows, 1))
}

func (m GameModel) send(events []keyEvent) {
	for _, e := range events {
		m.game.OnKeyEvent(e.down, e.action)
	}
}

// handleTick advances the game by the time since the previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var delta time.Duration
	if !m.lastTick.IsZero() {
		delta = max(now.Sub(m.lastTick), 0)
	}
	m.lastTick = now

	m.send(m.hold.expire(now))
	m.game.Update(delta)
	m.gameState = m.game.State()
	m.recordScore()

	return m, tickCmd(m.config.TickRate)
}

// recordScore saves the final score once per game over. The game restarts
// itself, after which the next game over is recorded again.
func (m *GameModel) recordScore() {
	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score, m.config.Seed)
	}
	m.scoreSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arkanoid", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game and the help bar below it.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state seen at the last update.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run plays game in the terminal until the player quits or goes back.
// It reports whether the player asked for the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
