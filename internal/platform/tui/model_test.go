package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// fakeGame records what the shell sends it.
type fakeGame struct {
	resets int
	keys   []keyEvent
	deltas []time.Duration
	state  core.GameState
	hold   time.Duration
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Update(delta time.Duration) { g.deltas = append(g.deltas, delta) }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) KeyHold() time.Duration { return g.hold }
func (g *fakeGame) Render(dst core.Surface) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) OnKeyEvent(down bool, a core.Action) {
	g.keys = append(g.keys, keyEvent{down: down, action: a})
}

func newTestModel(t *testing.T, g *fakeGame, store *storage.Store) GameModel {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewGameModel(g, store, cfg)
	m.clock = func() time.Time { return time.Unix(0, 0) }
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameModelDeltas(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	if g.resets != 1 {
		t.Fatalf("resets = %d, expected 1", g.resets)
	}

	start := time.Unix(100, 0)
	m = update(t, m, TickMsg(start))
	m = update(t, m, TickMsg(start.Add(16*time.Millisecond)))
	m = update(t, m, TickMsg(start.Add(50*time.Millisecond)))
	update(t, m, TickMsg(start.Add(40*time.Millisecond))) // clock went backwards

	expected := []time.Duration{0, 16 * time.Millisecond, 34 * time.Millisecond, 0}
	if len(g.deltas) != len(expected) {
		t.Fatalf("deltas = %v, expected %v", g.deltas, expected)
	}
	for i := range expected {
		if g.deltas[i] != expected[i] {
			t.Errorf("delta %d = %v, expected %v", i, g.deltas[i], expected[i])
		}
	}
}

func TestGameModelKeys(t *testing.T) {
	g := &fakeGame{hold: 100 * time.Millisecond}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, runes("a")) // repeat
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, runes("r"))

	// The hold expires on the next tick
	m = update(t, m, TickMsg(time.Unix(0, 0).Add(100*time.Millisecond)))

	expected := []keyEvent{
		{down: true, action: core.ActionLeft},
		{down: true, action: core.ActionLaunch},
		{down: false, action: core.ActionLaunch},
		{down: true, action: core.ActionRestart},
		{down: false, action: core.ActionRestart},
		{down: false, action: core.ActionLeft},
	}
	if len(g.keys) != len(expected) {
		t.Fatalf("keys = %+v, expected %+v", g.keys, expected)
	}
	for i := range expected {
		if g.keys[i] != expected[i] {
			t.Errorf("key %d = %+v, expected %+v", i, g.keys[i], expected[i])
		}
	}

	if m.IsQuitting() || m.BackToMenu() {
		t.Error("game keys must not leave the game")
	}
}

func TestGameModelLeaving(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		quitting bool
		back     bool
	}{
		{"quit", runes("q"), true, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, true, false},
		{"back", tea.KeyMsg{Type: tea.KeyEsc}, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, &fakeGame{}, nil)
			next, cmd := m.Update(tc.msg)
			gm := next.(GameModel)
			if gm.IsQuitting() != tc.quitting || gm.BackToMenu() != tc.back {
				t.Errorf("quitting=%v back=%v", gm.IsQuitting(), gm.BackToMenu())
			}
			if cmd == nil {
				t.Error("expected a quit command")
			}
		})
	}
}

func TestGameModelRecordsScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(t, g, store)
	now := time.Unix(0, 0)
	tick := func() {
		now = now.Add(16 * time.Millisecond)
		m = update(t, m, TickMsg(now))
	}

	g.state = core.GameState{Score: -90, Status: "game-over", GameOver: true}
	tick()
	tick()

	// The game restarts and ends again
	g.state = core.GameState{Status: "running"}
	tick()
	g.state = core.GameState{Score: 40, Status: "game-over", GameOver: true}
	tick()

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("recorded %d scores, expected 2", len(scores))
	}
	if scores[0].Score != 40 || scores[1].Score != -90 || scores[0].Seed != 7 {
		t.Errorf("scores = %+v", scores)
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 10})

	if w, h := m.screen.Size(); w != 120 || h != 9 {
		t.Errorf("screen = %dx%d, expected 120x9 above the help bar", w, h)
	}

	view := m.View()
	if !strings.Contains(view, "fake") {
		t.Error("view should contain the rendered game")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help bar")
	}
}
