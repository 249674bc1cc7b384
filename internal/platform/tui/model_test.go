package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minigolf/internal/core"
	"github.com/vovakirdan/tui-minigolf/internal/storage"
)

// roundGame ends its round after a fixed number of ticks.
type roundGame struct {
	length int
	ticks  int
	resets int
	paused bool
}

func (g *roundGame) ID() string    { return "round_stub" }
func (g *roundGame) Title() string { return "Round Stub" }

func (g *roundGame) Reset(core.RuntimeConfig) {
	g.ticks = 0
	g.paused = false
	g.resets++
}

func (g *roundGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused && g.ticks < g.length {
		g.ticks++
	}
	return core.StepResult{State: g.State()}
}

func (g *roundGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }

func (g *roundGame) State() core.GameState {
	over := g.ticks >= g.length
	score := 0
	if over {
		score = 700
	}
	return core.GameState{Score: score, GameOver: over, Paused: g.paused}
}

func (g *roundGame) Card() []core.HoleResult {
	return []core.HoleResult{{HoleID: "stub-hole", Par: 2, Strokes: 2}}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelSavesRoundOnce(t *testing.T) {
	store := openStore(t)
	game := &roundGame{length: 3}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	scores, err := store.TopScores("round_stub", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 700 {
		t.Fatalf("scores = %+v, expected one 700", scores)
	}
	history, err := store.HoleHistory("stub-hole", 10)
	if err != nil {
		t.Fatalf("HoleHistory: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("card stored %d times, expected once", len(history))
	}
	if m.SaveErr() != nil {
		t.Errorf("unexpected save error: %v", m.SaveErr())
	}
}

func TestModelRestartSavesAgain(t *testing.T) {
	store := openStore(t)
	game := &roundGame{length: 2}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()

	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg{})
	}
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{})
	if game.resets != 2 {
		t.Fatalf("resets = %d, expected 2", game.resets)
	}
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	scores, err := store.TopScores("round_stub", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 2 {
		t.Errorf("got %d scores, expected one per round", len(scores))
	}
}

func TestModelBackPausesThenLeaves(t *testing.T) {
	game := &roundGame{length: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()

	esc := tea.KeyMsg{Type: tea.KeyEsc}
	m, cmd := update(t, m, esc)
	if isQuit(cmd) || m.BackToMenu() {
		t.Fatal("first back should only pause")
	}
	m, _ = update(t, m, TickMsg{})
	if !game.paused {
		t.Fatal("game should be paused")
	}

	m, cmd = update(t, m, esc)
	if !m.BackToMenu() || !isQuit(cmd) {
		t.Error("back while paused should leave the game")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&roundGame{length: 100}, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10})
	m.Init()

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || !isQuit(cmd) {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	game := &roundGame{length: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10})
	m.Init()
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if game.resets != 1 || game.ticks != 1 {
		t.Errorf("resize reset the round: resets=%d ticks=%d", game.resets, game.ticks)
	}
	if m.screen.Width() != 60 || m.screen.Height() != 20 {
		t.Errorf("screen is %dx%d", m.screen.Width(), m.screen.Height())
	}
}
