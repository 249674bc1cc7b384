// Package registry keeps the game modes the platform can start. Modes
// register a factory from init(); the CLI, the menus and the SSH sessions
// create rounds by mode ID without importing the game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-minigolf/internal/core"
)

// Game is the interface every playable mode implements.
// Games hold pure logic and never import Bubble Tea; the platform maps
// input, drives the tick and paints the screen.
type Game interface {
	// ID returns the mode identifier, e.g. "minigolf". Scores are stored
	// under it.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new round.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current score, round-over and pause flags.
	State() core.GameState
}

// Carded is implemented by games that keep a per-hole score card.
// The platform stores the card when a round ends.
type Carded interface {
	Card() []core.HoleResult
}

// Summarized is implemented by games that describe their mode in one line.
type Summarized interface {
	Summary() string
}

// Factory creates a fresh game for one round.
type Factory func() Game

// ModeInfo describes a registered mode without starting a round.
type ModeInfo struct {
	ID      string
	Title   string
	Summary string
	Carded  bool // rounds also record a hole-by-hole card
}

type mode struct {
	info    ModeInfo
	factory Factory
}

var (
	mu    sync.RWMutex
	modes = make(map[string]mode)
)

// Register adds a mode. It panics on a duplicate ID or when the factory
// builds a game reporting a different ID, since scores would be filed under
// the wrong mode.
func Register(id string, f Factory) {
	g := f()
	if g.ID() != id {
		panic(fmt.Sprintf("registry: mode %q builds a game with ID %q", id, g.ID()))
	}

	info := ModeInfo{ID: id, Title: g.Title()}
	if s, ok := g.(Summarized); ok {
		info.Summary = s.Summary()
	}
	_, info.Carded = g.(Carded)

	mu.Lock()
	defer mu.Unlock()
	if _, exists := modes[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	modes[id] = mode{info: info, factory: f}
}

// List returns every registered mode sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]ModeInfo, 0, len(modes))
	for _, m := range modes {
		out = append(out, m.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup returns the description of one mode.
func Lookup(id string) (ModeInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := modes[id]
	return m.info, ok
}

// Exists reports whether id names a registered mode.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Create starts a new game of the given mode.
func Create(id string) (Game, error) {
	mu.RLock()
	m, ok := modes[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return m.factory(), nil
}
