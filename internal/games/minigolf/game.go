// Package minigolf plays a course of golf holes on the terminal.
// The ball physics live in the golf package; this package keeps the card,
// moves between holes and draws a top-down view of the green.
package minigolf

import (
	"fmt"

	"github.com/vovakirdan/tui-minigolf/internal/config"
	"github.com/vovakirdan/tui-minigolf/internal/core"
	"github.com/vovakirdan/tui-minigolf/internal/course"
	"github.com/vovakirdan/tui-minigolf/internal/golf"
	"github.com/vovakirdan/tui-minigolf/internal/registry"
)

// Game IDs used for registration and score storage.
const (
	CourseID   = "minigolf"
	PracticeID = "minigolf_practice"
)

// Mode selects between a full round and a single practice hole.
type Mode int

const (
	ModeCourse Mode = iota
	ModePractice
)

var (
	// configPath stores the custom config path set via CLI
	configPath string
	// difficultyPreset stores the difficulty preset set via CLI
	difficultyPreset config.DifficultyPreset
	// courseDir is the directory of hole files; empty means the built-in course
	courseDir string
	// practiceHole is the hole ID picked for the next practice game
	practiceHole string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetCourseDir sets the directory holes are loaded from.
func SetCourseDir(dir string) {
	courseDir = dir
}

// SetPracticeHole selects the hole the next practice game plays.
func SetPracticeHole(id string) {
	practiceHole = id
}

// LoadConfig returns the golf config from the configured path with the
// difficulty preset applied. Unreadable files fall back to the defaults.
func LoadConfig() config.GolfConfig {
	cfg, err := config.LoadGolf(configPath)
	if err != nil {
		cfg = config.DefaultGolfConfig()
	}
	if difficultyPreset != "" {
		config.ApplyGolfPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// LoadCourse returns the holes of the configured course.
func LoadCourse() ([]course.Hole, error) {
	holes, _, err := course.Load(courseDir)
	return holes, err
}

func init() {
	registry.Register(CourseID, func() registry.Game { return New() })
	registry.Register(PracticeID, func() registry.Game { return NewPractice() })
}

// Game implements a round of minigolf.
type Game struct {
	mode Mode

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.GolfConfig
	tuning     golf.Tuning
	maxStrokes int

	// Course
	holes     []course.Hole
	holeIndex int
	practice  string
	loadErr   error

	// Hole in play
	sim     *golf.Simulation
	tracker *holeTracker

	// Round state
	card     []core.HoleResult
	score    int
	tick     uint64
	paused   bool
	gameOver bool

	// Between holes
	lastResult *core.HoleResult
	transition int
}

// New creates a full-course game.
func New() *Game {
	return &Game{mode: ModeCourse}
}

// NewPractice creates a single-hole practice game.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

// PlayHole selects the hole a practice game plays from its next Reset.
// It only affects this instance, unlike SetPracticeHole.
func (g *Game) PlayHole(id string) {
	g.practice = id
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return PracticeID
	}
	return CourseID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Minigolf (Practice)"
	}
	return "Minigolf"
}

// Summary describes the mode in one line.
func (g *Game) Summary() string {
	if g.mode == ModePractice {
		return "One hole of your choice; hole records only"
	}
	return "Every hole in order, scored against par"
}

// Reset loads config and course and tees up the first hole.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg := LoadConfig()
	g.cfg = cfg
	g.tuning = TuningFromConfig(cfg)
	g.maxStrokes = config.NewDifficultyManager(cfg.Difficulty).MaxStrokes()

	if g.mode == ModePractice && practiceHole != "" {
		g.practice = practiceHole
		practiceHole = "" // Reset after use
	}

	g.card = nil
	g.score = 0
	g.tick = 0
	g.paused = false
	g.gameOver = false
	g.lastResult = nil
	g.transition = 0
	g.holeIndex = 0
	g.sim = nil
	g.loadErr = nil

	holes, err := LoadCourse()
	if err != nil {
		g.fail(err)
		return
	}
	g.holes = holes

	if g.mode == ModePractice {
		g.holes = holes[:1]
		if g.practice != "" {
			h, _, err := course.Find(holes, g.practice)
			if err != nil {
				g.fail(err)
				return
			}
			g.holes = []course.Hole{h}
		}
	}

	g.loadHole()
}

func (g *Game) fail(err error) {
	g.loadErr = err
	g.gameOver = true
	g.sim = nil
}

// loadHole starts the hole at holeIndex.
func (g *Game) loadHole() {
	h := g.holes[g.holeIndex]
	geom, err := h.Geometry()
	if err != nil {
		g.fail(err)
		return
	}

	g.tracker = &holeTracker{}
	sim, err := golf.NewSimulation(*geom, g.tuning, g.tracker, golf.PauseFunc(g.isPaused))
	if err != nil {
		g.fail(fmt.Errorf("hole %s: %w", h.ID, err))
		return
	}
	g.sim = sim
	g.lastResult = nil
	g.transition = 0
}

func (g *Game) isPaused() bool { return g.paused }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	g.tick++

	if g.lastResult != nil {
		g.stepTransition()
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	g.sim.Step()
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch {
	case g.tracker.holed:
		if g.sim.Ball().Hidden {
			g.finishHole(false)
		}
	case g.tracker.strokes >= g.maxStrokes && g.atRest():
		g.finishHole(true)
	}

	return core.StepResult{State: g.State()}
}

// handleInput maps actions to simulation commands.
// Terminals report no key release, so Space toggles the charge.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Empty() {
		return
	}
	if in.Has(core.ActionLeft) {
		g.sim.AimLeft()
	}
	if in.Has(core.ActionRight) {
		g.sim.AimRight()
	}
	if in.Has(core.ActionCharge) {
		if g.sim.Aim().Charging {
			g.sim.Release()
		} else {
			g.sim.BeginCharge()
		}
	}
	if in.Has(core.ActionConfirm) {
		g.sim.Release()
	}
}

func (g *Game) atRest() bool {
	return g.sim.Ball().Phase == golf.Stationary && !g.sim.Aim().Charging
}

// finishHole writes the hole onto the card and starts the pause before the next one.
func (g *Game) finishHole(pickedUp bool) {
	h := g.holes[g.holeIndex]
	r := core.HoleResult{HoleID: h.ID, Par: h.Par, Strokes: g.tracker.strokes, PickedUp: pickedUp}
	if pickedUp {
		r.Strokes = g.maxStrokes
	}

	g.card = append(g.card, r)
	if g.mode == ModeCourse {
		g.score += HolePoints(r, g.cfg.Gameplay.ParAllowance, g.cfg.Gameplay.PointsPerShot)
	}
	g.lastResult = &r
	g.transition = g.cfg.Gameplay.NextHoleDelay
}

func (g *Game) stepTransition() {
	if g.paused {
		return
	}
	if g.transition > 0 {
		g.transition--
		return
	}

	g.holeIndex++
	if g.holeIndex >= len(g.holes) {
		g.gameOver = true
		return
	}
	g.loadHole()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Card returns the results of the holes finished so far.
func (g *Game) Card() []core.HoleResult {
	out := make([]core.HoleResult, len(g.card))
	copy(out, g.card)
	return out
}

// Strokes returns the strokes taken on the hole in play.
func (g *Game) Strokes() int {
	if g.tracker == nil {
		return 0
	}
	return g.tracker.strokes
}

// Hole returns the hole in play and its 1-based number.
func (g *Game) Hole() (course.Hole, int) {
	if len(g.holes) == 0 {
		return course.Hole{}, 0
	}
	i := g.holeIndex
	if i >= len(g.holes) {
		i = len(g.holes) - 1
	}
	return g.holes[i], i + 1
}

// ToPar returns the card total relative to par.
func (g *Game) ToPar() int {
	d := 0
	for _, r := range g.card {
		d += r.ToPar()
	}
	return d
}

// Err returns the error that stopped the course from loading, if any.
func (g *Game) Err() error {
	return g.loadErr
}
