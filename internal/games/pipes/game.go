// Package pipes provides the Pipes rotation puzzle for the terminal platform.
package pipes

import (
	"errors"
	"fmt"

	platformcore "github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
)

// ErrNoLevels is returned by New for an empty catalog.
var ErrNoLevels = errors.New("pipes: no levels")

// RoundResult describes a finished round.
type RoundResult struct {
	LevelID    string
	Complexity core.Complexity
	Won        bool
	StepsUsed  int
	RoundSteps int
}

// Options selects where a new game starts.
type Options struct {
	LevelID    string // Empty selects the first level
	Complexity core.Complexity
}

// Game implements the Pipes puzzle on top of one engine Session.
type Game struct {
	catalog    []levels.Level
	levelIndex int
	complexity core.Complexity
	session    *core.Session

	cursor core.Position

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	tick    uint64
	message string

	pending *RoundResult // Set by the result listener, consumed by Step
	last    *RoundResult
}

// New creates a game over catalog. The session is built immediately so a
// broken level is reported here rather than during play.
func New(catalog []levels.Level, opts Options) (*Game, error) {
	if len(catalog) == 0 {
		return nil, ErrNoLevels
	}

	index := 0
	if opts.LevelID != "" {
		found := false
		for i, lvl := range catalog {
			if lvl.ID == opts.LevelID {
				index, found = i, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", levels.ErrLevelNotFound, opts.LevelID)
		}
	}

	complexity := opts.Complexity
	if complexity == 0 {
		complexity = core.ComplexityMedium
	}

	session, err := core.NewSession(catalog[index].Settings(complexity))
	if err != nil {
		return nil, err
	}

	g := &Game{
		catalog:    catalog,
		levelIndex: index,
		complexity: complexity,
		session:    session,
		cursor:     catalog[index].Input,
	}
	session.AddListener(g)
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pipes"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pipes"
}

// Level returns the active level.
func (g *Game) Level() levels.Level {
	return g.catalog[g.levelIndex]
}

// Complexity returns the active complexity.
func (g *Game) Complexity() core.Complexity {
	return g.complexity
}

// Reset starts a fresh round on the current level and adopts the screen size.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.tick = 0
	g.message = ""
	g.pending = nil
	g.cursor = g.Level().Input
	if err := g.session.Restart(); err != nil {
		g.message = err.Error()
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adopts a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen can hold the board and HUD.
func (g *Game) checkScreenSize() {
	w, h := MinScreenSize(g.session.Size())
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Step applies one frame of input.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	switch {
	case in.Has(platformcore.ActionRotate):
		if _, err := g.session.Rotate(g.cursor); err != nil {
			g.message = err.Error()
		}
	case in.Has(platformcore.ActionRestart):
		g.restart()
	case in.Has(platformcore.ActionNextLevel):
		g.switchLevel(g.levelIndex+1, g.complexity)
	case in.Has(platformcore.ActionPrevLevel):
		g.switchLevel(g.levelIndex-1, g.complexity)
	case in.Has(platformcore.ActionComplexity):
		g.switchLevel(g.levelIndex, g.complexity.Next())
	}

	result := platformcore.StepResult{State: g.State()}
	if g.pending != nil {
		g.last = g.pending
		g.pending = nil
		result.RoundEnded = true
	}
	return result
}

func (g *Game) moveCursor(in platformcore.InputFrame) {
	size := g.session.Size()
	switch {
	case in.Has(platformcore.ActionUp):
		g.cursor.Y = platformcore.Wrap(g.cursor.Y-1, size)
	case in.Has(platformcore.ActionDown):
		g.cursor.Y = platformcore.Wrap(g.cursor.Y+1, size)
	case in.Has(platformcore.ActionLeft):
		g.cursor.X = platformcore.Wrap(g.cursor.X-1, size)
	case in.Has(platformcore.ActionRight):
		g.cursor.X = platformcore.Wrap(g.cursor.X+1, size)
	}
}

func (g *Game) restart() {
	if err := g.session.Restart(); err != nil {
		g.message = err.Error()
		return
	}
	g.message = ""
}

// switchLevel reconfigures the session for catalog[index] at complexity c.
// The session refuses while a round is in progress.
func (g *Game) switchLevel(index int, c core.Complexity) {
	index = platformcore.Wrap(index, len(g.catalog))
	next := g.catalog[index]

	applied, err := g.session.Reconfigure(next.Settings(c))
	switch {
	case err != nil:
		g.message = fmt.Sprintf("Level %s: %v", next.ID, err)
		return
	case !applied:
		g.message = "Finish or restart the round first"
		return
	}

	g.levelIndex = index
	g.complexity = c
	g.cursor = next.Input
	g.message = ""
	g.checkScreenSize()
}

// OnWin records a won round.
func (g *Game) OnWin() {
	g.pending = g.result(true)
}

// OnLose records a lost round.
func (g *Game) OnLose() {
	g.pending = g.result(false)
}

func (g *Game) result(won bool) *RoundResult {
	return &RoundResult{
		LevelID:    g.Level().ID,
		Complexity: g.complexity,
		Won:        won,
		StepsUsed:  g.session.StepsUsed(),
		RoundSteps: g.session.RoundSteps(),
	}
}

// LastResult returns the most recently finished round.
func (g *Game) LastResult() (RoundResult, bool) {
	if g.last == nil {
		return RoundResult{}, false
	}
	return *g.last, true
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	state := g.session.State()
	return platformcore.GameState{
		StepsLeft: g.session.RemainingSteps(),
		StepsUsed: g.session.StepsUsed(),
		GameOver:  state.Finished(),
		Won:       state == core.StateWin,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Rotate | R: Restart | N/P: Level | C: Complexity | Esc: Menu"
}
