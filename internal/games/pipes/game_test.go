package pipes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformcore "github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
)

func newGame(t *testing.T, opts Options) *Game {
	t.Helper()
	catalog, err := levels.Builtin()
	require.NoError(t, err)
	g, err := New(catalog, opts)
	require.NoError(t, err)
	g.Reset(platformcore.DefaultConfig())
	return g
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// press steps the game once per action and returns the last result.
func press(g *Game, actions ...platformcore.Action) platformcore.StepResult {
	var res platformcore.StepResult
	for _, a := range actions {
		res = g.Step(frame(a))
	}
	return res
}

func TestNewErrors(t *testing.T) {
	_, err := New(nil, Options{})
	assert.ErrorIs(t, err, ErrNoLevels)

	catalog, err := levels.Builtin()
	require.NoError(t, err)
	_, err = New(catalog, Options{LevelID: "nope"})
	assert.ErrorIs(t, err, levels.ErrLevelNotFound)
}

func TestNewDefaults(t *testing.T) {
	g := newGame(t, Options{})
	assert.Equal(t, "01", g.Level().ID)
	assert.Equal(t, core.ComplexityMedium, g.Complexity())
	assert.Equal(t, core.P(3, 0), g.cursor)
	assert.Equal(t, 35, g.State().StepsLeft)
}

func TestCursorWraps(t *testing.T) {
	g := newGame(t, Options{LevelID: "02"})
	require.Equal(t, core.P(1, 0), g.cursor)

	press(g, platformcore.ActionUp)
	assert.Equal(t, core.P(1, 3), g.cursor)

	press(g, platformcore.ActionLeft, platformcore.ActionLeft)
	assert.Equal(t, core.P(3, 3), g.cursor)

	press(g, platformcore.ActionRight, platformcore.ActionDown)
	assert.Equal(t, core.P(0, 0), g.cursor)

	assert.Equal(t, 0, g.State().StepsUsed, "moving is free")
}

func TestSolveLevelReportsOnce(t *testing.T) {
	g := newGame(t, Options{LevelID: "02", Complexity: core.ComplexityHard})

	const (
		rot   = platformcore.ActionRotate
		down  = platformcore.ActionDown
		right = platformcore.ActionRight
	)
	res := press(g,
		rot,
		down, rot, rot,
		right, rot, rot,
		down, down,
	)
	assert.False(t, res.RoundEnded)
	_, ok := g.LastResult()
	assert.False(t, ok)

	res = press(g, rot)
	assert.True(t, res.RoundEnded)
	assert.True(t, res.State.GameOver)
	assert.True(t, res.State.Won)

	last, ok := g.LastResult()
	require.True(t, ok)
	assert.Equal(t, RoundResult{
		LevelID:    "02",
		Complexity: core.ComplexityHard,
		Won:        true,
		StepsUsed:  6,
		RoundSteps: 14,
	}, last)

	// Further frames do not report the round again.
	res = press(g, rot)
	assert.False(t, res.RoundEnded)
	assert.Equal(t, 6, res.State.StepsUsed)
}

func TestLoseReportsResult(t *testing.T) {
	g := newGame(t, Options{LevelID: "02", Complexity: core.ComplexityHard})
	g.cursor = core.P(0, 0)

	var res platformcore.StepResult
	for i := 0; i <= 14; i++ {
		res = press(g, platformcore.ActionRotate)
	}
	assert.True(t, res.RoundEnded)
	assert.False(t, res.State.Won)

	last, ok := g.LastResult()
	require.True(t, ok)
	assert.False(t, last.Won)
	assert.Equal(t, 14, last.StepsUsed)
}

func TestSwitchLevelRefusedMidRound(t *testing.T) {
	g := newGame(t, Options{})

	press(g, platformcore.ActionRotate, platformcore.ActionNextLevel)
	assert.Equal(t, "01", g.Level().ID)
	assert.NotEmpty(t, g.message)

	press(g, platformcore.ActionRestart, platformcore.ActionNextLevel)
	assert.Equal(t, "02", g.Level().ID)
	assert.Equal(t, core.P(1, 0), g.cursor)
	assert.Empty(t, g.message)

	press(g, platformcore.ActionPrevLevel, platformcore.ActionPrevLevel)
	assert.Equal(t, "04", g.Level().ID, "previous wraps around")
}

func TestCycleComplexity(t *testing.T) {
	g := newGame(t, Options{Complexity: core.ComplexityHard})
	assert.Equal(t, 30, g.State().StepsLeft)

	press(g, platformcore.ActionComplexity)
	assert.Equal(t, core.ComplexityEasy, g.Complexity())
	assert.Equal(t, 39, g.State().StepsLeft)
}

func TestTooSmallIgnoresInput(t *testing.T) {
	g := newGame(t, Options{})
	g.Resize(20, 10)
	require.True(t, g.tooSmall)

	press(g, platformcore.ActionRotate)
	assert.Equal(t, 0, g.State().StepsUsed)

	screen := platformcore.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestRender(t *testing.T) {
	g := newGame(t, Options{LevelID: "02"})
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "Level 2/4")
	assert.Contains(t, out, "Steps: 16/16")
	assert.Contains(t, out, "[medium]")
	assert.Equal(t, 2, strings.Count(out, "▼"), "input and output markers")

	// The cursor sits on the input cell.
	boardW, _ := boardExtent(4)
	x := (80-boardW)/2 + 1 + 1*cellWidth
	assert.Equal(t, '╭', screen.Get(x, hudHeight+1))
	assert.Equal(t, platformcore.ColorYellow, screen.GetCell(x, hudHeight+1).Color)
}

func TestRenderWinOverlay(t *testing.T) {
	g := newGame(t, Options{LevelID: "02", Complexity: core.ComplexityHard})
	for pos, n := range map[core.Position]int{
		core.P(1, 0): 1, core.P(1, 1): 2, core.P(2, 1): 2, core.P(2, 3): 1,
	} {
		for i := 0; i < n; i++ {
			_, err := g.session.Rotate(pos)
			require.NoError(t, err)
		}
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "FLOW COMPLETE!")
	assert.Contains(t, screen.String(), "Used 6 of 14 steps")
}

func TestJointGlyphs(t *testing.T) {
	assert.Equal(t, '│', joints[1|4])
	assert.Equal(t, '─', joints[2|8])
	assert.Equal(t, '└', joints[1|2])
	assert.Equal(t, '┼', joints[15])
}

func TestSnapshot(t *testing.T) {
	g := newGame(t, Options{LevelID: "02"})
	press(g, platformcore.ActionRotate, platformcore.ActionDown)

	snap := g.Snapshot()
	assert.Equal(t, "02", snap.LevelID)
	assert.Equal(t, 2, snap.LevelIndex)
	assert.Equal(t, core.StateInProgress, snap.State)
	assert.Equal(t, core.P(1, 1), snap.Cursor)
	assert.Equal(t, 1, snap.StepsUsed)
	assert.Equal(t, 15, snap.StepsLeft)
	assert.Len(t, snap.Board, 16)
	assert.Positive(t, snap.Wet(), "the input cell holds water once turned to face up")
}
