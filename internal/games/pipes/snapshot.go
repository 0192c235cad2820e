package pipes

import "github.com/vovakirdan/tui-pipes/internal/games/pipes/core"

// Snapshot is a read-only copy of the game for logging and tests.
type Snapshot struct {
	LevelID    string
	LevelIndex int
	Complexity core.Complexity
	State      core.State
	Cursor     core.Position
	StepsLeft  int
	StepsUsed  int
	RoundSteps int
	Board      []core.PipeView
	Flow       core.FlowMap
}

// Snapshot captures the current game.
func (g *Game) Snapshot() Snapshot {
	lvl := g.Level()
	return Snapshot{
		LevelID:    lvl.ID,
		LevelIndex: lvl.Index,
		Complexity: g.complexity,
		State:      g.session.State(),
		Cursor:     g.cursor,
		StepsLeft:  g.session.RemainingSteps(),
		StepsUsed:  g.session.StepsUsed(),
		RoundSteps: g.session.RoundSteps(),
		Board:      g.session.Board(),
		Flow:       g.session.Flow(),
	}
}

// Wet returns the number of cells reached by water.
func (s Snapshot) Wet() int {
	n := 0
	for _, wet := range s.Flow.Cells {
		if wet {
			n++
		}
	}
	return n
}
