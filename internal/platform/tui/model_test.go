package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	pipescore "github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

func testCatalog(t *testing.T) []levels.Level {
	t.Helper()
	catalog, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin() error: %v", err)
	}
	return catalog
}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "pipes.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Player = "tester"
	return cfg
}

// pressAndTick sends each key followed by one tick.
func pressAndTick(t *testing.T, m tea.Model, keys ...tea.KeyMsg) tea.Model {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(k)
		m, _ = m.Update(TickMsg(time.Now()))
	}
	return m
}

func TestGameModelSavesFinishedRound(t *testing.T) {
	store := testStore(t)
	game, err := pipes.New(testCatalog(t), pipes.Options{LevelID: "02", Complexity: pipescore.ComplexityHard})
	if err != nil {
		t.Fatalf("pipes.New() error: %v", err)
	}

	var m tea.Model = NewGameModel(game, store, testConfig(), nil)
	m.Init()

	rot := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down := tea.KeyMsg{Type: tea.KeyDown}
	right := tea.KeyMsg{Type: tea.KeyRight}
	m = pressAndTick(t, m, rot, down, rot, rot, right, rot, rot, down, down, rot)

	gm := m.(GameModel)
	if !gm.gameState.Won {
		t.Fatalf("game state = %+v, want won", gm.gameState)
	}
	if gm.saved != 1 {
		t.Errorf("saved = %d, want 1", gm.saved)
	}

	// Extra frames after the win do not store the round again.
	m = pressAndTick(t, m, rot, rot)
	if got := m.(GameModel).saved; got != 1 {
		t.Errorf("saved after extra frames = %d, want 1", got)
	}

	rounds, err := store.RecentRounds("02", 10)
	if err != nil {
		t.Fatalf("RecentRounds() error: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("stored %d rounds, want 1", len(rounds))
	}
	r := rounds[0]
	if r.Result != storage.ResultWin || r.StepsUsed != 6 || r.RoundSteps != 14 || r.Player != "tester" || r.Complexity != "hard" {
		t.Errorf("stored round = %+v", r)
	}
}

func TestGameModelWithoutStore(t *testing.T) {
	game, err := pipes.New(testCatalog(t), pipes.Options{LevelID: "02", Complexity: pipescore.ComplexityHard})
	if err != nil {
		t.Fatalf("pipes.New() error: %v", err)
	}

	var m tea.Model = NewGameModel(game, nil, testConfig(), nil)
	m.Init()

	rot := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	for range 15 {
		m = pressAndTick(t, m, rot)
	}
	gm := m.(GameModel)
	if !gm.gameState.GameOver || gm.gameState.Won {
		t.Errorf("game state = %+v, want lost", gm.gameState)
	}
	if gm.saved != 0 {
		t.Errorf("saved = %d without a store", gm.saved)
	}
}

func TestGameModelKeys(t *testing.T) {
	game, err := pipes.New(testCatalog(t), pipes.Options{})
	if err != nil {
		t.Fatalf("pipes.New() error: %v", err)
	}

	m := NewGameModel(game, nil, testConfig(), nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(GameModel).BackToMenu() || cmd == nil {
		t.Error("esc should go back to the menu")
	}

	next, cmd = m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if view := next.View(); view != "" {
		t.Errorf("View() after quit = %q, want empty", view)
	}
}

func TestGameModelResizeKeepsRound(t *testing.T) {
	game, err := pipes.New(testCatalog(t), pipes.Options{})
	if err != nil {
		t.Fatalf("pipes.New() error: %v", err)
	}

	var m tea.Model = NewGameModel(game, nil, testConfig(), nil)
	m.Init()
	m = pressAndTick(t, m, runeKey(' '))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if used := game.State().StepsUsed; used != 1 {
		t.Errorf("steps used after resize = %d, want 1", used)
	}
	if !strings.Contains(m.View(), "Steps: 34/35") {
		t.Error("view does not show the running round")
	}
}

func TestRoundRecord(t *testing.T) {
	r := RoundRecord(pipes.RoundResult{
		LevelID:    "01",
		Complexity: pipescore.ComplexityEasy,
		Won:        false,
		StepsUsed:  39,
		RoundSteps: 39,
	}, "ann")

	want := storage.Round{
		LevelID:    "01",
		Complexity: "easy",
		Result:     storage.ResultLose,
		StepsUsed:  39,
		RoundSteps: 39,
		Player:     "ann",
	}
	if r != want {
		t.Errorf("RoundRecord() = %+v, want %+v", r, want)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "pipes")
	s.DrawTextColored(0, 1, "flow", core.ColorBrightCyan)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "pipes") || !strings.Contains(lines[1], "flow") {
		t.Errorf("RenderScreen() = %q", out)
	}
}
