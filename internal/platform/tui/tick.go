// Package tui runs the Pipes game in a terminal with Bubble Tea: the play loop,
// key bindings, the level menu, the results board and the SSH front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to drive one frame of the game loop.
type TickMsg time.Time

// tickCmd returns a command that fires TickMsg at tickRate frames per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
