package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

// Results board layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the level sidebar
	sidebarWidth       = 24  // Width of the level sidebar
	maxRounds          = 100 // Max rounds to load per level
)

// ResultsKeyMap defines the key bindings for the results board.
type ResultsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Mode      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Mode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Mode, k.Back, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev level"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for the results board.
// It lists the best wins or the latest rounds of one level at a time.
type ResultsModel struct {
	levels      []levels.Level
	levelCursor int
	store       *storage.Store
	rounds      []storage.Round
	stats       *storage.LevelStats
	recent      bool // Show latest rounds instead of best wins
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ResultsKeyMap
	theme       Theme
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewResultsModel creates a results board over catalog. store may be nil.
func NewResultsModel(catalog []levels.Level, store *storage.Store, width, height int, theme Theme) ResultsModel {
	h := help.New()
	h.ShowAll = false

	m := ResultsModel{
		levels:      catalog,
		store:       store,
		keys:        DefaultResultsKeyMap(),
		help:        h,
		theme:       theme,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadRounds()
	return m
}

// createTable creates the rounds table sized for the current window.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Result", Width: 6},
		{Title: "Steps", Width: 7},
		{Title: "Mode", Width: 7},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if extra := tableWidth - 60; extra > 0 {
		columns[4].Width += min(extra, 10)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// currentLevel returns the ID of the selected level.
func (m ResultsModel) currentLevel() string {
	if len(m.levels) == 0 {
		return ""
	}
	return m.levels[m.levelCursor].ID
}

// loadRounds loads rounds and stats for the selected level.
func (m *ResultsModel) loadRounds() {
	m.rounds, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil && len(m.levels) > 0 {
		id := m.currentLevel()
		if m.recent {
			m.rounds, m.loadErr = m.store.RecentRounds(id, maxRounds)
		} else {
			m.rounds, m.loadErr = m.store.BestRounds(id, maxRounds)
		}
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.LevelStats(id)
		}
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded rounds.
func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			string(r.Result),
			fmt.Sprintf("%d/%d", r.StepsUsed, r.RoundSteps),
			r.Complexity,
			r.Player,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results board.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.levels) > 0 {
				m.levelCursor = (m.levelCursor + 1) % len(m.levels)
				m.loadRounds()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.levels) > 0 {
				m.levelCursor = (m.levelCursor + len(m.levels) - 1) % len(m.levels)
				m.loadRounds()
			}
			return m, nil

		case key.Matches(msg, m.keys.Mode):
			m.recent = !m.recent
			m.loadRounds()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results board.
func (m ResultsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "RESULTS"
	if len(m.levels) > 0 {
		lvl := m.levels[m.levelCursor]
		mode := "best wins"
		if m.recent {
			mode = "recent rounds"
		}
		title = fmt.Sprintf("RESULTS - %s (%s)", lvl.Name, mode)
	}
	b.WriteString(m.theme.Title.MarginBottom(1).Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Controls.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the level sidebar next to the table.
func (m ResultsModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Levels\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, lvl := range m.levels {
		cursor := "  "
		style := m.theme.ItemNormal
		if i == m.levelCursor {
			cursor = "> "
			style = m.theme.ItemActive
		}

		name := fmt.Sprintf("%2d. %s", lvl.Index, lvl.Name)
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	sidebarRendered := m.theme.Panel.Width(sidebarWidth).Render(sidebar.String())
	tableRendered := m.theme.Panel.Render(m.renderTableContent())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the selected level name above the table.
func (m ResultsModel) renderNarrowLayout() string {
	var b strings.Builder
	if len(m.levels) > 0 {
		current := m.levels[m.levelCursor]
		b.WriteString(centerText(fmt.Sprintf("< %d. %s >", current.Index, current.Name), m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(centerText(m.theme.Panel.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders stats and the table, or a placeholder.
func (m ResultsModel) renderTableContent() string {
	empty := m.theme.Description.Padding(2, 4)
	switch {
	case m.store == nil:
		return empty.Render("Results are unavailable.\nThe database could not be opened.")
	case m.loadErr != nil:
		return m.theme.Warning.Render("Could not load results: " + m.loadErr.Error())
	case len(m.rounds) == 0:
		return empty.Render("No rounds recorded yet.\nFinish a round to see it here!")
	}

	return m.renderStats() + "\n\n" + m.table.View()
}

// renderStats renders the aggregated numbers of the selected level.
func (m ResultsModel) renderStats() string {
	if m.stats == nil {
		return ""
	}
	s := m.stats
	line := fmt.Sprintf("Played %d  ·  Won %d  ·  Win rate %.0f%%", s.Played, s.Wins, s.WinRate()*100)
	if s.Wins > 0 {
		line += fmt.Sprintf("  ·  Best %d  ·  Avg %.1f", s.BestSteps, s.AvgSteps)
	}
	return m.theme.Subtitle.Render(line)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ResultsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}

// RunResults runs the results board.
// Returns true if user wants to go back to menu, false if quitting.
func RunResults(catalog []levels.Level, store *storage.Store, width, height int, theme Theme) (goBack bool, err error) {
	model := NewResultsModel(catalog, store, width, height, theme)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ResultsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
