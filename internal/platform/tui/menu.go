package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pipes/internal/core"
	pipescore "github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

// MenuSelection is the level and complexity picked in the menu.
type MenuSelection struct {
	LevelID    string
	Complexity pipescore.Complexity
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	levels       []levels.Level
	stats        map[string]*storage.LevelStats
	complexity   pipescore.Complexity
	cursor       int
	scrollOffset int
	width        int
	height       int
	config       core.RuntimeConfig
	theme        Theme
	keyMapper    *KeyMapper
	quitting     bool
	selected     *MenuSelection
	openResults  bool
}

// NewMenuModel creates a level picker over catalog.
// Stats are read from store when it is not nil.
func NewMenuModel(catalog []levels.Level, store *storage.Store, complexity pipescore.Complexity, cfg core.RuntimeConfig, theme Theme) MenuModel {
	m := MenuModel{
		levels:     catalog,
		complexity: complexity,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		theme:      theme,
		keyMapper:  NewKeyMapper(),
	}
	if store != nil {
		if stats, err := store.AllLevelStats(); err == nil {
			m.stats = stats
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.updateScroll()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}

	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
			m.updateScroll()
		}

	case MenuActionLeft:
		m.complexity = prevComplexity(m.complexity)

	case MenuActionRight:
		m.complexity = m.complexity.Next()

	case MenuActionSelect:
		if len(m.levels) > 0 {
			m.selected = &MenuSelection{
				LevelID:    m.levels[m.cursor].ID,
				Complexity: m.complexity,
			}
			return m, tea.Quit
		}

	case MenuActionResults:
		m.openResults = true
		return m, tea.Quit
	}

	return m, nil
}

// prevComplexity steps back one preset; with three presets that is two steps forward.
func prevComplexity(c pipescore.Complexity) pipescore.Complexity {
	return c.Next().Next()
}

// visibleItems returns how many levels fit between header and footer.
func (m MenuModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *MenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("P I P E S"), m.width))
	b.WriteString("\n\n")

	subtitle := fmt.Sprintf("Select a level  ·  complexity < %s >", m.complexity)
	b.WriteString(centerText(m.theme.Subtitle.Render(subtitle), m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(m.theme.Warning.Render("No levels found"), m.width))
		b.WriteString("\n")
	}

	end := min(m.scrollOffset+m.visibleItems(), len(m.levels))
	for i := m.scrollOffset; i < end; i++ {
		b.WriteString(centerText(m.renderItem(i), m.width))
		b.WriteString("\n")
	}

	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.Description.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if end < len(m.levels) {
		b.WriteString(centerText(m.theme.Description.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Complexity  |  Enter: Play  |  Tab: Results  |  Q: Quit"
	b.WriteString(centerText(m.theme.Controls.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// renderItem renders one level line with its record.
func (m MenuModel) renderItem(i int) string {
	lvl := m.levels[i]

	cursor := "  "
	style := m.theme.ItemNormal
	if i == m.cursor {
		cursor = "> "
		style = m.theme.ItemActive
	}

	line := style.Render(fmt.Sprintf("%s%2d. %-18s %dx%d", cursor, lvl.Index, lvl.Name, lvl.Size, lvl.Size))

	stats, ok := m.stats[lvl.ID]
	switch {
	case !ok || stats.Played == 0:
		line += "  " + m.theme.ItemLocked.Render("new")
	case stats.Wins > 0:
		line += "  " + m.theme.Badge.Render(fmt.Sprintf("best %d", stats.BestSteps))
	default:
		line += "  " + m.theme.Warning.Render(fmt.Sprintf("%d tries", stats.Played))
	}
	return line
}

// Selected returns the selected level, or nil if none selected.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsResults returns true if user requested the results board.
func (m MenuModel) WantsResults() bool {
	return m.openResults
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection    *MenuSelection
	Config       core.RuntimeConfig
	WantsResults bool
	Quit         bool
}

// RunMenu runs the level picker and returns the choice.
func RunMenu(catalog []levels.Level, store *storage.Store, complexity pipescore.Complexity, cfg core.RuntimeConfig, theme Theme) (MenuResult, error) {
	model := NewMenuModel(catalog, store, complexity, cfg, theme)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsResults():
		result.WantsResults = true
	case m.Selected() != nil:
		result.Selection = m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}
