package pipes

import (
	"fmt"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

const (
	cellWidth    = 5 // Terminal columns per board cell
	cellHeight   = 3 // Terminal rows per board cell
	hudHeight    = 2
	footerHeight = 1
)

// joints maps an opening mask (Top=1, Right=2, Bottom=4, Left=8) to the
// glyph drawn at the center of a cell.
var joints = [16]rune{
	0:  '·',
	1:  '╵',
	2:  '╶',
	3:  '└',
	4:  '╷',
	5:  '│',
	6:  '┌',
	7:  '├',
	8:  '╴',
	9:  '┘',
	10: '─',
	11: '┴',
	12: '┐',
	13: '┤',
	14: '┬',
	15: '┼',
}

// boardExtent returns the screen size of a board including its frame.
func boardExtent(size int) (w, h int) {
	return size*cellWidth + 2, size*cellHeight + 2
}

// MinScreenSize returns the smallest screen that shows a board of size.
func MinScreenSize(size int) (w, h int) {
	boardW, boardH := boardExtent(size)
	return boardW + 2, boardH + hudHeight + footerHeight
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.session.Size()
	boardW, boardH := boardExtent(size)
	frame := platformcore.NewRect((g.screenW-boardW)/2, hudHeight, boardW, boardH)

	g.renderHUD(dst, frame)
	g.renderBoard(dst, frame)
	g.renderFooter(dst, frame)
	g.renderOverlays(dst, frame)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorYellow)
	w, h := MinScreenSize(g.session.Size())
	hint := fmt.Sprintf("Need %dx%d", w, h)
	dst.DrawTextCentered(y+1, hint, platformcore.ColorGray)
}

// renderHUD draws level, complexity and step information.
func (g *Game) renderHUD(dst *platformcore.Screen, frame platformcore.Rect) {
	lvl := g.Level()
	dst.DrawTextCentered(0, fmt.Sprintf("PIPES · Level %d/%d · %s", lvl.Index, len(g.catalog), lvl.Name), platformcore.ColorBrightWhite)

	steps := fmt.Sprintf("Steps: %d/%d", g.session.RemainingSteps(), g.session.RoundSteps())
	stepsColor := platformcore.ColorGreen
	if left := g.session.RemainingSteps(); left*4 <= g.session.RoundSteps() {
		stepsColor = platformcore.ColorOrange
	}
	dst.DrawTextColored(frame.X, 1, steps, stepsColor)

	mode := "[" + g.complexity.String() + "]"
	dst.DrawTextColored(frame.Right()-utf8.RuneCountInString(mode), 1, mode, platformcore.ColorCyan)
}

// renderBoard draws the frame, the edge markers and every cell.
func (g *Game) renderBoard(dst *platformcore.Screen, frame platformcore.Rect) {
	dst.DrawBox(frame, platformcore.ColorGray)

	size := g.session.Size()
	flow := g.session.Flow()
	board := g.session.Board()

	in := g.session.Input()
	dst.SetColored(frame.X+1+in.X*cellWidth+cellWidth/2, frame.Y, '▼', platformcore.ColorBrightCyan)
	out := g.session.Output()
	outColor := platformcore.ColorGray
	if flow.Output {
		outColor = platformcore.ColorBrightCyan
	}
	dst.SetColored(frame.X+1+out.X*cellWidth+cellWidth/2, frame.Bottom()-1, '▼', outColor)

	for i, view := range board {
		pos := core.PositionFromIndex(i, size)
		x := frame.X + 1 + pos.X*cellWidth
		y := frame.Y + 1 + pos.Y*cellHeight
		drawCell(dst, x, y, view, cellColor(view, flow.Cells[i]))
	}

	if !g.session.State().Finished() {
		x := frame.X + 1 + g.cursor.X*cellWidth
		y := frame.Y + 1 + g.cursor.Y*cellHeight
		drawCursor(dst, x, y)
	}
}

func cellColor(view core.PipeView, wet bool) platformcore.Color {
	switch {
	case !view.Present:
		return platformcore.ColorGray
	case wet:
		return platformcore.ColorBrightCyan
	case !view.Rotatable:
		return platformcore.ColorGray
	default:
		return platformcore.ColorWhite
	}
}

// drawCell draws one pipe with its arms reaching the cell edges.
func drawCell(dst *platformcore.Screen, x, y int, view core.PipeView, c platformcore.Color) {
	cx, cy := x+cellWidth/2, y+cellHeight/2

	mask := 0
	for _, d := range core.Directions {
		if view.Present && view.Openings[d] {
			mask |= 1 << d
		}
	}
	dst.SetColored(cx, cy, joints[mask], c)

	if mask&(1<<core.DirTop) != 0 {
		dst.SetColored(cx, y, '│', c)
	}
	if mask&(1<<core.DirBottom) != 0 {
		dst.SetColored(cx, y+cellHeight-1, '│', c)
	}
	if mask&(1<<core.DirLeft) != 0 {
		for i := x; i < cx; i++ {
			dst.SetColored(i, cy, '─', c)
		}
	}
	if mask&(1<<core.DirRight) != 0 {
		for i := cx + 1; i < x+cellWidth; i++ {
			dst.SetColored(i, cy, '─', c)
		}
	}
}

// drawCursor marks the corners of the selected cell.
func drawCursor(dst *platformcore.Screen, x, y int) {
	c := platformcore.ColorYellow
	dst.SetColored(x, y, '╭', c)
	dst.SetColored(x+cellWidth-1, y, '╮', c)
	dst.SetColored(x, y+cellHeight-1, '╰', c)
	dst.SetColored(x+cellWidth-1, y+cellHeight-1, '╯', c)
}

// renderFooter draws the status message or the controls.
func (g *Game) renderFooter(dst *platformcore.Screen, frame platformcore.Rect) {
	y := frame.Bottom()
	if g.message != "" {
		dst.DrawTextCentered(y, g.message, platformcore.ColorOrange)
		return
	}
	dst.DrawTextCentered(y, g.Controls(), platformcore.ColorGray)
}

// renderOverlays draws the end-of-round box.
func (g *Game) renderOverlays(dst *platformcore.Screen, frame platformcore.Rect) {
	switch g.session.State() {
	case core.StateWin:
		used := fmt.Sprintf("Used %d of %d steps", g.session.StepsUsed(), g.session.RoundSteps())
		g.drawOverlay(dst, frame, platformcore.ColorGreen, "FLOW COMPLETE!", used, "R: Replay  N: Next level")
	case core.StateLose:
		g.drawOverlay(dst, frame, platformcore.ColorRed, "OUT OF STEPS", "The water never arrived", "R: Restart  C: Complexity")
	}
}

// drawOverlay draws a centered text box over the board.
func (g *Game) drawOverlay(dst *platformcore.Screen, frame platformcore.Rect, c platformcore.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	box := frame.Centered(maxLen+4, len(lines)+2)

	// Clear area behind overlay
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, c)

	for i, line := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(line))/2
		lineColor := platformcore.ColorBrightWhite
		if i == 0 {
			lineColor = c
		}
		dst.DrawTextColored(x, box.Y+1+i, line, lineColor)
	}
}
