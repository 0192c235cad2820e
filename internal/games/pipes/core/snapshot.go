package core

// PipeView is a read-only copy of one board cell.
type PipeView struct {
	Present     bool     // False for an empty cell
	Type        PipeType // Valid only when Present
	Orientation Dir
	Rotatable   bool
	Openings    [4]bool // World directions with a slot
	Linked      [4]bool // World directions holding a link
}

func viewOf(p *Pipe) PipeView {
	if p == nil {
		return PipeView{}
	}
	v := PipeView{
		Present:     true,
		Type:        p.typ,
		Orientation: p.orientation,
		Rotatable:   p.rotatable,
		Linked:      p.Connected(),
	}
	for _, d := range Directions {
		v.Openings[d] = p.CanConnect(d)
	}
	return v
}

// Board returns a snapshot of every cell in row-major order.
func (s *Session) Board() []PipeView {
	out := make([]PipeView, len(s.board))
	for i, p := range s.board {
		out[i] = viewOf(p)
	}
	return out
}

// Cell returns a snapshot of the cell at pos.
func (s *Session) Cell(pos Position) (PipeView, error) {
	if !pos.InBounds(s.boardSize) {
		return PipeView{}, ErrPositionOutOfBounds
	}
	return viewOf(s.board[pos.Index(s.boardSize)]), nil
}

// FlowMap marks what is linked to the input edge through any chain of links.
type FlowMap struct {
	Cells  []bool // Row-major, true for pipes carrying flow
	Output bool   // True when the finish edge is reached
}

// Flow walks every link from the input edge. Unlike the win check it does
// not stop at open slots, so it shows partial progress for drawing water.
func (s *Session) Flow() FlowMap {
	flow := FlowMap{Cells: make([]bool, len(s.board))}
	index := make(map[*Pipe]int, len(s.board))
	for i, p := range s.board {
		if p != nil {
			index[p] = i
		}
	}

	seen := map[*Pipe]bool{s.start: true}
	queue := []*Pipe{s.start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if i, ok := index[current]; ok {
			flow.Cells[i] = true
		}
		if current == s.finish {
			flow.Output = true
		}
		for _, d := range Directions {
			next := current.Neighbor(d)
			if next == nil || seen[next] {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	return flow
}

// State returns the current round state.
func (s *Session) State() State {
	return s.state
}

// Settings returns the active settings.
func (s *Session) Settings() Settings {
	return s.settings
}

// Size returns the board side length.
func (s *Session) Size() int {
	return s.boardSize
}

// RoundSteps returns the step budget of a round.
func (s *Session) RoundSteps() int {
	return s.roundSteps
}

// RemainingSteps returns how many rotations are left in the round.
func (s *Session) RemainingSteps() int {
	return s.remainingSteps
}

// StepsUsed returns how many rotations the round has spent.
func (s *Session) StepsUsed() int {
	return s.roundSteps - s.remainingSteps
}

// Input returns the cell linked to the input edge.
func (s *Session) Input() Position {
	return s.settings.Level.Input
}

// Output returns the cell linked to the output edge.
func (s *Session) Output() Position {
	return s.settings.Level.Output
}
