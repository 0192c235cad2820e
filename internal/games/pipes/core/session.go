package core

import "fmt"

// Session owns one live board and runs rounds on it.
// A Session is not safe for concurrent use; each player owns their own.
type Session struct {
	settings Settings
	state    State

	boardSize      int
	roundSteps     int
	remainingSteps int

	board  []*Pipe // Row-major, nil for empty cells
	start  *Pipe   // Input edge, linked to the input cell from above
	finish *Pipe   // Output edge, linked to the output cell from below

	listeners []ResultListener
}

// NewSession creates a session configured for settings, ready in StateIdle.
func NewSession(settings Settings) (*Session, error) {
	s := &Session{settings: settings, state: StateIdle}
	if err := s.configure(); err != nil {
		return nil, err
	}
	return s, nil
}

// configure rebuilds the board, edges and step budget from the settings.
// It leaves the round state untouched.
func (s *Session) configure() error {
	level := s.settings.Level

	board, err := BuildBoard(level)
	if err != nil {
		return fmt.Errorf("level %q: %w", level.ID, err)
	}
	if !level.Input.InBounds(level.Size) || !level.Output.InBounds(level.Size) {
		return fmt.Errorf("level %q: %w: input %v or output %v outside %dx%d board",
			level.ID, ErrInvalidLevel, level.Input, level.Output, level.Size, level.Size)
	}

	s.boardSize = level.Size
	s.roundSteps = s.settings.Complexity.Evaluate(level.MaxSteps)
	s.remainingSteps = s.roundSteps
	s.board = board
	s.start = newEdgePipe()
	s.finish = newEdgePipe()

	s.updateAllConnections()
	return nil
}

// Restart begins a new round on the current level. Every pipe is recreated
// from its authored recipe, discarding rotations made during the last round.
func (s *Session) Restart() error {
	board, err := BuildBoard(s.settings.Level)
	if err != nil {
		return fmt.Errorf("level %q: %w", s.settings.Level.ID, err)
	}

	s.state = StateIdle
	s.remainingSteps = s.roundSteps
	s.board = board
	s.start.detachAll()
	s.finish.detachAll()

	s.updateAllConnections()
	return nil
}

// Reconfigure replaces the settings and rebuilds the board.
// It is refused while a round is in progress and reports whether it applied.
// On error the previous settings and board are kept.
func (s *Session) Reconfigure(settings Settings) (bool, error) {
	if s.state == StateInProgress {
		return false, nil
	}

	previous := s.settings
	s.settings = settings
	if err := s.configure(); err != nil {
		s.settings = previous
		return false, err
	}
	s.state = StateIdle
	return true, nil
}

// Rotate is the player action: it spends one step and turns the pipe at pos.
// Empty cells and fixed pipes still cost a step. Once the budget is spent the
// next call ends the round as lost without touching the board.
// Calls after a round has ended are ignored until Restart or Reconfigure.
func (s *Session) Rotate(pos Position) (State, error) {
	if !pos.InBounds(s.boardSize) {
		return s.state, fmt.Errorf("%w: %v on %dx%d board",
			ErrPositionOutOfBounds, pos, s.boardSize, s.boardSize)
	}
	if s.state.Finished() {
		return s.state, nil
	}

	s.state = StateInProgress
	if s.remainingSteps <= 0 {
		s.lose()
		return s.state, nil
	}
	s.remainingSteps--

	if pipe := s.board[pos.Index(s.boardSize)]; pipe != nil {
		pipe.Rotate()
	}
	s.updateConnections(pos)
	s.checkConnection()

	return s.state, nil
}

func (s *Session) win() {
	s.state = StateWin
	s.notifyWin()
}

func (s *Session) lose() {
	s.state = StateLose
	s.notifyLose()
}

// updateAllConnections sweeps every cell in row-major order.
func (s *Session) updateAllConnections() {
	for i := range s.board {
		s.updateConnections(PositionFromIndex(i, s.boardSize))
	}
}

// updateConnections links or unlinks the pipe at pos with its four neighbours.
func (s *Session) updateConnections(pos Position) {
	pipe := s.board[pos.Index(s.boardSize)]
	if pipe == nil {
		return
	}
	for _, d := range Directions {
		pipe.UpdateConnection(s.neighbor(pos, d), d)
	}
}

// neighbor returns the pipe next to pos in direction d. The input cell sees
// the start edge above it and the output cell sees the finish edge below it.
func (s *Session) neighbor(pos Position, d Dir) *Pipe {
	level := s.settings.Level
	if d == DirTop && pos == level.Input {
		return s.start
	}
	if d == DirBottom && pos == level.Output {
		return s.finish
	}
	i, ok := pos.NeighborIndex(d, s.boardSize)
	if !ok {
		return nil
	}
	return s.board[i]
}

// checkConnection walks the link graph depth-first from the input cell and
// declares a win once the finish edge has been visited. The walk gives up as
// soon as it meets a pipe with an unlinked slot, so every pipe reachable from
// the input must be fully connected.
func (s *Session) checkConnection() {
	first := s.start.Neighbor(DirBottom)
	if first == nil {
		return
	}

	stack := []*Pipe{first}
	visited := map[*Pipe]bool{s.start: true}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited[current] = true

		maxEmpty := len(Directions) - current.ConnectionCount() + 1
		empty := 0
		for _, d := range Directions {
			next := current.Neighbor(d)
			if next == nil {
				empty++
				if empty == maxEmpty {
					return
				}
				continue
			}
			if !visited[next] {
				stack = append(stack, next)
			}
		}
	}

	if visited[s.finish] {
		s.win()
	}
}
