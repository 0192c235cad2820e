package core

import (
	"fmt"
	"strings"
)

// PipeMeta is the authored recipe for one board cell.
// It is read when a board is built and never mutated.
type PipeMeta struct {
	Type        PipeType
	Orientation Dir
	Active      bool // Whether the instantiated pipe can be rotated
}

// Straight returns the recipe for a straight pipe.
func Straight(orientation Dir, active bool) *PipeMeta {
	return &PipeMeta{Type: PipeStraight, Orientation: orientation, Active: active}
}

// Corner returns the recipe for a corner pipe.
func Corner(orientation Dir, active bool) *PipeMeta {
	return &PipeMeta{Type: PipeCorner, Orientation: orientation, Active: active}
}

// Tee returns the recipe for a tee pipe.
func Tee(orientation Dir, active bool) *PipeMeta {
	return &PipeMeta{Type: PipeTee, Orientation: orientation, Active: active}
}

// Cross returns the recipe for a cross pipe. Crosses never rotate.
func Cross() *PipeMeta {
	return &PipeMeta{Type: PipeCross, Orientation: DirTop}
}

// NewPipe instantiates the pipe described by the recipe.
func (m PipeMeta) NewPipe() (*Pipe, error) {
	if m.Type == PipeEdge {
		return nil, fmt.Errorf("%w: edge pipes cannot be placed on the board", ErrUnknownPipeType)
	}
	return NewPipe(m.Type, m.Orientation, m.Active)
}

// GameLevel describes one puzzle instance.
type GameLevel struct {
	ID       string      // Stable identifier used for storage and lookup
	Index    int         // Display number
	Name     string      // Display name
	Size     int         // Board side length
	Input    Position    // Cell linked to the input edge (top row by convention)
	Output   Position    // Cell linked to the output edge (bottom row by convention)
	Map      []*PipeMeta // Row-major, nil for an empty cell
	MaxSteps int         // Base step budget before complexity scaling
}

// Cell returns the recipe at pos, or nil for an empty or out-of-grid cell.
func (l GameLevel) Cell(pos Position) *PipeMeta {
	if !pos.InBounds(l.Size) {
		return nil
	}
	i := pos.Index(l.Size)
	if i >= len(l.Map) {
		return nil
	}
	return l.Map[i]
}

// Complexity scales a level's step budget. The value is the ratio in hundredths.
type Complexity int

const (
	ComplexityEasy   Complexity = 130
	ComplexityMedium Complexity = 115
	ComplexityHard   Complexity = 100
)

// Complexities lists all complexities from easiest to hardest.
var Complexities = []Complexity{ComplexityEasy, ComplexityMedium, ComplexityHard}

// Ratio returns the multiplier applied to a level's step budget.
func (c Complexity) Ratio() float64 {
	return float64(c) / 100
}

// Evaluate returns round(ratio * maxSteps), rounding halves up.
// Integer arithmetic keeps 30 * 1.15 at exactly 34.5 -> 35.
func (c Complexity) Evaluate(maxSteps int) int {
	return (maxSteps*int(c) + 50) / 100
}

// String returns the preset name of the complexity.
func (c Complexity) String() string {
	switch c {
	case ComplexityEasy:
		return "easy"
	case ComplexityMedium:
		return "medium"
	case ComplexityHard:
		return "hard"
	default:
		return fmt.Sprintf("x%.2f", c.Ratio())
	}
}

// Next returns the following preset, wrapping from hard back to easy.
func (c Complexity) Next() Complexity {
	for i, v := range Complexities {
		if v == c {
			return Complexities[(i+1)%len(Complexities)]
		}
	}
	return ComplexityEasy
}

// ParseComplexity parses a preset name. An empty string selects medium.
func ParseComplexity(s string) (Complexity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return ComplexityEasy, nil
	case "", "medium", "normal":
		return ComplexityMedium, nil
	case "hard":
		return ComplexityHard, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownComplexity, s)
	}
}

// Settings is the configuration of a Session, replaceable between rounds.
type Settings struct {
	Complexity Complexity
	Level      GameLevel
}
