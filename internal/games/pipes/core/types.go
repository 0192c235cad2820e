// Package core provides the connection engine for the Pipes puzzle game.
// This package is UI-agnostic and has no dependencies outside the standard library.
package core

// Dir represents one of the four cardinal directions of the board.
// Values are ordered clockwise so that rotation is modular arithmetic.
type Dir uint8

const (
	DirTop Dir = iota
	DirRight
	DirBottom
	DirLeft
)

// Directions lists all directions in sweep order.
var Directions = [4]Dir{DirTop, DirRight, DirBottom, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirTop:
		return "Top"
	case DirRight:
		return "Right"
	case DirBottom:
		return "Bottom"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Next returns the direction rotated 90 degrees clockwise.
func (d Dir) Next() Dir {
	return (d + 1) % 4
}

// Prev returns the direction rotated 90 degrees counter-clockwise.
func (d Dir) Prev() Dir {
	return (d + 3) % 4
}

// Opposite returns the direction rotated 180 degrees.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

// State is the round state of a Session.
type State uint8

const (
	StateIdle State = iota
	StateInProgress
	StateWin
	StateLose
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInProgress:
		return "in_progress"
	case StateWin:
		return "win"
	case StateLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Finished reports whether the state ends a round.
func (s State) Finished() bool {
	return s == StateWin || s == StateLose
}
