package core

import "errors"

// Sentinel errors returned by the engine.
var (
	// ErrUnknownPipeType is returned when a recipe carries an unsupported type tag.
	ErrUnknownPipeType = errors.New("pipes: unknown pipe type")

	// ErrInvalidLevel is returned when a level cannot describe a board.
	ErrInvalidLevel = errors.New("pipes: invalid level")

	// ErrPositionOutOfBounds is returned for a position outside the board.
	ErrPositionOutOfBounds = errors.New("pipes: position out of bounds")

	// ErrUnknownComplexity is returned by ParseComplexity.
	ErrUnknownComplexity = errors.New("pipes: unknown complexity")
)
