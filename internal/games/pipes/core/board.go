package core

import "fmt"

// BuildBoard instantiates the row-major pipe grid described by level.
// Empty cells stay nil. An unsupported type tag aborts construction.
func BuildBoard(level GameLevel) ([]*Pipe, error) {
	if level.Size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidLevel, level.Size)
	}
	if len(level.Map) != level.Size*level.Size {
		return nil, fmt.Errorf("%w: map has %d cells, want %d",
			ErrInvalidLevel, len(level.Map), level.Size*level.Size)
	}

	board := make([]*Pipe, len(level.Map))
	for i, meta := range level.Map {
		if meta == nil {
			continue
		}
		pipe, err := meta.NewPipe()
		if err != nil {
			return nil, fmt.Errorf("cell %v: %w", PositionFromIndex(i, level.Size), err)
		}
		board[i] = pipe
	}
	return board, nil
}
