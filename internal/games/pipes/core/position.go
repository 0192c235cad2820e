package core

import "fmt"

// Position is a cell coordinate on a square board.
// X increases to the right, Y increases downward. Cells are stored in
// row-major order: index = Y*size + X.
type Position struct {
	X int
	Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// PositionFromIndex converts a row-major index back to a Position.
func PositionFromIndex(index, size int) Position {
	return Position{X: index % size, Y: index / size}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Index returns the row-major index of the position on a board of the given size.
func (p Position) Index(size int) int {
	return p.Y*size + p.X
}

// InBounds returns true if the position lies on a size x size board.
func (p Position) InBounds(size int) bool {
	return p.X >= 0 && p.X < size && p.Y >= 0 && p.Y < size
}

// TopIndex returns the index of the cell above, or false on the first row.
func (p Position) TopIndex(size int) (int, bool) {
	if p.Y-1 < 0 {
		return 0, false
	}
	return (p.Y-1)*size + p.X, true
}

// RightIndex returns the index of the cell to the right, or false on the last column.
func (p Position) RightIndex(size int) (int, bool) {
	if p.X+1 >= size {
		return 0, false
	}
	return p.Y*size + p.X + 1, true
}

// BottomIndex returns the index of the cell below, or false on the last row.
func (p Position) BottomIndex(size int) (int, bool) {
	if p.Y+1 >= size {
		return 0, false
	}
	return (p.Y+1)*size + p.X, true
}

// LeftIndex returns the index of the cell to the left, or false on the first column.
func (p Position) LeftIndex(size int) (int, bool) {
	if p.X-1 < 0 {
		return 0, false
	}
	return p.Y*size + p.X - 1, true
}

// NeighborIndex dispatches to the lookup for direction d.
func (p Position) NeighborIndex(d Dir, size int) (int, bool) {
	switch d {
	case DirTop:
		return p.TopIndex(size)
	case DirRight:
		return p.RightIndex(size)
	case DirBottom:
		return p.BottomIndex(size)
	case DirLeft:
		return p.LeftIndex(size)
	default:
		return 0, false
	}
}
