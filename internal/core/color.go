package core

// Color is a foreground color for a screen cell.
// The platform maps each value onto an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
)

// Cell is one character of a Screen with its color.
type Cell struct {
	Rune  rune
	Color Color
}
