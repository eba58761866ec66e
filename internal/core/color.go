package core

// Color is a foreground color for a screen cell.
// Values map onto ANSI 256-color codes in the platform layer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorCyan
	ColorBlue
	ColorMagenta
	ColorBrightWhite
	ColorBrightYellow
)
