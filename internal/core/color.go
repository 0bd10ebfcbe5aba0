package core

// Color represents a foreground color for a screen cell or a board cell.
// ColorDefault doubles as "empty" on the playfield.
type Color uint8

// Palette shared by the playfield, the HUD and the terminal renderer.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorBlue
	ColorOrange
	ColorYellow
	ColorGreen
	ColorMagenta
	ColorRed
	ColorWhite
	ColorGray
	ColorBrightWhite
	ColorBrightYellow
)

// IsEmpty reports whether the color marks an unoccupied cell.
func (c Color) IsEmpty() bool {
	return c == ColorDefault
}

// String returns a short name for the color, used in debug output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorCyan:
		return "cyan"
	case ColorBlue:
		return "blue"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorMagenta:
		return "magenta"
	case ColorRed:
		return "red"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorBrightWhite:
		return "bright-white"
	case ColorBrightYellow:
		return "bright-yellow"
	default:
		return "unknown"
	}
}
