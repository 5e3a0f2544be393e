package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorCyan
	ColorWhite
	ColorYellow
	ColorGray
)

// String returns the lowercase color name used in config files.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorYellow:
		return "yellow"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}

// ParseColor maps a config color name to a Color. Unknown names yield ColorDefault.
func ParseColor(name string) Color {
	switch name {
	case "red":
		return ColorRed
	case "cyan":
		return ColorCyan
	case "white":
		return ColorWhite
	case "yellow":
		return ColorYellow
	case "gray", "grey":
		return ColorGray
	default:
		return ColorDefault
	}
}
