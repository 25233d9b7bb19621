package core

// Color is a foreground color tag for a screen cell or game entity.
// The platform layer maps tags to terminal styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWhite
	ColorGreen
	ColorMagenta
	ColorYellow
	ColorCyan
	ColorGray
	ColorBrightWhite
)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorGreen:
		return "green"
	case ColorMagenta:
		return "magenta"
	case ColorYellow:
		return "yellow"
	case ColorCyan:
		return "cyan"
	case ColorGray:
		return "gray"
	case ColorBrightWhite:
		return "bright-white"
	default:
		return "default"
	}
}
