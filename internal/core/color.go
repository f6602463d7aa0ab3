package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color style.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightBlue
	ColorOrange
	ColorGray
	ColorBrown
	ColorPurple
	ColorLavender
	ColorTeal
)

// colorHex holds the web representation of each color.
var colorHex = map[Color]string{
	ColorDefault:      "#ffffff",
	ColorRed:          "#eb4d4b",
	ColorGreen:        "#00b894",
	ColorYellow:       "#f9ca24",
	ColorBlue:         "#45b7d1",
	ColorMagenta:      "#ff69b4",
	ColorCyan:         "#4ecdc4",
	ColorWhite:        "#ffffff",
	ColorBrightRed:    "#ff6b6b",
	ColorBrightYellow: "#fdcb6e",
	ColorBrightBlue:   "#74b9ff",
	ColorOrange:       "#f0932b",
	ColorGray:         "#808080",
	ColorBrown:        "#8b4513",
	ColorPurple:       "#6c5ce7",
	ColorLavender:     "#a29bfe",
	ColorTeal:         "#00cec9",
}

// Hex returns the color as a CSS hex string.
func (c Color) Hex() string {
	if h, ok := colorHex[c]; ok {
		return h
	}
	return colorHex[ColorDefault]
}

// Palette returns every predefined color in declaration order.
func Palette() []Color {
	p := make([]Color, 0, len(colorHex))
	for c := ColorDefault; c <= ColorTeal; c++ {
		p = append(p, c)
	}
	return p
}
