package model

// Color is a key of the fixed card palette.
type Color string

const (
	ColorPurple Color = "purple"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorPink   Color = "pink"

	DefaultColor = ColorPurple
)

// Palette lists every valid color in display order.
var Palette = []Color{ColorPurple, ColorBlue, ColorGreen, ColorOrange, ColorPink}

// Valid reports whether c belongs to the palette.
func (c Color) Valid() bool {
	for _, p := range Palette {
		if c == p {
			return true
		}
	}
	return false
}
