package rules

// Color tags food and the entries of inventories and disposal sequences.
type Color string

// The fixed palette food colors are drawn from.
const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorOrange Color = "orange"
	ColorPurple Color = "purple"
)

var defaultPalette = []Color{
	ColorRed,
	ColorBlue,
	ColorGreen,
	ColorYellow,
	ColorOrange,
	ColorPurple,
}

// Palette returns a copy of the colors food and sequences are drawn from.
func Palette() []Color {
	p := make([]Color, len(defaultPalette))
	copy(p, defaultPalette)
	return p
}

// IsPaletteColor reports whether c belongs to the palette.
func IsPaletteColor(c Color) bool {
	for _, p := range defaultPalette {
		if p == c {
			return true
		}
	}
	return false
}
