package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the board renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightWhite
	ColorOrange
)

// Attr is a set of text attributes for a screen cell.
type Attr uint8

const (
	AttrBold    Attr = 1 << iota // Emphasis (titles, selected hand)
	AttrReverse                  // Swapped colors (cursor)
	AttrFaint                    // Dimmed (parked dragons, empty slots)

	AttrNone Attr = 0
)

// Has reports whether all bits of other are set.
func (a Attr) Has(other Attr) bool {
	return a&other == other
}

// SuitColor returns the color for the suit at index i, cycling when there
// are more suits than colors.
func SuitColor(i int) Color {
	palette := []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow, ColorMagenta, ColorCyan, ColorOrange, ColorWhite}
	if i < 0 {
		return ColorDefault
	}
	return palette[i%len(palette)]
}
