package core

// Color is a foreground color for a screen cell. The host maps each value to
// a terminal color; games only pick from this palette.
type Color uint8

// Base palette, in ANSI order.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Brand roles shared by the games.
const (
	ColorBrand     = ColorOrange       // Player, titles
	ColorHealthy   = ColorBrightGreen  // Good choices, selections
	ColorJunk      = ColorRed          // Bad choices, warnings
	ColorHighlight = ColorBrightYellow // The active item
	ColorMuted     = ColorGray         // Scenery, hints
)
