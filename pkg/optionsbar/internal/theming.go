package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the device-level palette the bar derives its default style
// from. Colors are typically loaded from CFW theme files (NextUI, Cannoli).
type Theme struct {
	HighlightColor       sdl.Color // Selection indicator fill
	AccentColor          sdl.Color // Pill backgrounds, arrow button fill
	TextColor            sdl.Color // Default label color
	HighlightedTextColor sdl.Color // Label color on top of the indicator
	HintColor            sdl.Color // Disabled labels, secondary text
	BackgroundColor      sdl.Color // Screen background color
	FontPath             string    // Path to the primary UI font
	BackgroundImagePath  string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme for the library.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
