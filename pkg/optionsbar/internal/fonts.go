package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes configures the point sizes loaded for the shared font set,
// before display scaling is applied.
type FontSizes struct {
	Small      int
	Medium     int
	Large      int
	ExtraLarge int
}

// DefaultFontSizes are tuned for a 720p handheld display.
var DefaultFontSizes = FontSizes{
	Small:      24,
	Medium:     30,
	Large:      38,
	ExtraLarge: 48,
}

// FontSet holds the shared fonts loaded from the active theme's font path.
type FontSet struct {
	SmallFont      *ttf.Font
	MediumFont     *ttf.Font
	LargeFont      *ttf.Font
	ExtraLargeFont *ttf.Font
}

// Fonts is populated by Init and torn down by SDLCleanup. Fields are nil
// when the theme font could not be opened.
var Fonts FontSet

func initFonts(sizes FontSizes) {
	theme := GetTheme()
	scale := GetScaleFactor()

	open := func(size int) *ttf.Font {
		scaled := int(float32(size) * scale)
		if scaled < 8 {
			scaled = 8
		}
		font, err := ttf.OpenFont(theme.FontPath, scaled)
		if err != nil {
			GetInternalLogger().Error("Failed to open font", "path", theme.FontPath, "size", scaled, "error", err)
			return nil
		}
		return font
	}

	Fonts = FontSet{
		SmallFont:      open(sizes.Small),
		MediumFont:     open(sizes.Medium),
		LargeFont:      open(sizes.Large),
		ExtraLargeFont: open(sizes.ExtraLarge),
	}
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.SmallFont, Fonts.MediumFont, Fonts.LargeFont, Fonts.ExtraLargeFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = FontSet{}
}
