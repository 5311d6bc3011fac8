package optionsbar

import (
	"time"

	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Style controls the appearance and motion of a Bar. It is treated as an
// immutable value: replace it wholesale through SetConfig rather than
// mutating fields on a live bar.
type Style struct {
	// Font renders the labels. When nil the shared small framework font
	// is used, so a zero Style works after Init.
	Font *ttf.Font

	ActiveTextColor   sdl.Color // Label color of the selected item
	InactiveTextColor sdl.Color // Label color of unselected items
	DisabledTextColor sdl.Color // Label color of disabled items
	IndicatorColor    sdl.Color // Selection indicator fill

	// BackgroundColor fills the bar's bounds before items are drawn.
	// Zero alpha disables the fill.
	BackgroundColor sdl.Color

	TextPadding internal.Padding // Padding around each label inside its box
	EdgePadding int32            // Leading/trailing padding at the ends of the item run
	ItemSpacing int32            // Gap between adjacent items at natural width

	// CornerRadius rounds the indicator corners. Zero derives half the
	// indicator height, producing a capsule.
	CornerRadius int32

	// CenterItems keeps items at natural width and centers the whole run
	// when it fits, instead of stretching slots across the full width.
	CenterItems bool

	// SlideDuration is the length of the indicator slide and of scroll
	// transitions. Zero disables animation entirely.
	SlideDuration time.Duration

	ArrowInset    int32     // Distance of the paging arrows from the bar edges
	ArrowDiameter int32     // Diameter of the circular arrow buttons
	ArrowColor    sdl.Color // Chevron glyph color
	ArrowBGColor  sdl.Color // Arrow circle fill; alpha carries the opacity
}

// DefaultStyle derives a style from the active theme, scaled to the
// display. Call after Init so the theme and window exist.
func DefaultStyle() Style {
	theme := internal.GetTheme()
	scale := internal.GetScaleFactor()

	arrowBG := theme.AccentColor
	arrowBG.A = 170

	return Style{
		ActiveTextColor:   theme.HighlightedTextColor,
		InactiveTextColor: theme.TextColor,
		DisabledTextColor: theme.HintColor,
		IndicatorColor:    theme.HighlightColor,
		TextPadding: internal.Padding{
			Top:    scaled(8, scale),
			Right:  scaled(22, scale),
			Bottom: scaled(8, scale),
			Left:   scaled(22, scale),
		},
		EdgePadding:   scaled(20, scale),
		ItemSpacing:   scaled(12, scale),
		SlideDuration: 200 * time.Millisecond,
		ArrowInset:    scaled(10, scale),
		ArrowDiameter: scaled(36, scale),
		ArrowColor:    theme.TextColor,
		ArrowBGColor:  arrowBG,
	}
}

func scaled(value int32, scale float32) int32 {
	v := int32(float32(value) * scale)
	if v < 1 {
		v = 1
	}
	return v
}
