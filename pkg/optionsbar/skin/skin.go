// Package skin loads bar styles from TOML skin files. A skin overrides
// only the keys it defines; everything else keeps the DefaultStyle value
// derived from the active theme, so a skin can restyle a single color or
// replace the whole look.
package skin

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// defaultFontSize is used when a skin names a font without a size.
const defaultFontSize = 24

// skinFile mirrors the TOML surface of a skin. Colors are "#RRGGBB" or
// "#RRGGBBAA" strings; durations use Go syntax like "200ms".
type skinFile struct {
	Font     string `toml:"font"`
	FontSize int    `toml:"font_size"`

	ActiveText   string `toml:"active_text"`
	InactiveText string `toml:"inactive_text"`
	DisabledText string `toml:"disabled_text"`
	Indicator    string `toml:"indicator"`
	Background   string `toml:"background"`

	CornerRadius  int32    `toml:"corner_radius"`
	ItemSpacing   int32    `toml:"item_spacing"`
	EdgePadding   int32    `toml:"edge_padding"`
	CenterItems   bool     `toml:"center_items"`
	SlideDuration duration `toml:"slide_duration"`

	ArrowInset      int32   `toml:"arrow_inset"`
	ArrowDiameter   int32   `toml:"arrow_diameter"`
	ArrowColor      string  `toml:"arrow_color"`
	ArrowBackground string  `toml:"arrow_background"`
	ArrowOpacity    float64 `toml:"arrow_opacity"`

	TextPadding paddingFile `toml:"text_padding"`
}

type paddingFile struct {
	Top    int32 `toml:"top"`
	Right  int32 `toml:"right"`
	Bottom int32 `toml:"bottom"`
	Left   int32 `toml:"left"`
}

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Load reads a skin file from disk. Skins that name a font require Init
// to have run, since opening the font needs SDL_ttf.
func Load(path string) (optionsbar.Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return optionsbar.Style{}, fmt.Errorf("skin: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a Style from skin file contents. Unknown keys are errors
// (likely typos), and geometric values must be non-negative. When
// disabled_text is omitted it is derived by blending the inactive text
// color halfway toward the bar background in HCL space.
func Parse(data []byte) (optionsbar.Style, error) {
	var sf skinFile
	meta, err := toml.Decode(string(data), &sf)
	if err != nil {
		return optionsbar.Style{}, fmt.Errorf("skin: decode: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return optionsbar.Style{}, fmt.Errorf("skin: unknown keys: %s (possible typos?)", strings.Join(keys, ", "))
	}

	if err := validate(&sf, meta); err != nil {
		return optionsbar.Style{}, err
	}

	return apply(&sf, meta)
}

func apply(sf *skinFile, meta toml.MetaData) (optionsbar.Style, error) {
	style := optionsbar.DefaultStyle()

	colorKeys := []struct {
		key string
		raw string
		dst *sdl.Color
	}{
		{"active_text", sf.ActiveText, &style.ActiveTextColor},
		{"inactive_text", sf.InactiveText, &style.InactiveTextColor},
		{"disabled_text", sf.DisabledText, &style.DisabledTextColor},
		{"indicator", sf.Indicator, &style.IndicatorColor},
		{"background", sf.Background, &style.BackgroundColor},
		{"arrow_color", sf.ArrowColor, &style.ArrowColor},
		{"arrow_background", sf.ArrowBackground, &style.ArrowBGColor},
	}
	for _, ck := range colorKeys {
		if !meta.IsDefined(ck.key) {
			continue
		}
		parsed, err := parseColor(ck.raw)
		if err != nil {
			return optionsbar.Style{}, fmt.Errorf("skin: %s: %w", ck.key, err)
		}
		*ck.dst = parsed
	}

	if !meta.IsDefined("disabled_text") {
		style.DisabledTextColor = deriveDisabled(style.InactiveTextColor, style.BackgroundColor)
	}
	if meta.IsDefined("arrow_opacity") {
		style.ArrowBGColor.A = uint8(sf.ArrowOpacity*255 + 0.5)
	}

	if meta.IsDefined("corner_radius") {
		style.CornerRadius = sf.CornerRadius
	}
	if meta.IsDefined("item_spacing") {
		style.ItemSpacing = sf.ItemSpacing
	}
	if meta.IsDefined("edge_padding") {
		style.EdgePadding = sf.EdgePadding
	}
	if meta.IsDefined("center_items") {
		style.CenterItems = sf.CenterItems
	}
	if meta.IsDefined("slide_duration") {
		style.SlideDuration = sf.SlideDuration.Duration
	}
	if meta.IsDefined("arrow_inset") {
		style.ArrowInset = sf.ArrowInset
	}
	if meta.IsDefined("arrow_diameter") {
		style.ArrowDiameter = sf.ArrowDiameter
	}

	if meta.IsDefined("text_padding", "top") {
		style.TextPadding.Top = sf.TextPadding.Top
	}
	if meta.IsDefined("text_padding", "right") {
		style.TextPadding.Right = sf.TextPadding.Right
	}
	if meta.IsDefined("text_padding", "bottom") {
		style.TextPadding.Bottom = sf.TextPadding.Bottom
	}
	if meta.IsDefined("text_padding", "left") {
		style.TextPadding.Left = sf.TextPadding.Left
	}

	if meta.IsDefined("font") {
		size := sf.FontSize
		if size <= 0 {
			size = defaultFontSize
		}
		font, err := ttf.OpenFont(sf.Font, size)
		if err != nil {
			return optionsbar.Style{}, fmt.Errorf("skin: open font %s: %w", sf.Font, err)
		}
		style.Font = font
	}

	return style, nil
}

// validate checks the skin for values that would produce a broken bar.
// It returns all found issues joined together.
func validate(sf *skinFile, meta toml.MetaData) error {
	var errs []error

	nonNegative := []struct {
		key   string
		value int32
	}{
		{"corner_radius", sf.CornerRadius},
		{"item_spacing", sf.ItemSpacing},
		{"edge_padding", sf.EdgePadding},
		{"arrow_inset", sf.ArrowInset},
		{"arrow_diameter", sf.ArrowDiameter},
		{"text_padding.top", sf.TextPadding.Top},
		{"text_padding.right", sf.TextPadding.Right},
		{"text_padding.bottom", sf.TextPadding.Bottom},
		{"text_padding.left", sf.TextPadding.Left},
	}
	for _, nn := range nonNegative {
		if nn.value < 0 {
			errs = append(errs, fmt.Errorf("skin: %s must be >= 0", nn.key))
		}
	}

	if sf.SlideDuration.Duration < 0 {
		errs = append(errs, fmt.Errorf("skin: slide_duration must be >= 0 (0 disables animation)"))
	}
	if meta.IsDefined("arrow_opacity") && (sf.ArrowOpacity < 0 || sf.ArrowOpacity > 1) {
		errs = append(errs, fmt.Errorf("skin: arrow_opacity must be within [0, 1]"))
	}
	if meta.IsDefined("font_size") && sf.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("skin: font_size must be > 0"))
	}

	return errors.Join(errs...)
}

// parseColor parses "#RRGGBB" or "#RRGGBBAA".
func parseColor(raw string) (sdl.Color, error) {
	hex := raw
	alpha := uint8(255)
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return sdl.Color{}, fmt.Errorf("invalid color %q", raw)
		}
		alpha = uint8(a)
		hex = hex[:7]
	}

	parsed, err := colorful.Hex(hex)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("invalid color %q", raw)
	}
	r, g, b := parsed.RGB255()
	return sdl.Color{R: r, G: g, B: b, A: alpha}, nil
}

// deriveDisabled blends the inactive text color halfway toward the bar
// background in HCL space, which reads as "dimmed" on both light and dark
// skins. Transparent backgrounds blend toward near-black instead, since
// HCL has no hue for pure black.
func deriveDisabled(inactive, background sdl.Color) sdl.Color {
	from, _ := colorful.MakeColor(color.RGBA{R: inactive.R, G: inactive.G, B: inactive.B, A: 255})

	toward, _ := colorful.MakeColor(color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 255})
	if background.A > 0 {
		toward, _ = colorful.MakeColor(color.RGBA{R: background.R, G: background.G, B: background.B, A: 255})
	}

	r, g, b := from.BlendHcl(toward, 0.5).Clamped().RGB255()
	return sdl.Color{R: r, G: g, B: b, A: inactive.A}
}
