package optionsbar

import (
	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar/internal"
	"github.com/veandco/go-sdl2/ttf"
)

// TextMeasurer reports the pixel size of a rendered label. It decouples
// layout from SDL_ttf so geometry can be computed, and tested, without a
// live font.
type TextMeasurer interface {
	SizeUTF8(text string) (width, height int, err error)
}

// fontMeasurer adapts a ttf.Font to TextMeasurer.
type fontMeasurer struct {
	font *ttf.Font
}

func (m fontMeasurer) SizeUTF8(text string) (int, int, error) {
	return m.font.SizeUTF8(text)
}

// sizeF is a measured box in fractional pixels.
type sizeF struct {
	w, h float32
}

// measureItems computes each item's padded box from its label. Labels that
// measure to nothing still occupy their padding.
func measureItems(resolved []resolvedItem, measurer TextMeasurer, padding internal.Padding) []sizeF {
	sizes := make([]sizeF, len(resolved))
	for i, ri := range resolved {
		var w, h int
		if ri.label != "" {
			w, h, _ = measurer.SizeUTF8(ri.label)
		}
		sizes[i] = sizeF{
			w: float32(w) + float32(padding.Horizontal()),
			h: float32(h) + float32(padding.Vertical()),
		}
	}
	return sizes
}
