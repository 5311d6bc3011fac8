package optionsbar

import (
	"fmt"

	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Chevron glyphs for the paging arrows, rasterized on demand at the needed
// pixel size. Authored with a white fill so they can be tinted at draw
// time.
const (
	chevronLeftSVG  = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="#FFFFFF" d="M15.41 7.41 14 6l-6 6 6 6 1.41-1.41L10.83 12z"/></svg>`
	chevronRightSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="#FFFFFF" d="M8.59 16.59 10 18l6-6-6-6-1.41 1.41L13.17 12z"/></svg>`
)

// arrowRects reports the circular paging buttons' boxes in screen space,
// inset from the bar's ends and vertically centered.
func arrowRects(bounds sdl.Rect, style *Style) (left, right sdl.Rect) {
	d := style.ArrowDiameter
	y := bounds.Y + (bounds.H-d)/2
	left = sdl.Rect{X: bounds.X + style.ArrowInset, Y: y, W: d, H: d}
	right = sdl.Rect{X: bounds.X + bounds.W - style.ArrowInset - d, Y: y, W: d, H: d}
	return left, right
}

// renderArrows overlays the paging affordances. An arrow whose direction
// has nowhere left to go is absent entirely, not just dimmed.
func (b *Bar[T]) renderArrows(renderer *sdl.Renderer, bounds sdl.Rect, fs *frameState) {
	if b.cfg.Style.ArrowDiameter <= 0 {
		return
	}
	left, right := arrowRects(bounds, &b.cfg.Style)
	if fs.canLeft {
		b.renderArrow(renderer, left, "left", chevronLeftSVG)
	}
	if fs.canRight {
		b.renderArrow(renderer, right, "right", chevronRightSVG)
	}
}

func (b *Bar[T]) renderArrow(renderer *sdl.Renderer, rect sdl.Rect, name, svg string) {
	style := &b.cfg.Style

	radius := rect.W / 2
	internal.FillCircle(renderer, rect.X+radius, rect.Y+radius, radius, style.ArrowBGColor)

	size := rect.W * 3 / 5
	if size <= 0 {
		return
	}

	key := fmt.Sprintf("chevron:%s:%d", name, size)
	texture := b.textures.Get(key)
	if texture == nil {
		var err error
		texture, err = internal.RenderSVGTexture(renderer, svg, size)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to rasterize chevron", "error", err)
			return
		}
		b.textures.Set(key, texture)
	}

	texture.SetColorMod(style.ArrowColor.R, style.ArrowColor.G, style.ArrowColor.B)
	texture.SetAlphaMod(style.ArrowColor.A)
	dst := sdl.Rect{
		X: rect.X + (rect.W-size)/2,
		Y: rect.Y + (rect.H-size)/2,
		W: size,
		H: size,
	}
	renderer.Copy(texture, nil, &dst)
}
