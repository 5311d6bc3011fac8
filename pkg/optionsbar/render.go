package optionsbar

import (
	"fmt"
	"math"
	"time"

	"github.com/evilHazzarD/animated-options-bar/pkg/optionsbar/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Render draws one frame of the bar into bounds. The snapshot it draws
// from is also kept for hit-testing, so taps resolve against exactly what
// is on screen.
func (b *Bar[T]) Render(renderer *sdl.Renderer, bounds sdl.Rect) {
	if b.destroyed {
		return
	}

	fs := b.frame(time.Now(), float32(bounds.W), float32(bounds.H))
	b.lastFrame = &fs
	b.lastRect = bounds

	if b.cfg.Style.BackgroundColor.A > 0 {
		c := b.cfg.Style.BackgroundColor
		renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
		renderer.SetDrawColor(c.R, c.G, c.B, c.A)
		renderer.FillRect(&bounds)
	}
	if fs.empty {
		return
	}

	if fs.mode == LayoutScrollbar {
		b.renderScrollbarPass(renderer, bounds, &fs)
		return
	}
	b.renderRun(renderer, bounds, &fs, 0)
}

// renderScrollbarPass clips the item run to the inner viewport so partly
// visible items don't bleed into the edge padding, then overlays the
// paging arrows.
func (b *Bar[T]) renderScrollbarPass(renderer *sdl.Renderer, bounds sdl.Rect, fs *frameState) {
	edge := b.cfg.Style.EdgePadding
	clip := sdl.Rect{X: bounds.X + edge, Y: bounds.Y, W: bounds.W - 2*edge, H: bounds.H}
	if clip.W <= 0 {
		return
	}

	renderer.SetClipRect(&clip)
	b.renderRun(renderer, bounds, fs, float32(edge)-fs.offset)
	renderer.SetClipRect(nil)

	b.renderArrows(renderer, bounds, fs)
}

// renderRun draws the indicator and the labels. shift maps content
// coordinates onto the bar: zero in tabbar mode, edge padding minus the
// scroll offset in scrollbar mode.
func (b *Bar[T]) renderRun(renderer *sdl.Renderer, bounds sdl.Rect, fs *frameState, shift float32) {
	style := &b.cfg.Style

	indicator := sdl.Rect{
		X: bounds.X + roundPx(fs.indicator.x+shift),
		Y: bounds.Y + roundPx(fs.indicator.y),
		W: roundPx(fs.indicator.w),
		H: roundPx(fs.indicator.h),
	}
	radius := style.CornerRadius
	if radius == 0 {
		radius = indicator.H / 2
	}
	internal.DrawRoundedRect(renderer, &indicator, radius, style.IndicatorColor)

	font := b.labelFont()
	if font == nil {
		return
	}
	for i, rect := range fs.rects {
		label := b.resolved[i].label
		if label == "" {
			continue
		}
		texture, w, h := b.labelTexture(renderer, font, label, b.labelColor(i, fs.activeIndex))
		if texture == nil {
			continue
		}
		dst := sdl.Rect{
			X: bounds.X + roundPx(rect.x+shift+(rect.w-float32(w))/2),
			Y: bounds.Y + roundPx(rect.y+(rect.h-float32(h))/2),
			W: w,
			H: h,
		}
		renderer.Copy(texture, nil, &dst)
	}
}

// labelColor picks the text color for one item. The active color follows
// the delayed flip computed in the frame; the selected item stays active
// even when the caller reports it disabled, because it is what the
// indicator sits under.
func (b *Bar[T]) labelColor(index, activeIndex int) sdl.Color {
	if index == activeIndex {
		return b.cfg.Style.ActiveTextColor
	}
	if !b.enabled(b.resolved[index].id) {
		return b.cfg.Style.DisabledTextColor
	}
	return b.cfg.Style.InactiveTextColor
}

// labelTexture renders a label once per (text, color) pair and serves it
// from the cache afterwards, so animation frames never touch the shaper.
func (b *Bar[T]) labelTexture(renderer *sdl.Renderer, font *ttf.Font, label string, color sdl.Color) (*sdl.Texture, int32, int32) {
	key := fmt.Sprintf("label:%02x%02x%02x%02x:%s", color.R, color.G, color.B, color.A, label)

	texture := b.textures.Get(key)
	if texture == nil {
		var err error
		texture, _, _, err = internal.CreateTextTexture(renderer, font, label, color)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to render label", "label", label, "error", err)
			return nil, 0, 0
		}
		b.textures.Set(key, texture)
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return nil, 0, 0
	}
	return texture, w, h
}

func (b *Bar[T]) labelFont() *ttf.Font {
	if b.cfg.Style.Font != nil {
		return b.cfg.Style.Font
	}
	return internal.Fonts.SmallFont
}

func roundPx(v float32) int32 {
	return int32(math.Round(float64(v)))
}
