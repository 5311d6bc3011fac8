package internal

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// CreateTextTexture renders a UTF-8 string into a texture and reports its
// pixel size. The caller owns the returned texture.
func CreateTextTexture(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (*sdl.Texture, int32, int32, error) {
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, 0, 0, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0, err
	}

	return texture, surface.W, surface.H, nil
}

// DrawRoundedRect fills a rectangle with rounded corners. A radius of zero
// falls back to a plain fill; the radius is clamped to half the smaller
// dimension so a radius of h/2 produces a capsule.
func DrawRoundedRect(renderer *sdl.Renderer, rect *sdl.Rect, radius int32, color sdl.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	if radius > rect.W/2 {
		radius = rect.W / 2
	}
	if radius > rect.H/2 {
		radius = rect.H / 2
	}
	if radius <= 0 {
		renderer.FillRect(rect)
		return
	}

	renderer.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y + radius, W: rect.W, H: rect.H - 2*radius})

	for i := int32(0); i < radius; i++ {
		dy := radius - i
		dx := int32(math.Sqrt(float64(radius*radius - dy*dy)))

		x1 := rect.X + radius - dx
		x2 := rect.X + rect.W - radius + dx

		renderer.DrawLine(x1, rect.Y+i, x2, rect.Y+i)
		renderer.DrawLine(x1, rect.Y+rect.H-1-i, x2, rect.Y+rect.H-1-i)
	}
}

// FillCircle fills a circle centered at (cx, cy) using horizontal scanlines.
func FillCircle(renderer *sdl.Renderer, cx, cy, radius int32, color sdl.Color) {
	if radius <= 0 {
		return
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)

	for dy := -radius; dy <= radius; dy++ {
		dx := int32(math.Sqrt(float64(radius*radius - dy*dy)))
		renderer.DrawLine(cx-dx, cy+dy, cx+dx, cy+dy)
	}
}
