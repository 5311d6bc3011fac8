package internal

import (
	"image"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RenderSVGTexture rasterizes an SVG document into a square texture of the
// given size. Icons should be authored with a white fill so the caller can
// tint them at draw time with SetColorMod/SetAlphaMod.
func RenderSVGTexture(renderer *sdl.Renderer, svg string, size int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, int(size), int(size)))
	scanner := rasterx.NewScannerGV(int(size), int(size), rgba, rgba.Bounds())
	raster := rasterx.NewDasher(int(size), int(size), scanner)
	icon.Draw(raster, 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		size, size, 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}

	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return texture, nil
}
