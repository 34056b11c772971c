package main

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// argbImage adapts the PPU's packed-ARGB framebuffer ([]uint32,
// 0xAARRGGBB) to image.Image so it can be fed through
// golang.org/x/image/draw instead of a per-pixel screen.Set loop.
type argbImage struct {
	pix           []uint32
	width, height int
}

func (a *argbImage) ColorModel() color.Model { return color.NRGBAModel }

func (a *argbImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, a.width, a.height)
}

func (a *argbImage) At(x, y int) color.Color {
	px := a.pix[y*a.width+x]
	return color.NRGBA{
		A: uint8(px >> 24),
		R: uint8(px >> 16),
		G: uint8(px >> 8),
		B: uint8(px),
	}
}

// frameConverter reuses one destination image across frames so Draw
// doesn't allocate 256x240 pixels sixty times a second.
type frameConverter struct {
	dst *image.RGBA
}

func newFrameConverter(w, h int) *frameConverter {
	return &frameConverter{dst: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// convert blits src (packed ARGB) into the converter's RGBA buffer via
// draw.Draw's bulk conversion path and returns the raw bytes ready for
// ebiten.Image.WritePixels.
func (f *frameConverter) convert(src []uint32, w, h int) []byte {
	img := &argbImage{pix: src, width: w, height: h}
	draw.Draw(f.dst, f.dst.Bounds(), img, image.Point{}, draw.Src)
	return f.dst.Pix
}
