package frame

import (
	"image"

	"golang.org/x/image/draw"
)

// Downscale shrinks m so its longest side is at most maxSize pixels,
// preserving aspect ratio. Images already within the bound are returned
// unchanged; Downscale never upscales. Resampling is bilinear.
func Downscale(m image.Image, maxSize int) image.Image {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize < 1 || (w <= maxSize && h <= maxSize) {
		return m
	}

	scale := float64(maxSize) / float64(w)
	if s := float64(maxSize) / float64(h); s < scale {
		scale = s
	}
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.BiLinear.Scale(dst, dst.Bounds(), m, b, draw.Src, nil)
	return dst
}
