package frame

import (
	"fmt"
	"image"
)

// RGB is one 8-bit pixel sample.
type RGB struct {
	R, G, B uint8
}

// Frame is a W×H grid of RGB samples in row-major order, immutable once
// built.
type Frame struct {
	Width  int
	Height int
	pix    []RGB
}

// New builds a frame from row-major samples. len(pix) must equal
// width*height.
func New(width, height int, pix []RGB) (*Frame, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyFrame, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("frame: %d samples for %dx%d grid: %w",
			len(pix), width, height, ErrBounds)
	}
	cp := make([]RGB, len(pix))
	copy(cp, pix)
	return &Frame{Width: width, Height: height, pix: cp}, nil
}

// FromImage samples any stdlib image into a Frame, discarding alpha.
func FromImage(m image.Image) (*Frame, error) {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyFrame, w, h)
	}
	pix := make([]RGB, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := m.At(x, y).RGBA()
			// RGBA returns 16-bit channels; keep the high byte.
			pix = append(pix, RGB{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8)})
		}
	}
	return &Frame{Width: w, Height: h, pix: pix}, nil
}

// At returns the sample at column x, row y. Callers stay in bounds;
// this mirrors the row-major layout used everywhere downstream.
func (f *Frame) At(x, y int) RGB {
	return f.pix[y*f.Width+x]
}

// Pixels returns the row-major samples. The slice is a copy; the frame
// stays immutable.
func (f *Frame) Pixels() []RGB {
	cp := make([]RGB, len(f.pix))
	copy(cp, f.pix)
	return cp
}

// CropColumns returns the vertical stripe covering columns
// [left, right) at full height.
func (f *Frame) CropColumns(left, right int) (*Frame, error) {
	if left < 0 || right > f.Width || left >= right {
		return nil, fmt.Errorf("%w: columns [%d,%d) of width %d",
			ErrBounds, left, right, f.Width)
	}
	w := right - left
	pix := make([]RGB, 0, w*f.Height)
	for y := 0; y < f.Height; y++ {
		row := f.pix[y*f.Width : (y+1)*f.Width]
		pix = append(pix, row[left:right]...)
	}
	return &Frame{Width: w, Height: f.Height, pix: pix}, nil
}
