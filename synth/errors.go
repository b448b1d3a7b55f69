package synth

import "errors"

var (
	// ErrNoFrames indicates an empty frame sequence. Raised before any
	// entity is constructed; there is no degenerate empty window.
	ErrNoFrames = errors.New("synth: no frames to synthesize")
	// ErrCapacity indicates the palette cannot address even one column
	// of pixels at the frame height. Fatal, never clipped.
	ErrCapacity = errors.New("synth: not enough signals for one column of lamps")
	// ErrPaletteEmpty indicates a palette with no usable signals.
	ErrPaletteEmpty = errors.New("synth: empty signal palette")
	// ErrFrameMismatch indicates frames of differing dimensions in one sequence.
	ErrFrameMismatch = errors.New("synth: frame dimensions differ across sequence")
)
