package frame

import "errors"

var (
	// ErrNoFrames indicates an empty source sequence; nothing can be sampled.
	ErrNoFrames = errors.New("frame: no frames to sample")
	// ErrEmptyFrame indicates a frame with zero width or height.
	ErrEmptyFrame = errors.New("frame: frame must have at least one row and one column")
	// ErrBounds indicates a crop range outside the frame.
	ErrBounds = errors.New("frame: crop range out of bounds")
)
