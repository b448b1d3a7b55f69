package signal

import "errors"

var (
	// ErrLoad indicates the palette document could not be parsed as a JSON signal list.
	ErrLoad = errors.New("signal: cannot parse signal list")
	// ErrEmptyPalette indicates no usable signals remain after reserved names are removed.
	ErrEmptyPalette = errors.New("signal: palette has no usable signals")
)
