// Package pixel packs 8-bit RGB samples into the single integers the
// circuit network carries, and converts whole frames into the ordered
// filter lists a constant combinator holds.
//
// A packed value is r·65536 + g·256 + b; Unpack recovers the exact
// channels for every 8-bit triple. Filters pairs a frame's pixels with
// palette signals in row-major order and fails with ErrCapacity before
// building anything when the frame does not fit the palette.
package pixel

import (
	"errors"
	"fmt"

	"github.com/colinchilds/giftorio/blueprint"
	"github.com/colinchilds/giftorio/frame"
	"github.com/colinchilds/giftorio/signal"
)

// ErrCapacity indicates a frame holds more pixels than the palette has
// addressable signals. Hard constraint, never clipped.
var ErrCapacity = errors.New("pixel: frame exceeds signal capacity")

// Channel packing factors of the 24-bit layout.
const (
	redShift   = 1 << 16
	greenShift = 1 << 8
	channelMax = 0xFF
)

// Pack folds an RGB triple into one non-negative integer.
func Pack(r, g, b uint8) int {
	return int(r)*redShift + int(g)*greenShift + int(b)
}

// Unpack splits a packed value back into its channels. Inverse of Pack
// for all 8-bit inputs.
func Unpack(v int) (r, g, b uint8) {
	return uint8((v / redShift) & channelMax),
		uint8((v / greenShift) & channelMax),
		uint8(v & channelMax)
}

// Filters converts f's pixels into constant-combinator filters, pairing
// pixel i (row-major) with palette[i]. Filter indices start at 1, the
// comparator is "=", and signals without an explicit quality are
// stamped normal.
//
// Fails with ErrCapacity (offending counts included) when the frame
// holds more pixels than the palette; the check runs before any filter
// is built.
func Filters(f *frame.Frame, palette []signal.Signal) ([]blueprint.Filter, error) {
	n := f.Width * f.Height
	if n > len(palette) {
		return nil, fmt.Errorf("%w: %d pixels, %d signals", ErrCapacity, n, len(palette))
	}

	filters := make([]blueprint.Filter, 0, n)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			i := y*f.Width + x
			s := palette[i]
			if s.Quality == "" {
				s.Quality = signal.QualityNormal
			}
			p := f.At(x, y)
			filters = append(filters, blueprint.Filter{
				Index:      i + 1,
				Comparator: "=",
				Count:      Pack(p.R, p.G, p.B),
				Signal:     s,
			})
		}
	}
	return filters, nil
}
