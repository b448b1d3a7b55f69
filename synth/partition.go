package synth

import "fmt"

// span is one vertical stripe of the image: columns [Left, Right).
type span struct {
	Left  int
	Right int
}

func (s span) width() int {
	return s.Right - s.Left
}

// planGroups splits fullWidth columns into stripes such that each
// stripe's pixel count (width × fullHeight) fits the palette. Stripes
// tile [0, fullWidth) exactly, in order, with no overlap; every stripe
// but possibly the last has the maximum width.
//
// Fails with ErrCapacity when not even a single column fits.
func planGroups(fullWidth, fullHeight, paletteLen int) ([]span, error) {
	perGroup := paletteLen / fullHeight
	if perGroup < 1 {
		return nil, fmt.Errorf("%s: height %d needs %d signals per column, palette has %d: %w",
			methodBuild, fullHeight, fullHeight, paletteLen, ErrCapacity)
	}

	spans := make([]span, 0, (fullWidth+perGroup-1)/perGroup)
	for left := 0; left < fullWidth; left += perGroup {
		right := left + perGroup
		if right > fullWidth {
			right = fullWidth
		}
		spans = append(spans, span{Left: left, Right: right})
	}
	return spans, nil
}
