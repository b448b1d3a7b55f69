package frame

import "math"

// DefaultDurationMS substitutes for a source frame that reports no
// delay of its own.
const DefaultDurationMS = 100

// msPerSecond converts durations to rates.
const msPerSecond = 1000.0

// Timed pairs a frame with how long the source shows it.
type Timed struct {
	Frame      *Frame
	DurationMS int
}

// EffectiveFPS clamps targetFPS to the intrinsic rate of the source
// sequence, so resampling never fabricates frames faster than the
// source ever showed them. Returns at least 1.
func EffectiveFPS(frames []Timed, targetFPS int) int {
	if len(frames) == 0 || targetFPS < 1 {
		return 1
	}
	total := 0
	for _, t := range frames {
		total += durationOrDefault(t.DurationMS)
	}
	avg := float64(total) / float64(len(frames))
	intrinsic := int(math.Floor(msPerSecond / avg))
	if intrinsic < 1 {
		intrinsic = 1
	}
	if targetFPS < intrinsic {
		return targetFPS
	}
	return intrinsic
}

// Resample produces an evenly spaced sequence at fps from a
// variable-duration source. Each output slot picks the source frame
// nearest to its target time, using the average source frame duration
// (sources may have per-frame delays; the average keeps the walk
// drift-free over the whole clip).
//
// Fails with ErrNoFrames on an empty input, before any work.
func Resample(frames []Timed, fps int) ([]*Frame, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if fps < 1 {
		fps = 1
	}

	total := 0
	for _, t := range frames {
		total += durationOrDefault(t.DurationMS)
	}
	avg := float64(total) / float64(len(frames))
	want := int(math.Round(float64(total) / msPerSecond * float64(fps)))
	if want < 1 {
		want = 1
	}

	out := make([]*Frame, 0, want)
	for i := 0; i < want; i++ {
		targetTime := float64(i) * (msPerSecond / float64(fps))
		idx := int(math.Round(targetTime / avg))
		if idx >= len(frames) {
			idx = len(frames) - 1
		}
		out = append(out, frames[idx].Frame)
	}
	return out, nil
}

func durationOrDefault(ms int) int {
	if ms <= 0 {
		return DefaultDurationMS
	}
	return ms
}
