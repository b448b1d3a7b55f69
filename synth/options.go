package synth

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/colinchilds/giftorio/signal"
)

// Option customizes a Build run by mutating its config before any
// construction starts. Option constructors validate and panic on
// meaningless values; builders themselves only ever return sentinel
// errors.
type Option func(*config)

// config aggregates all synthesis knobs. Passed by value to builders;
// immutable once resolved.
type config struct {
	targetFPS int
	quality   string
	coverage  int // 0 means "derive from quality"
	logger    *slog.Logger
}

func newConfig(opts ...Option) config {
	c := config{
		targetFPS: DefaultTargetFPS,
		quality:   signal.QualityNormal,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// coverageRadius resolves the effective lattice spacing.
func (c config) coverageRadius() int {
	if c.coverage > 0 {
		return c.coverage
	}
	if r, ok := coverageByQuality[c.quality]; ok {
		return r
	}
	return DefaultCoverage
}

// ticksPerFrame is the real-valued window width; it is never rounded.
func (c config) ticksPerFrame() float64 {
	return ticksPerSecond / float64(c.targetFPS)
}

// WithTargetFPS sets the replay rate. Panics unless 1 ≤ fps ≤ 60: a
// window narrower than one tick can never open.
func WithTargetFPS(fps int) Option {
	if fps < 1 || fps > int(ticksPerSecond) {
		panic(fmt.Sprintf("synth: WithTargetFPS(%d) outside [1,60]", fps))
	}
	return func(c *config) {
		c.targetFPS = fps
	}
}

// WithSubstationQuality selects the substation tier, which fixes the
// lattice spacing. Panics on an unknown tier name.
func WithSubstationQuality(quality string) Option {
	if _, ok := coverageByQuality[quality]; !ok {
		panic(fmt.Sprintf("synth: WithSubstationQuality(%q) unknown tier", quality))
	}
	return func(c *config) {
		c.quality = quality
	}
}

// WithCoverage overrides the lattice spacing directly, bypassing the
// quality table. Panics if radius < 3; the sizing formula divides by
// radius−2.
func WithCoverage(radius int) Option {
	if radius < 3 {
		panic(fmt.Sprintf("synth: WithCoverage(%d) below minimum 3", radius))
	}
	return func(c *config) {
		c.coverage = radius
	}
}

// WithLogger attaches a logger for progress milestones. Panics on nil;
// omit the option to keep synthesis silent.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("synth: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
