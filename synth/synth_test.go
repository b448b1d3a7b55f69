package synth_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/colinchilds/giftorio/blueprint"
	"github.com/colinchilds/giftorio/frame"
	"github.com/colinchilds/giftorio/progress"
	"github.com/colinchilds/giftorio/signal"
	"github.com/colinchilds/giftorio/synth"
)

func solidFrame(t *testing.T, w, h int, c frame.RGB) *frame.Frame {
	t.Helper()
	pix := make([]frame.RGB, w*h)
	for i := range pix {
		pix[i] = c
	}
	f, err := frame.New(w, h, pix)
	require.NoError(t, err)
	return f
}

func palette(n int) []signal.Signal {
	out := make([]signal.Signal, n)
	for i := range out {
		out[i] = signal.Signal{Name: string(rune('a' + i))}
	}
	return out
}

func hasWire(wires []blueprint.Wire, w blueprint.Wire) bool {
	for _, got := range wires {
		if got == w {
			return true
		}
	}
	return false
}

func entityByNumber(book *blueprint.Book, n int) *blueprint.Entity {
	for i := range book.Entities {
		if book.Entities[i].EntityNumber == n {
			return &book.Entities[i]
		}
	}
	return nil
}

// SingleFrameSuite pins the minimal scenario: one 2×1 frame, three
// usable signals, 4 fps.
type SingleFrameSuite struct {
	suite.Suite
	book *blueprint.Book
}

func (s *SingleFrameSuite) SetupSuite() {
	f := solidFrame(s.T(), 2, 1, frame.RGB{R: 255})
	bp, err := synth.Build([]*frame.Frame{f}, palette(3), synth.WithTargetFPS(4))
	require.NoError(s.T(), err)
	s.book = &bp.Blueprint
}

// TestEntityCensus: timer trio, one substation, one combinator pair,
// two lamps — eight entities, numbered 1..8 in construction order.
func (s *SingleFrameSuite) TestEntityCensus() {
	require.Len(s.T(), s.book.Entities, 8)
	for i, e := range s.book.Entities {
		require.Equal(s.T(), i+1, e.EntityNumber)
	}
	require.Equal(s.T(), "constant-combinator", s.book.Entities[0].Name)
	require.Equal(s.T(), "decider-combinator", s.book.Entities[1].Name)
	require.Equal(s.T(), "arithmetic-combinator", s.book.Entities[2].Name)
	require.Equal(s.T(), "substation", s.book.Entities[3].Name)
	require.Equal(s.T(), "constant-combinator", s.book.Entities[4].Name)
	require.Equal(s.T(), "decider-combinator", s.book.Entities[5].Name)
	require.Equal(s.T(), "small-lamp", s.book.Entities[6].Name)
	require.Equal(s.T(), "small-lamp", s.book.Entities[7].Name)
}

// TestTimerStop: one frame at 4 fps is a 15-tick loop.
func (s *SingleFrameSuite) TestTimerStop() {
	timerConst := entityByNumber(s.book, 1)
	require.NotNil(s.T(), timerConst)
	filters := timerConst.ControlBehavior.Sections.Sections[0].Filters
	require.Len(s.T(), filters, 2)
	require.Equal(s.T(), signal.TimerName, filters[0].Name)
	require.Equal(s.T(), 1, filters[0].Count)
	require.Equal(s.T(), signal.StopName, filters[1].Name)
	require.Equal(s.T(), 15, filters[1].Count)
}

// TestWindowBounds: the single gate's window is [0, 15).
func (s *SingleFrameSuite) TestWindowBounds() {
	gate := entityByNumber(s.book, 6)
	require.NotNil(s.T(), gate)
	conds := gate.ControlBehavior.DeciderConditions.Conditions
	require.Len(s.T(), conds, 2)
	require.Equal(s.T(), ">=", conds[0].Comparator)
	require.Equal(s.T(), 0.0, *conds[0].Constant)
	require.Equal(s.T(), "<", conds[1].Comparator)
	require.Equal(s.T(), 15.0, *conds[1].Constant)
	require.Equal(s.T(), "and", conds[1].CompareType)
}

// TestWireCensus: three timer wires, the pair wire, the clock tap, the
// lamp feed and exactly one display bus wire (width 2, height 1 — the
// horizontal link exists, no vertical links). No chain wires for a
// single frame.
func (s *SingleFrameSuite) TestWireCensus() {
	require.Len(s.T(), s.book.Wires, 7)

	require.True(s.T(), hasWire(s.book.Wires, blueprint.Wire{1, 1, 2, 1}), "timer seed")
	require.True(s.T(), hasWire(s.book.Wires, blueprint.Wire{2, 2, 3, 4}), "timer feedback in")
	require.True(s.T(), hasWire(s.book.Wires, blueprint.Wire{2, 4, 3, 2}), "timer feedback out")
	require.True(s.T(), hasWire(s.book.Wires, blueprint.Wire{5, 1, 6, 1}), "pixel data into gate")
	require.True(s.T(), hasWire(s.book.Wires, blueprint.Wire{2, 4, 6, 2}), "clock tap")
	require.True(s.T(), hasWire(s.book.Wires, blueprint.Wire{6, 3, 7, 1}), "gate feeds first lamp")
	require.True(s.T(), hasWire(s.book.Wires, blueprint.Wire{7, 1, 8, 1}), "display row bus")
}

// TestLampBinding: lamps decode the packed value of their bound signal.
func (s *SingleFrameSuite) TestLampBinding() {
	lamp := entityByNumber(s.book, 7)
	require.NotNil(s.T(), lamp)
	cb := lamp.ControlBehavior
	require.True(s.T(), cb.UseColors)
	require.Equal(s.T(), 2, cb.ColorMode)
	require.Equal(s.T(), "a", cb.RGBSignal.Name)
	require.True(s.T(), lamp.AlwaysOn)
	require.Equal(s.T(), blueprint.Position{X: 0, Y: 0}, lamp.Position)
}

func TestSingleFrameScenario(t *testing.T) {
	suite.Run(t, new(SingleFrameSuite))
}

// TestBuild_EmptyInputsFailFast verifies nothing is constructed for
// degenerate inputs.
func TestBuild_EmptyInputsFailFast(t *testing.T) {
	_, err := synth.Build(nil, palette(3))
	require.ErrorIs(t, err, synth.ErrNoFrames)

	f := solidFrame(t, 1, 1, frame.RGB{})
	_, err = synth.Build([]*frame.Frame{f}, nil)
	require.ErrorIs(t, err, synth.ErrPaletteEmpty)
}

func TestBuild_CapacityFailure(t *testing.T) {
	// Height 5 needs five signals per column; three exist.
	f := solidFrame(t, 4, 5, frame.RGB{})
	_, err := synth.Build([]*frame.Frame{f}, palette(3))
	require.ErrorIs(t, err, synth.ErrCapacity)
}

func TestBuild_DimensionMismatch(t *testing.T) {
	a := solidFrame(t, 2, 2, frame.RGB{})
	b := solidFrame(t, 2, 3, frame.RGB{})
	_, err := synth.Build([]*frame.Frame{a, b}, palette(10))
	require.ErrorIs(t, err, synth.ErrFrameMismatch)
}

// TestBuild_MultiGroup exercises the partitioner end to end: a 4×1
// frame over a 2-signal palette splits into two stripes sharing one
// timer, with the clock chained group to group.
func TestBuild_MultiGroup(t *testing.T) {
	frames := []*frame.Frame{
		solidFrame(t, 4, 1, frame.RGB{R: 10}),
		solidFrame(t, 4, 1, frame.RGB{G: 20}),
	}
	bp, err := synth.Build(frames, palette(2), synth.WithTargetFPS(4))
	require.NoError(t, err)
	book := &bp.Blueprint

	// Timer 1-3, substation 4, group 0 combinators 5-8, lamps 9-10,
	// group 1 combinators 11-14, lamps 15-16.
	require.Len(t, book.Entities, 16)
	for i, e := range book.Entities {
		require.Equal(t, i+1, e.EntityNumber, "ids strictly increasing across groups")
	}

	// Exactly one timer regardless of group count.
	arith := 0
	for _, e := range book.Entities {
		if e.Name == "arithmetic-combinator" {
			arith++
		}
	}
	require.Equal(t, 1, arith)

	// stop covers both frames: 2 × 15 ticks.
	require.Equal(t, 30, entityByNumber(book, 1).ControlBehavior.Sections.Sections[0].Filters[1].Count)

	// Group 0 chain wiring on green-in and red-out buses.
	require.True(t, hasWire(book.Wires, blueprint.Wire{6, 2, 8, 2}))
	require.True(t, hasWire(book.Wires, blueprint.Wire{6, 3, 8, 3}))
	// Second frame's window is [15, 30).
	gate := entityByNumber(book, 8)
	require.Equal(t, 15.0, *gate.ControlBehavior.DeciderConditions.Conditions[0].Constant)
	require.Equal(t, 30.0, *gate.ControlBehavior.DeciderConditions.Conditions[1].Constant)

	// Clock reaches group 0 from the timer and group 1 from group 0's
	// first gate; no second timer tap.
	require.True(t, hasWire(book.Wires, blueprint.Wire{2, 4, 6, 2}))
	require.True(t, hasWire(book.Wires, blueprint.Wire{6, 2, 12, 2}))
	require.False(t, hasWire(book.Wires, blueprint.Wire{2, 4, 12, 2}))

	// Each group feeds its own lamps, shifted by the stripe offset.
	require.True(t, hasWire(book.Wires, blueprint.Wire{6, 3, 9, 1}))
	require.True(t, hasWire(book.Wires, blueprint.Wire{12, 3, 15, 1}))
	require.Equal(t, blueprint.Position{X: 2, Y: 0}, entityByNumber(book, 15).Position)
}

// TestBuild_WindowsTile checks contiguity: every gate's upper bound is
// the next gate's lower bound and the last upper bound equals stop.
func TestBuild_WindowsTile(t *testing.T) {
	frames := make([]*frame.Frame, 7)
	for i := range frames {
		frames[i] = solidFrame(t, 1, 1, frame.RGB{B: uint8(i)})
	}
	bp, err := synth.Build(frames, palette(1), synth.WithTargetFPS(8))
	require.NoError(t, err)
	book := &bp.Blueprint

	var lowers, uppers []float64
	for _, e := range book.Entities {
		cb := e.ControlBehavior
		if cb == nil || cb.DeciderConditions == nil {
			continue
		}
		conds := cb.DeciderConditions.Conditions
		if len(conds) != 2 {
			continue // timer decider
		}
		lowers = append(lowers, *conds[0].Constant)
		uppers = append(uppers, *conds[1].Constant)
	}
	require.Len(t, lowers, 7)
	require.Equal(t, 0.0, lowers[0])
	for i := 1; i < len(lowers); i++ {
		require.Equal(t, uppers[i-1], lowers[i], "windows abut exactly")
	}
	// 60/8 = 7.5 ticks per frame; stop truncates 7×7.5 = 52.5 to 52.
	require.Equal(t, 52.5, uppers[len(uppers)-1])
	require.Equal(t, 52, entityByNumber(book, 1).ControlBehavior.Sections.Sections[0].Filters[1].Count)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { synth.WithTargetFPS(0) })
	require.Panics(t, func() { synth.WithTargetFPS(61) })
	require.Panics(t, func() { synth.WithCoverage(2) })
	require.Panics(t, func() { synth.WithSubstationQuality("mythic") })
	require.Panics(t, func() { synth.WithLogger(nil) })
}

// TestBuild_SubstationQuality verifies the coverage table reshapes the
// lattice and stamps non-normal quality on the nodes.
func TestBuild_SubstationQuality(t *testing.T) {
	f := solidFrame(t, 30, 1, frame.RGB{})
	bp, err := synth.Build([]*frame.Frame{f}, palette(30),
		synth.WithSubstationQuality("legendary"))
	require.NoError(t, err)

	var subs []blueprint.Entity
	for _, e := range bp.Blueprint.Entities {
		if e.Name == "substation" {
			subs = append(subs, e)
		}
	}
	// Spacing 28: ceil((30-13)/28)+1 = 2 columns, 1 row.
	require.Len(t, subs, 2)
	require.Equal(t, "legendary", subs[0].Quality)
	require.Equal(t, 28.0, subs[1].Position.X-subs[0].Position.X)
	require.True(t, hasWire(bp.Blueprint.Wires, blueprint.Wire{
		subs[0].EntityNumber, 5, subs[1].EntityNumber, 5,
	}))
}

// TestBuild_Milestones verifies the progress ladder Build emits: start,
// power grid, groups up to 60, completion at 70. Encoding milestones
// belong to the caller and stay above that.
func TestBuild_Milestones(t *testing.T) {
	var got []int
	log := slog.New(progress.NewHandler(func(p int, _ string) {
		got = append(got, p)
	}))

	f := solidFrame(t, 2, 1, frame.RGB{R: 9})
	_, err := synth.Build([]*frame.Frame{f}, palette(3),
		synth.WithTargetFPS(4), synth.WithLogger(log))
	require.NoError(t, err)
	require.Equal(t, []int{0, 10, 60, 70}, got)
}
