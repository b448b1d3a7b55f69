package synth

import (
	"fmt"

	"github.com/colinchilds/giftorio/blueprint"
	"github.com/colinchilds/giftorio/frame"
	"github.com/colinchilds/giftorio/pixel"
	"github.com/colinchilds/giftorio/signal"
)

// Build synthesizes the full blueprint document for a sampled frame
// sequence over the given palette.
//
// Construction order is fixed, because later components capture earlier
// ids: timer first, then the power lattice, then per group the selector
// pairs followed by the lamp grid. One id allocator spans the whole
// run; ids are strictly increasing in construction order and never
// reused, including across groups.
//
// stop = ⌊frames × ticksPerFrame⌋ serialized as an integer constant;
// the per-window bounds stay real-valued. The timer wraps strictly
// before stop, so the loop period is exactly stop ticks per cycle with
// no per-frame drift.
//
// All validation runs before the first entity exists: empty input,
// empty palette, dimension mismatches and the one-column capacity
// check. Any error aborts the run whole; no partial document escapes.
func Build(frames []*frame.Frame, palette []signal.Signal, opts ...Option) (*blueprint.Blueprint, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNoFrames)
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrPaletteEmpty)
	}

	cfg := newConfig(opts...)
	log := cfg.logger

	fullWidth, fullHeight := frames[0].Width, frames[0].Height
	for i, f := range frames {
		if f.Width != fullWidth || f.Height != fullHeight {
			return nil, fmt.Errorf("%s: frame %d is %dx%d, expected %dx%d: %w",
				methodBuild, i, f.Width, f.Height, fullWidth, fullHeight, ErrFrameMismatch)
		}
	}

	spans, err := planGroups(fullWidth, fullHeight, len(palette))
	if err != nil {
		return nil, err
	}

	tpf := cfg.ticksPerFrame()
	stop := int(float64(len(frames)) * tpf)
	log.Info("synthesis started", "percent", 0,
		"frames", len(frames), "size", fmt.Sprintf("%dx%d", fullWidth, fullHeight),
		"groups", len(spans), "stop", stop)

	bp := blueprint.Empty()
	book := &bp.Blueprint
	ids := newAlloc()

	timer := buildTimer(book, ids, stop)

	buildPowerGrid(book, ids, cfg, fullWidth, fullHeight)
	log.Info("power grid placed", "percent", 10, "method", methodPower)

	var prevFirstGate int
	for gi, sp := range spans {
		groupPalette := palette[:sp.width()*fullHeight]

		// Per-frame pixel data for this stripe.
		groupFilters := make([][]blueprint.Filter, 0, len(frames))
		for _, f := range frames {
			stripe, cropErr := f.CropColumns(sp.Left, sp.Right)
			if cropErr != nil {
				return nil, fmt.Errorf("%s: group %d: %w", methodBuild, gi, cropErr)
			}
			filters, fErr := pixel.Filters(stripe, groupPalette)
			if fErr != nil {
				return nil, fmt.Errorf("%s: group %d: %w", methodBuild, gi, fErr)
			}
			groupFilters = append(groupFilters, filters)
		}

		sel, selErr := buildSelector(book, ids, groupFilters, tpf, float64(sp.Left))
		if selErr != nil {
			return nil, fmt.Errorf("%s: group %d: %w", methodBuild, gi, selErr)
		}

		// Clock distribution: group 0 taps the timer directly, every
		// later group inherits the clock from its predecessor's first
		// gate on the same channel the intra-group chain uses.
		clock := &bus{}
		if gi == 0 {
			clock.attach(timer.DeciderID, ConnGreenOut)
		} else {
			clock.attach(prevFirstGate, ConnGreenIn)
		}
		clock.attach(sel.FirstGateID, ConnGreenIn)
		book.Wires = append(book.Wires, clock.wires()...)
		prevFirstGate = sel.FirstGateID

		disp, dispErr := buildDisplay(book, ids, groupPalette, sp.width(), fullHeight, sp.Left, 0)
		if dispErr != nil {
			return nil, fmt.Errorf("%s: group %d: %w", methodBuild, gi, dispErr)
		}

		// The grid's head cell reads the active frame's combined output
		// from the group's first gate.
		feed := &bus{}
		feed.attach(sel.FirstGateID, ConnRedOut)
		feed.attach(disp.FirstLampID, ConnRedIn)
		book.Wires = append(book.Wires, feed.wires()...)

		log.Info("group synthesized", "percent", 10+(gi+1)*50/len(spans),
			"group", gi+1, "of", len(spans), "columns", sp.width())
	}

	log.Info("synthesis complete", "percent", 70,
		"entities", len(book.Entities), "wires", len(book.Wires))
	return bp, nil
}
