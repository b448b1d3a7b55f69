package synth

import (
	"fmt"

	"github.com/colinchilds/giftorio/blueprint"
	"github.com/colinchilds/giftorio/signal"
)

// selectorGraph is the handle returned by buildSelector. The first gate
// is the group's clock tap and display feed; the ids are captured at
// construction and passed forward, never recomputed by offset.
type selectorGraph struct {
	FirstGateID int
	LastGateID  int
}

// buildSelector appends one constant+gate pair per frame for a group.
//
// Frame i's gate opens for the half-open window
// [i·tpf, (i+1)·tpf) against the shared clock. Bounds are real-valued
// products and may be fractional; consecutive windows abut exactly, so
// for every clock value in [0, stop) exactly one gate is open. That is
// the entire arbitration story: gates share buses, and the single open
// window owns the combined output.
//
// Wiring per pair: constant feeds its gate on the red input. Across the
// group, all gate green inputs share one bus (the clock) and all gate
// red outputs share another (the combined frame data). With one frame
// there is nothing to chain and no chain wires appear.
func buildSelector(book *blueprint.Book, a *alloc, frames [][]blueprint.Filter, tpf float64, offsetX float64) (selectorGraph, error) {
	if len(frames) == 0 {
		return selectorGraph{}, fmt.Errorf("%s: %w", methodSelector, ErrNoFrames)
	}

	clockBus := &bus{}  // gate green inputs
	outputBus := &bus{} // gate red outputs
	var handle selectorGraph

	for i, filters := range frames {
		y := selectorBaseY - float64(i)

		constID := a.take()
		book.Entities = append(book.Entities, blueprint.Entity{
			EntityNumber: constID,
			Name:         EntityConstantCombinator,
			Position:     blueprint.Position{X: offsetX + selectorConstantDX, Y: y},
			Direction:    DirectionRight,
			ControlBehavior: &blueprint.ControlBehavior{
				Sections: &blueprint.Sections{Sections: []blueprint.Section{
					{Index: 1, Filters: filters},
				}},
			},
		})

		lower := float64(i) * tpf
		upper := float64(i+1) * tpf
		gateID := a.take()
		book.Entities = append(book.Entities, blueprint.Entity{
			EntityNumber: gateID,
			Name:         EntityDeciderCombinator,
			Position:     blueprint.Position{X: offsetX + selectorDeciderDX, Y: y},
			Direction:    DirectionRight,
			ControlBehavior: &blueprint.ControlBehavior{
				DeciderConditions: &blueprint.DeciderConditions{
					Conditions: []blueprint.Condition{
						{
							FirstSignal: signal.Virtual(signal.TimerName),
							Constant:    &lower,
							Comparator:  ">=",
						},
						{
							FirstSignal: signal.Virtual(signal.TimerName),
							Constant:    &upper,
							Comparator:  "<",
							CompareType: "and",
						},
					},
					Outputs: []blueprint.Output{
						{Signal: signal.Virtual(signal.EverythingName)},
					},
				},
			},
		})

		// Pixel data into the gate on its dedicated channel.
		data := &bus{}
		data.attach(constID, ConnRedIn)
		data.attach(gateID, ConnRedIn)
		book.Wires = append(book.Wires, data.wires()...)

		clockBus.attach(gateID, ConnGreenIn)
		outputBus.attach(gateID, ConnRedOut)

		if i == 0 {
			handle.FirstGateID = gateID
		}
		handle.LastGateID = gateID
	}

	book.Wires = append(book.Wires, clockBus.wires()...)
	book.Wires = append(book.Wires, outputBus.wires()...)
	return handle, nil
}
