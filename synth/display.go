package synth

import (
	"fmt"

	"github.com/colinchilds/giftorio/blueprint"
	"github.com/colinchilds/giftorio/signal"
)

// displayGraph is the handle returned by buildDisplay.
type displayGraph struct {
	FirstLampID int
}

// buildDisplay appends the group's lamp grid: one always-on color lamp
// per cell at integer offsets from (originX, originY), row-major, each
// bound to its palette signal and decoding the packed value back to
// RGB.
//
// Bus layout: the top row chains left to right and every column chains
// top to bottom, all on the lamps' circuit connector. Row 0 spreads the
// signal across, each column carries it down, so the whole grid shares
// one connected bus with W·H−1 wires and no redundant cycles.
func buildDisplay(book *blueprint.Book, a *alloc, palette []signal.Signal, width, height, originX, originY int) (displayGraph, error) {
	if width*height > len(palette) {
		return displayGraph{}, fmt.Errorf("%s: %d cells, %d signals: %w",
			methodDisplay, width*height, len(palette), ErrCapacity)
	}

	ids := make([]int, 0, width*height)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			sig := palette[r*width+c]
			id := a.take()
			ids = append(ids, id)
			book.Entities = append(book.Entities, blueprint.Entity{
				EntityNumber: id,
				Name:         EntityLamp,
				Position: blueprint.Position{
					X: float64(originX + c),
					Y: float64(originY + r),
				},
				ControlBehavior: &blueprint.ControlBehavior{
					UseColors: true,
					RGBSignal: &sig,
					ColorMode: 2,
				},
				AlwaysOn: true,
			})
		}
	}

	// Top row bus.
	row := &bus{}
	for c := 0; c < width; c++ {
		row.attach(ids[c], ConnRedIn)
	}
	book.Wires = append(book.Wires, row.wires()...)

	// One bus per column.
	for c := 0; c < width; c++ {
		col := &bus{}
		for r := 0; r < height; r++ {
			col.attach(ids[r*width+c], ConnRedIn)
		}
		book.Wires = append(book.Wires, col.wires()...)
	}

	return displayGraph{FirstLampID: ids[0]}, nil
}
