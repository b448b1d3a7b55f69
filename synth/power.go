package synth

import (
	"math"

	"github.com/colinchilds/giftorio/blueprint"
	"github.com/colinchilds/giftorio/signal"
)

// buildPowerGrid appends a substation lattice sized to cover the full
// (width × height) footprint, independent of logic placement.
//
// Lattice contract (black-box, reproduced exactly; do not "improve"):
// spacing = radius, origin one tile outside the footprint's top-left
// corner, and per axis
//
//	count = ceil((extent - (radius-2)/2) / radius) + 1.
//
// Each node wires to its upper and left lattice neighbor on the power
// connector, a pure geometric mesh unrelated to frame timing.
func buildPowerGrid(book *blueprint.Book, a *alloc, cfg config, width, height int) {
	radius := cfg.coverageRadius()
	cols := latticeCount(width, radius)
	rows := latticeCount(height, radius)

	quality := ""
	if cfg.quality != signal.QualityNormal {
		quality = cfg.quality
	}

	// ids[i][j] keeps handles for neighbor wiring; no id arithmetic.
	ids := make([][]int, rows)
	for i := 0; i < rows; i++ {
		ids[i] = make([]int, cols)
		for j := 0; j < cols; j++ {
			id := a.take()
			ids[i][j] = id
			book.Entities = append(book.Entities, blueprint.Entity{
				EntityNumber: id,
				Name:         EntitySubstation,
				Position: blueprint.Position{
					X: float64(powerOriginX + j*radius),
					Y: float64(powerOriginY + i*radius),
				},
				Quality: quality,
			})
			if i > 0 {
				book.Wires = append(book.Wires,
					blueprint.Wire{ids[i-1][j], ConnPower, id, ConnPower})
			}
			if j > 0 {
				book.Wires = append(book.Wires,
					blueprint.Wire{ids[i][j-1], ConnPower, id, ConnPower})
			}
		}
	}
}

// latticeCount is the per-axis node count of the coverage formula.
func latticeCount(extent, radius int) int {
	half := (float64(radius) - 2) / 2
	n := int(math.Ceil((float64(extent)-half)/float64(radius))) + 1
	if n < 1 {
		n = 1
	}
	return n
}
