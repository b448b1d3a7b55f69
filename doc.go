// Package giftorio turns a short animated image into a Factorio
// blueprint string: a grid of color lamps driven by combinators that
// replays the animation inside the game's circuit network.
//
// The pipeline, leaves first:
//
//	signal/    — the addressable signal palette (one reserved clock signal excluded)
//	frame/     — fixed-size RGB frames: downscale, duration-weighted resampling
//	pixel/     — packed 24-bit pixel values and frame→filter conversion
//	synth/     — the synthesis engine: timer, selector chains, lamp grids,
//	             substation lattice, id allocation, bus wiring
//	blueprint/ — the versioned wire format: JSON → zlib → base64, "0"-prefixed
//	progress/  — slog-based progress milestones for long conversions
//	cmd/       — the giftorio command-line driver
//
// Quick sketch:
//
//	frames, _ := frame.Resample(timed, 4)
//	palette, _ := signal.LoadFile("signals.json")
//	bp, _ := synth.Build(frames, palette, synth.WithTargetFPS(4))
//	s, _ := blueprint.Encode(bp)
//	fmt.Println(s) // paste into the game
//
// The produced document is executed by the game's deterministic,
// tick-synchronous simulator; giftorio only synthesizes the graph and
// guarantees the string decodes back to the exact same document.
package giftorio
