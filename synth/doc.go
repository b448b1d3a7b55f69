// Package synth is the circuit graph synthesis engine: it turns a
// sampled frame sequence and a signal palette into the entity and wire
// lists of a blueprint document that replays the animation on a lamp
// grid inside the game's tick-synchronous simulator.
//
// What (construction order is fixed; later parts reference earlier ids):
//
//   - Timer: a constant/decider/arithmetic trio forming a free-running
//     clock of period stop = frames × ticksPerFrame. Built exactly once;
//     every group observes the same clock, so groups never drift apart.
//   - Power grid: a substation lattice covering the whole footprint,
//     wired as a pure geometric mesh on the power connector. The sizing
//     formula is a black-box contract with the game, reproduced exactly.
//   - Per group (vertical stripe of the image):
//     Selector: one constant+decider pair per frame; the decider passes
//     its frame's pixel data only while the clock lies in that frame's
//     half-open tick window. Gates share green-input and red-output
//     buses, so the one open window owns the combined output; windows
//     are contiguous and non-overlapping by construction, which is the
//     whole correctness argument for having no arbiter.
//     Display: one always-on RGB lamp per pixel, bused together and fed
//     from the group's first gate.
//
// Design rules (strict):
//
//   - Entity ids come from a single allocator owned by Build: strictly
//     monotonic, never reused, never renumbered. Builders return
//     handles (first/last gate, first lamp) instead of recomputing
//     neighbors by id arithmetic.
//   - Shared-bus wiring goes through the bus type: ordered
//     (entity, connector) attachments, wires emitted pairwise in
//     attachment order, older entity first. Attachment order is a
//     serialization detail, not a semantic one.
//   - Chains are valid under one-tick-delay evaluation: gates attach to
//     common buses, they never cascade values through one another.
//   - Builders validate first and return sentinel errors; option
//     constructors panic on meaningless values. No partial graphs
//     escape Build.
//
// Errors:
//
//   - ErrNoFrames: nothing to synthesize; raised before any mutation.
//   - ErrCapacity: a single column of pixels does not fit the palette.
//   - ErrPaletteEmpty: no usable signals at all.
//   - ErrFrameMismatch: frames of differing dimensions.
package synth
