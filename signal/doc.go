// Package signal defines the addressable signal palette used to label
// pixel slots in a synthesized blueprint, and the loader that prepares
// it from a plain JSON signal list.
//
// What:
//
//   - Signal is the shared signal-reference shape (type/name/quality)
//     used by icons, constant-combinator filters, decider conditions
//     and lamp color bindings.
//   - Load/LoadFile parse a JSON array of signal records and remove the
//     reserved timer signal ("signal-T") so the clock can never collide
//     with pixel data. Record order defines addressing priority.
//   - ExpandQualities multiplies a palette by quality tiers, matching
//     the larger addressing space available with the Space Age DLC.
//
// Errors:
//
//   - ErrLoad: the palette document cannot be parsed.
//   - ErrEmptyPalette: no usable signals remain after filtering.
package signal
