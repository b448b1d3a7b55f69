// Package frame provides the fixed-size RGB pixel grids the synthesis
// engine consumes, and the sampling that derives them from a
// variable-duration source animation.
//
// What:
//
//   - Frame is an immutable W×H grid of 8-bit RGB samples in row-major
//     order. All frames of one animation share the same dimensions.
//   - Downscale shrinks a source image so its longest side fits a
//     bound, bilinear, never upscaling.
//   - Resample converts a duration-annotated frame sequence into an
//     evenly spaced sequence at a target rate, using the average source
//     frame duration. EffectiveFPS clamps the target to what the source
//     can actually carry.
//   - CropColumns extracts a vertical stripe, used when a wide frame is
//     partitioned across several signal groups.
//
// Errors:
//
//   - ErrNoFrames: an empty sequence was handed to the sampler.
//   - ErrEmptyFrame: zero width or height.
//   - ErrBounds: a crop range escapes the frame.
package frame
