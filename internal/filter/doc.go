// Package filter implements the pixel operators of the film pipeline.
//
// Every filter reads an opaque *image.NRGBA and returns a new image of the
// same bounds; the source is never modified. Filters provided:
//   - Gaussian blur (separable, cached kernels)
//   - Sharpen (blend against a 3x3 smoothed reference)
//   - Grain (uniform luminance noise blended into the image)
//   - Tone curve (power-law lookup table)
//   - Color matrix transformations, including saturation
//   - Per-channel scaling
//
// All filters share the same contract:
//   - A neutral parameter yields a pixel-identical copy
//   - Results are rounded and clamped to [0, 255]
//   - Alpha is carried through unchanged
package filter
