package filter

import "image"

// ChannelScaleFilter multiplies each color plane by its own factor,
// clamping to [0, 255]. Factor 1 leaves a channel unchanged and 0 zeroes it.
type ChannelScaleFilter struct {
	Red, Green, Blue float64
}

// NewChannelScaleFilter creates a per-channel scale filter.
func NewChannelScaleFilter(red, green, blue float64) *ChannelScaleFilter {
	return &ChannelScaleFilter{Red: red, Green: green, Blue: blue}
}

// Apply returns src with each channel scaled.
func (f *ChannelScaleFilter) Apply(src *image.NRGBA) *image.NRGBA {
	r, g, b := scaleLUT(f.Red), scaleLUT(f.Green), scaleLUT(f.Blue)
	return applyLUT(src, &r, &g, &b)
}

// scaleLUT builds the table i -> clamp(round(i * factor)).
func scaleLUT(factor float64) [256]uint8 {
	var lut [256]uint8
	for i := range lut {
		lut[i] = clampUint8(float64(i) * factor)
	}
	return lut
}
