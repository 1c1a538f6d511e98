package filter

import (
	"image"
	"math"

	"github.com/gogpu/filmphoto/internal/cache"
)

// ToneCurveFilter remaps every color channel through a power-law curve:
//
//	out = round(255 * (in/255)^Exponent)
//
// Exponent 1 is the identity. Larger exponents darken mid-tones faster than
// highlights, which reads as added contrast. The curve is monotonic and
// fixed at 0 and 255.
type ToneCurveFilter struct {
	Exponent float64
}

// NewToneCurveFilter creates a tone curve filter with the given exponent.
func NewToneCurveFilter(exponent float64) *ToneCurveFilter {
	return &ToneCurveFilter{Exponent: exponent}
}

// Apply returns src mapped through the tone curve.
func (f *ToneCurveFilter) Apply(src *image.NRGBA) *image.NRGBA {
	lut := ToneCurveLUT(f.Exponent)
	return applyLUT(src, lut, lut, lut)
}

// ToneCurve evaluates the unrounded curve at channel value x in [0, 255].
func ToneCurve(x, exponent float64) float64 {
	return 255 * math.Pow(x/255, exponent)
}

// lutCache holds lookup tables keyed by the float64 bits of their parameter.
var lutCache = cache.New[uint64, *[256]uint8](64)

// ToneCurveLUT returns the 256-entry lookup table for an exponent.
// Tables are cached; callers must not modify the result.
func ToneCurveLUT(exponent float64) *[256]uint8 {
	return lutCache.GetOrCreate(math.Float64bits(exponent), func() *[256]uint8 {
		var lut [256]uint8
		for i := range lut {
			lut[i] = clampUint8(ToneCurve(float64(i), exponent))
		}
		return &lut
	})
}
