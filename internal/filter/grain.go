package filter

import (
	"image"
	"math/rand/v2"
)

// GrainFilter overlays synthetic film grain. A noise field with one
// independent uniform luminance draw per pixel is generated on every Apply
// and blended with the image:
//
//	out = (1 - Factor) * src + Factor * noise
//
// Factor 0 returns the image unchanged, Factor 1 returns pure noise.
type GrainFilter struct {
	// Factor is the blend factor in [0, 1].
	Factor float64

	// Rand is the random source for the noise field. If nil, the
	// package-level math/rand/v2 source is used.
	Rand *rand.Rand
}

// NewGrainFilter creates a grain filter drawing noise from rng.
// A nil rng uses the global random source.
func NewGrainFilter(factor float64, rng *rand.Rand) *GrainFilter {
	return &GrainFilter{Factor: factor, Rand: rng}
}

// Apply returns src blended with a fresh noise field.
func (f *GrainFilter) Apply(src *image.NRGBA) *image.NRGBA {
	if f.Factor <= 0 {
		return Clone(src)
	}

	width, height := src.Rect.Dx(), src.Rect.Dy()
	noise := NoiseField(width*height, f.Rand)
	dst := image.NewNRGBA(src.Rect)
	keep := 1 - f.Factor

	for y := 0; y < height; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+width*4]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]
		lum := noise[y*width : (y+1)*width]

		for x, n := range lum {
			grain := f.Factor * float64(n)
			idx := x * 4
			dstRow[idx+0] = clampUint8(keep*float64(srcRow[idx+0]) + grain)
			dstRow[idx+1] = clampUint8(keep*float64(srcRow[idx+1]) + grain)
			dstRow[idx+2] = clampUint8(keep*float64(srcRow[idx+2]) + grain)
			dstRow[idx+3] = srcRow[idx+3]
		}
	}

	return dst
}

// NoiseField returns n luminance samples drawn uniformly from [0, 255].
// Samples are bulk-filled eight at a time from 64-bit draws, which keeps
// every byte independent and uniform.
func NoiseField(n int, rng *rand.Rand) []uint8 {
	next := rand.Uint64
	if rng != nil {
		next = rng.Uint64
	}

	field := make([]uint8, n)
	for i := 0; i < n; i += 8 {
		v := next()
		for j := i; j < i+8 && j < n; j++ {
			field[j] = uint8(v)
			v >>= 8
		}
	}

	return field
}
