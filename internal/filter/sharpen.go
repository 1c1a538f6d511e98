package filter

import "image"

// smoothKernel is the 3x3 smoothing kernel used as the low-frequency
// reference for sharpening. Weights sum to smoothKernelSum.
var smoothKernel = [9]int{
	1, 1, 1,
	1, 5, 1,
	1, 1, 1,
}

const smoothKernelSum = 13

// SharpenFilter adjusts image sharpness by interpolating between a smoothed
// copy of the image and the image itself:
//
//	out = smooth + Factor * (src - smooth)
//
// Factor 1 returns the image unchanged, factors above 1 amplify detail and
// factors below 1 (including negative ones) suppress or invert it.
type SharpenFilter struct {
	Factor float64
}

// NewSharpenFilter creates a sharpen filter with the given enhancement factor.
func NewSharpenFilter(factor float64) *SharpenFilter {
	return &SharpenFilter{Factor: factor}
}

// Apply returns a sharpened copy of src.
func (f *SharpenFilter) Apply(src *image.NRGBA) *image.NRGBA {
	if f.Factor == 1 {
		return Clone(src)
	}

	smooth := smoothImage(src)
	dst := image.NewNRGBA(src.Rect)
	width, height := src.Rect.Dx(), src.Rect.Dy()

	for y := 0; y < height; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+width*4]
		refRow := smooth.Pix[y*smooth.Stride : y*smooth.Stride+width*4]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]

		for i := 0; i < len(srcRow); i += 4 {
			for c := 0; c < 3; c++ {
				ref := float64(refRow[i+c])
				dstRow[i+c] = clampUint8(ref + f.Factor*(float64(srcRow[i+c])-ref))
			}
			dstRow[i+3] = srcRow[i+3]
		}
	}

	return dst
}

// smoothImage convolves src with smoothKernel. Border pixels, which the
// kernel cannot cover, are copied unchanged.
func smoothImage(src *image.NRGBA) *image.NRGBA {
	dst := Clone(src)
	width, height := src.Rect.Dx(), src.Rect.Dy()
	if width < 3 || height < 3 {
		return dst
	}

	for y := 1; y < height-1; y++ {
		dstRow := dst.Pix[y*dst.Stride:]
		for x := 1; x < width-1; x++ {
			var sum [3]int
			for ky := -1; ky <= 1; ky++ {
				row := src.Pix[(y+ky)*src.Stride:]
				for kx := -1; kx <= 1; kx++ {
					weight := smoothKernel[(ky+1)*3+(kx+1)]
					idx := (x + kx) * 4
					sum[0] += int(row[idx+0]) * weight
					sum[1] += int(row[idx+1]) * weight
					sum[2] += int(row[idx+2]) * weight
				}
			}

			idx := x * 4
			for c := 0; c < 3; c++ {
				dstRow[idx+c] = uint8((sum[c] + smoothKernelSum/2) / smoothKernelSum)
			}
		}
	}

	return dst
}
