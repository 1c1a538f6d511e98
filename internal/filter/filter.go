package filter

import "image"

// Filter transforms an image into a new image with the same bounds.
type Filter interface {
	// Apply returns the filtered image. src is not modified.
	Apply(src *image.NRGBA) *image.NRGBA
}

// Clone returns a deep copy of src.
func Clone(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)
	copyPixels(dst, src)
	return dst
}

// copyPixels copies all pixels of src into dst. Both must have equal bounds.
func copyPixels(dst, src *image.NRGBA) {
	rowLen := src.Rect.Dx() * 4
	if src.Stride == dst.Stride && len(src.Pix) == len(dst.Pix) {
		copy(dst.Pix, src.Pix)
		return
	}
	for y := 0; y < src.Rect.Dy(); y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], src.Pix[y*src.Stride:y*src.Stride+rowLen])
	}
}

// applyLUT maps the red, green and blue channels of src through the given
// lookup tables. Alpha is copied.
func applyLUT(src *image.NRGBA, r, g, b *[256]uint8) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)
	width, height := src.Rect.Dx(), src.Rect.Dy()

	for y := 0; y < height; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+width*4]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]
		for i := 0; i < len(srcRow); i += 4 {
			dstRow[i+0] = r[srcRow[i+0]]
			dstRow[i+1] = g[srcRow[i+1]]
			dstRow[i+2] = b[srcRow[i+2]]
			dstRow[i+3] = srcRow[i+3]
		}
	}

	return dst
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float to [0, 255] and rounds to the nearest uint8.
func clampUint8(v float64) uint8 {
	if v != v || v <= 0 { // NaN or negative
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
