package image

import (
	"image"
	"image/color"
)

// ToRGB copies img into a new *image.NRGBA anchored at (0, 0) with every
// pixel fully opaque. Transparency is discarded rather than composited:
// color values are kept as they are, only alpha is forced to 255.
func ToRGB(img image.Image) (*image.NRGBA, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	// Fast path for NRGBA images: straight color, just copy and drop alpha.
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < height; y++ {
			srcOff := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:], src.Pix[srcOff:srcOff+width*4])
		}
		opaque(dst)
		return dst, nil
	}

	// Generic path: convert through the NRGBA model to undo premultiplication.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			c.A = 255
			dst.SetNRGBA(x, y, c)
		}
	}

	return dst, nil
}

// opaque sets the alpha of every pixel to 255.
func opaque(img *image.NRGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
}

// Equal reports whether a and b have the same size and identical pixels.
func Equal(a, b *image.NRGBA) bool {
	return MaxDiff(a, b) == 0
}

// MaxDiff returns the largest per-channel difference between a and b,
// or -1 if their sizes differ.
func MaxDiff(a, b *image.NRGBA) int {
	if a.Rect.Dx() != b.Rect.Dx() || a.Rect.Dy() != b.Rect.Dy() {
		return -1
	}

	maxDiff := 0
	width := a.Rect.Dx() * 4
	for y := 0; y < a.Rect.Dy(); y++ {
		rowA := a.Pix[y*a.Stride : y*a.Stride+width]
		rowB := b.Pix[y*b.Stride : y*b.Stride+width]
		for i := range rowA {
			d := int(rowA[i]) - int(rowB[i])
			if d < 0 {
				d = -d
			}
			if d > maxDiff {
				maxDiff = d
			}
		}
	}
	return maxDiff
}
