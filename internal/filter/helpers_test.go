package filter

import (
	"image"
	"image/color"
)

// Test helper functions shared across filter tests.

// createTestImage creates an opaque image filled with the given color.
func createTestImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// createGradientImage creates an opaque image whose channels vary with
// position, so every filter has something to work on.
func createGradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x*7 + y*13) % 256),
				A: 255,
			})
		}
	}
	return img
}

// createCheckerImage creates a black/white checkerboard with the given cell size.
func createCheckerImage(w, h, cell int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(0)
			if (x/cell+y/cell)%2 == 0 {
				v = 255
			}
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// pixelsEqual reports whether a and b hold identical pixels.
func pixelsEqual(a, b *image.NRGBA) bool {
	if a.Rect != b.Rect {
		return false
	}
	for y := a.Rect.Min.Y; y < a.Rect.Max.Y; y++ {
		for x := a.Rect.Min.X; x < a.Rect.Max.X; x++ {
			if a.NRGBAAt(x, y) != b.NRGBAAt(x, y) {
				return false
			}
		}
	}
	return true
}

// contrastEnergy sums absolute differences between horizontal and vertical
// neighbors. Blurrier images have lower energy.
func contrastEnergy(img *image.NRGBA) int {
	energy := 0
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			if x+1 < b.Max.X {
				energy += absInt(int(c.R) - int(img.NRGBAAt(x+1, y).R))
			}
			if y+1 < b.Max.Y {
				energy += absInt(int(c.R) - int(img.NRGBAAt(x, y+1).R))
			}
		}
	}
	return energy
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func absDiff(a, b uint8) int {
	return absInt(int(a) - int(b))
}
