package filmphoto

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// gradientImage returns an opaque image with varied colors.
func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x*31 + y*17) % 256),
				A: 255,
			})
		}
	}
	return img
}

// writePNG writes img to a PNG file in a temporary directory and returns its path.
func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

// newTestPhoto returns a Photo over a 24x16 gradient.
func newTestPhoto(t *testing.T, opts ...Option) *Photo {
	t.Helper()
	p, err := New(gradientImage(24, 16), opts...)
	require.NoError(t, err)
	return p
}
