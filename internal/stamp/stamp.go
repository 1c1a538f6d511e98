// Package stamp renders a film-camera date-back imprint into the bottom-right
// corner of an image.
package stamp

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Orange is the LED color of a classic date back.
var Orange = color.NRGBA{R: 255, G: 140, B: 20, A: 255}

const (
	// heightRatio is the glyph size relative to the image height.
	heightRatio = 0.045
	minSize     = 8.0
	// marginRatio is the distance from the edges relative to the glyph size.
	marginRatio = 1.5
)

var parseFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gomonobold.TTF)
})

// Text formats t with layout, as the date back would print it.
func Text(t time.Time, layout string) string {
	return t.Format(layout)
}

// Draw returns a copy of src with text imprinted in the bottom-right corner
// using Orange. The glyph size scales with the image height. Text that does
// not fit is clipped at the image bounds. src is not modified.
func Draw(src *image.NRGBA, text string) (*image.NRGBA, error) {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	if text == "" || dst.Bounds().Empty() {
		return dst, nil
	}

	f, err := parseFont()
	if err != nil {
		return nil, fmt.Errorf("stamp: parse font: %w", err)
	}

	size := math.Max(minSize, float64(b.Dy())*heightRatio)
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("stamp: new face: %w", err)
	}
	defer face.Close()

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(Orange),
		Face: face,
	}
	margin := int(size * marginRatio)
	width := d.MeasureString(text).Ceil()
	descent := face.Metrics().Descent.Ceil()
	d.Dot = fixed.P(b.Dx()-margin-width, b.Dy()-margin-descent)
	d.DrawString(text)

	return dst, nil
}
