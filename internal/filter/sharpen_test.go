package filter

import (
	"image/color"
	"testing"
)

func TestSharpenFilterIdentity(t *testing.T) {
	src := createGradientImage(16, 16)

	got := NewSharpenFilter(1).Apply(src)

	if !pixelsEqual(got, src) {
		t.Error("sharpness factor 1 should reproduce the input")
	}
}

func TestSharpenFilterSolidColorUnchanged(t *testing.T) {
	c := color.NRGBA{R: 90, G: 140, B: 210, A: 255}
	src := createTestImage(8, 8, c)

	for _, factor := range []float64{-300, -1, 0, 2, 300} {
		got := NewSharpenFilter(factor).Apply(src)
		if !pixelsEqual(got, src) {
			t.Errorf("factor %v changed a solid image", factor)
		}
	}
}

func TestSharpenFilterAmplifiesDetail(t *testing.T) {
	src := createCheckerImage(16, 16, 4)
	soft := NewBlurFilter(1).Apply(src)

	base := contrastEnergy(soft)
	sharp := contrastEnergy(NewSharpenFilter(2).Apply(soft))
	smooth := contrastEnergy(NewSharpenFilter(0).Apply(soft))

	if sharp <= base {
		t.Errorf("factor 2 energy %d, want > %d", sharp, base)
	}
	if smooth >= base {
		t.Errorf("factor 0 energy %d, want < %d", smooth, base)
	}
}

func TestSharpenFilterNegativeInvertsDetail(t *testing.T) {
	src := createTestImage(5, 5, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	src.SetNRGBA(2, 2, color.NRGBA{R: 200, G: 200, B: 200, A: 255})

	got := NewSharpenFilter(-1).Apply(src).NRGBAAt(2, 2)

	// smooth = (8*100 + 5*200)/13 ≈ 138; out = 138 - (200-138) = 76
	if got.R >= 100 {
		t.Errorf("center = %v, want darker than the surroundings", got)
	}
}

func TestSharpenFilterBordersUseSource(t *testing.T) {
	src := createCheckerImage(6, 6, 1)

	got := NewSharpenFilter(0).Apply(src)

	// With factor 0 the output is the smoothed reference, whose border is
	// copied from the source.
	for x := 0; x < 6; x++ {
		if got.NRGBAAt(x, 0) != src.NRGBAAt(x, 0) {
			t.Errorf("border pixel (%d,0) = %v, want %v", x, got.NRGBAAt(x, 0), src.NRGBAAt(x, 0))
		}
	}
}

func TestSharpenFilterTinyImage(t *testing.T) {
	src := createGradientImage(2, 2)

	got := NewSharpenFilter(3).Apply(src)

	// Too small for the 3x3 kernel; the reference equals the source.
	if !pixelsEqual(got, src) {
		t.Error("2x2 image should be unchanged")
	}
}
