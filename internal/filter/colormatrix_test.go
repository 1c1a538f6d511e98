package filter

import (
	"image/color"
	"testing"
)

func TestNewColorMatrixFilter(t *testing.T) {
	matrix := [20]float64{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
	f := NewColorMatrixFilter(matrix)

	for i, v := range matrix {
		if f.Matrix[i] != v {
			t.Errorf("Matrix[%d] = %v, want %v", i, f.Matrix[i], v)
		}
	}
}

func TestIdentityColorMatrixApply(t *testing.T) {
	src := createGradientImage(16, 16)

	got := NewIdentityColorMatrix().Apply(src)

	if !pixelsEqual(got, src) {
		t.Error("identity matrix should leave pixels unchanged")
	}
}

func TestColorMatrixOffset(t *testing.T) {
	src := createTestImage(2, 2, color.NRGBA{R: 10, G: 20, B: 250, A: 255})
	f := NewColorMatrixFilter([20]float64{
		1, 0, 0, 0, 5,
		0, 1, 0, 0, -30,
		0, 0, 1, 0, 10,
		0, 0, 0, 1, 0,
	})

	got := f.Apply(src).NRGBAAt(0, 0)
	want := color.NRGBA{R: 15, G: 0, B: 255, A: 255}

	if got != want {
		t.Errorf("pixel = %v, want %v (offset then clamp)", got, want)
	}
}

func TestSaturationFilter(t *testing.T) {
	c := color.NRGBA{R: 200, G: 80, B: 40, A: 255}
	src := createTestImage(4, 4, c)

	tests := []struct {
		name   string
		factor float64
		check  func(t *testing.T, p color.NRGBA)
	}{
		{
			name:   "identity",
			factor: 1,
			check: func(t *testing.T, p color.NRGBA) {
				if p != c {
					t.Errorf("pixel = %v, want %v", p, c)
				}
			},
		},
		{
			name:   "grayscale",
			factor: 0,
			check: func(t *testing.T, p color.NRGBA) {
				// 0.299*200 + 0.587*80 + 0.114*40 = 111.32
				if p.R != 111 || p.G != 111 || p.B != 111 {
					t.Errorf("pixel = %v, want gray 111", p)
				}
			},
		},
		{
			name:   "oversaturated",
			factor: 2,
			check: func(t *testing.T, p color.NRGBA) {
				// Channels move away from luma and clamp at the bounds.
				if p.R <= c.R || p.B >= c.B {
					t.Errorf("pixel = %v, want more saturated than %v", p, c)
				}
				if p.B != 0 {
					t.Errorf("blue = %d, want clamped to 0", p.B)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSaturationFilter(tt.factor).Apply(src)
			tt.check(t, got.NRGBAAt(1, 1))
			if a := got.NRGBAAt(1, 1).A; a != 255 {
				t.Errorf("alpha = %d, want 255", a)
			}
		})
	}
}

func TestSaturationFilterIdentityOnGradient(t *testing.T) {
	src := createGradientImage(32, 32)

	got := NewSaturationFilter(1).Apply(src)

	if !pixelsEqual(got, src) {
		t.Error("saturation factor 1 should be an exact identity")
	}
}
