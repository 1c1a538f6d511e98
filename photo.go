package filmphoto

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math/rand/v2"
	"os"

	"github.com/gogpu/filmphoto/internal/filter"
	imgio "github.com/gogpu/filmphoto/internal/image"
)

// Photo is a film-look transform engine bound to one image.
//
// The original image is captured at construction and never changes. The
// working image is replaced by every successful setter or pipeline call and
// is what Image and Save expose. The stored parameters always equal the last
// successfully applied values.
//
// Photo is not safe for concurrent use.
type Photo struct {
	original *image.NRGBA
	working  *image.NRGBA
	width    int
	height   int
	params   Params
	rng      *rand.Rand
}

// Open loads the image file at path and returns a Photo for it.
//
// If path does not name an existing regular file, the error matches
// ErrInvalidInput. Decoding is delegated to the codec layer; see
// internal/image for supported formats.
func Open(path string, opts ...Option) (*Photo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a valid file path: %w", ErrInvalidInput, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrInvalidInput, path)
	}

	img, err := imgio.Load(path)
	if err != nil {
		return nil, fmt.Errorf("filmphoto: %w", err)
	}

	p, err := newPhoto(img, opts)
	if err != nil {
		return nil, err
	}

	Logger().Info("filmphoto: opened", "path", path, "width", p.width, "height", p.height)
	return p, nil
}

// New returns a Photo for an in-memory image. The image is copied; later
// changes to img do not affect the Photo. A nil or empty image matches
// ErrInvalidInput.
func New(img image.Image, opts ...Option) (*Photo, error) {
	rgb, err := imgio.ToRGB(img)
	if err != nil {
		if errors.Is(err, imgio.ErrEmptyImage) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return nil, err
	}
	return newPhoto(rgb, opts)
}

// newPhoto takes ownership of img.
func newPhoto(img *image.NRGBA, opts []Option) (*Photo, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.params.Validate(); err != nil {
		return nil, err
	}

	p := &Photo{
		original: img,
		working:  filter.Clone(img),
		width:    img.Rect.Dx(),
		height:   img.Rect.Dy(),
		params:   DefaultParams(),
		rng:      o.newRand(),
	}

	if o.params != DefaultParams() {
		if err := p.Apply(o.params); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Image returns the working image. The caller must not modify it.
func (p *Photo) Image() *image.NRGBA { return p.working }

// Original returns the image captured at construction. The caller must not
// modify it.
func (p *Photo) Original() *image.NRGBA { return p.original }

// Width returns the image width in pixels.
func (p *Photo) Width() int { return p.width }

// Height returns the image height in pixels.
func (p *Photo) Height() int { return p.height }

// Params returns the current parameter set.
func (p *Photo) Params() Params { return p.params }

// Clarity returns the current blur radius.
func (p *Photo) Clarity() float64 { return p.params.Clarity }

// Sharpness returns the current sharpness factor.
func (p *Photo) Sharpness() float64 { return p.params.Sharpness }

// Grain returns the current grain blend factor.
func (p *Photo) Grain() float64 { return p.params.Grain }

// TonalCurve returns the current tone curve exponent.
func (p *Photo) TonalCurve() float64 { return p.params.TonalCurve }

// Warmness returns the current saturation factor.
func (p *Photo) Warmness() float64 { return p.params.Warmness }

// RGB returns the current channel scale factors.
func (p *Photo) RGB() RGB { return p.params.RGB }

// SetClarity blurs the working image with the given radius in [0, 1000].
// Higher values are blurrier; 0 leaves the image unchanged.
func (p *Photo) SetClarity(radius float64) error {
	if err := Validate(ParamClarity, radius); err != nil {
		return err
	}
	p.apply(ParamClarity, radius, filter.NewBlurFilter(radius))
	p.params.Clarity = radius
	return nil
}

// SetSharpness adjusts sharpness by a factor in [-300, 300]. 1 leaves the
// image unchanged, higher values sharpen and lower values soften.
func (p *Photo) SetSharpness(factor float64) error {
	if err := Validate(ParamSharpness, factor); err != nil {
		return err
	}
	p.apply(ParamSharpness, factor, filter.NewSharpenFilter(factor))
	p.params.Sharpness = factor
	return nil
}

// SetGrain blends fresh luminance noise into the working image with a
// factor in [0, 1]. 0 leaves the image unchanged, 1 replaces it with noise.
func (p *Photo) SetGrain(factor float64) error {
	if err := Validate(ParamGrain, factor); err != nil {
		return err
	}
	p.apply(ParamGrain, factor, filter.NewGrainFilter(factor, p.rng))
	p.params.Grain = factor
	return nil
}

// SetTonalCurve remaps channel values through a power curve with an
// exponent in [1, 30]. 1 leaves the image unchanged, higher values add
// contrast, darker pixels being affected most.
func (p *Photo) SetTonalCurve(exponent float64) error {
	if err := Validate(ParamTonalCurve, exponent); err != nil {
		return err
	}
	p.apply(ParamTonalCurve, exponent, filter.NewToneCurveFilter(exponent))
	p.params.TonalCurve = exponent
	return nil
}

// SetWarmness scales color saturation by a factor in [0, 10]. 0 gives a
// black and white photo and 1 leaves it unchanged.
func (p *Photo) SetWarmness(factor float64) error {
	if err := Validate(ParamWarmness, factor); err != nil {
		return err
	}
	p.apply(ParamWarmness, factor, filter.NewSaturationFilter(factor))
	p.params.Warmness = factor
	return nil
}

// SetRGB scales each color channel by its factor in [0, 5]. All three
// channels are validated before any is applied.
func (p *Photo) SetRGB(rgb RGB) error {
	if err := ValidateRGB(rgb); err != nil {
		return err
	}
	p.apply(ParamRGB, rgb, filter.NewChannelScaleFilter(rgb.Red, rgb.Green, rgb.Blue))
	p.params.RGB = rgb
	return nil
}

// Reset discards the working image and all parameters, restoring the
// original image and DefaultParams.
func (p *Photo) Reset() {
	p.working = filter.Clone(p.original)
	p.params = DefaultParams()
	Logger().Info("filmphoto: reset")
}

// Save writes the working image to path, choosing the format from the
// extension (jpg, jpeg, png, gif, tif, tiff, bmp).
func (p *Photo) Save(path string) error {
	if err := imgio.Save(p.working, path); err != nil {
		return fmt.Errorf("filmphoto: %w", err)
	}
	Logger().Info("filmphoto: saved", "path", path)
	return nil
}

// Encode writes the working image to w in the format named by ext
// (for example "png" or ".jpg").
func (p *Photo) Encode(w io.Writer, ext string) error {
	if err := imgio.Encode(w, p.working, ext); err != nil {
		return fmt.Errorf("filmphoto: %w", err)
	}
	return nil
}
