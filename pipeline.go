package filmphoto

import (
	"time"

	"github.com/gogpu/filmphoto/internal/filter"
)

// Transform runs the full pipeline over the working image in the order
// clarity, sharpness, grain, tonal curve, warmness, rgb. Each dimension uses
// its override if set and the stored parameter otherwise.
//
// All six resolved values are validated before any operator runs: if one is
// out of range, Transform returns its *RangeError and changes nothing.
func (p *Photo) Transform(o Overrides) error {
	next := o.resolve(p.params)
	if err := next.Validate(); err != nil {
		return err
	}

	steps := []struct {
		param  Param
		value  any
		filter filter.Filter
	}{
		{ParamClarity, next.Clarity, filter.NewBlurFilter(next.Clarity)},
		{ParamSharpness, next.Sharpness, filter.NewSharpenFilter(next.Sharpness)},
		{ParamGrain, next.Grain, filter.NewGrainFilter(next.Grain, p.rng)},
		{ParamTonalCurve, next.TonalCurve, filter.NewToneCurveFilter(next.TonalCurve)},
		{ParamWarmness, next.Warmness, filter.NewSaturationFilter(next.Warmness)},
		{ParamRGB, next.RGB, filter.NewChannelScaleFilter(next.RGB.Red, next.RGB.Green, next.RGB.Blue)},
	}
	for _, s := range steps {
		p.apply(s.param, s.value, s.filter)
	}

	p.params = next
	return nil
}

// Apply runs the pipeline with every dimension set from params.
func (p *Photo) Apply(params Params) error {
	return p.Transform(SetAll(params))
}

// Auto applies AutoPreset.
func (p *Photo) Auto() error {
	return p.Apply(AutoPreset)
}

// apply replaces the working image with f's output. Values must already be
// validated.
func (p *Photo) apply(param Param, value any, f filter.Filter) {
	start := time.Now()
	p.working = f.Apply(p.working)
	Logger().Debug("filmphoto: applied",
		"param", param.String(),
		"value", value,
		"elapsed", time.Since(start))
}
