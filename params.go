package filmphoto

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Param identifies one of the pipeline's parameters.
type Param int

// Parameters in pipeline order.
const (
	ParamClarity Param = iota
	ParamSharpness
	ParamGrain
	ParamTonalCurve
	ParamWarmness
	ParamRGB
)

// Range is a closed interval [Min, Max].
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies in [Min, Max]. NaN is never contained.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// tag renders the range as a validator tag.
func (r Range) tag() string {
	return "min=" + strconv.FormatFloat(r.Min, 'g', -1, 64) +
		",max=" + strconv.FormatFloat(r.Max, 'g', -1, 64)
}

var paramTable = [...]struct {
	name string
	rng  Range
}{
	ParamClarity:    {"clarity", Range{0, 1000}},
	ParamSharpness:  {"sharpness", Range{-300, 300}},
	ParamGrain:      {"grain", Range{0, 1}},
	ParamTonalCurve: {"tonal_curve", Range{1, 30}},
	ParamWarmness:   {"warmness", Range{0, 10}},
	ParamRGB:        {"rgb", Range{0, 5}},
}

// String returns the parameter's name.
func (p Param) String() string {
	if p < 0 || int(p) >= len(paramTable) {
		return fmt.Sprintf("Param(%d)", int(p))
	}
	return paramTable[p].name
}

// Range returns the parameter's valid interval. For ParamRGB the range
// applies to each channel independently.
func (p Param) Range() Range {
	return paramTable[p].rng
}

// RGB holds one scale factor per color channel.
type RGB struct {
	Red   float64 `mapstructure:"red"`
	Green float64 `mapstructure:"green"`
	Blue  float64 `mapstructure:"blue"`
}

// Params is the full parameter set of a Photo.
type Params struct {
	Clarity    float64 `mapstructure:"clarity"`
	Sharpness  float64 `mapstructure:"sharpness"`
	Grain      float64 `mapstructure:"grain"`
	TonalCurve float64 `mapstructure:"tonal_curve"`
	Warmness   float64 `mapstructure:"warmness"`
	RGB        RGB     `mapstructure:"rgb"`
}

// DefaultParams returns the identity parameters: applying them to an image
// leaves it unchanged.
func DefaultParams() Params {
	return Params{
		Clarity:    0,
		Sharpness:  1,
		Grain:      0,
		TonalCurve: 1,
		Warmness:   1,
		RGB:        RGB{Red: 1, Green: 1, Blue: 1},
	}
}

// AutoPreset is the parameter set applied by Photo.Auto.
var AutoPreset = Params{
	Clarity:    1,
	Sharpness:  0.7,
	Grain:      0.1,
	TonalCurve: 1.2,
	Warmness:   1.1,
	RGB:        RGB{Red: 1, Green: 0.95, Blue: 0.9},
}

// Validate checks every field and returns the first *RangeError in
// pipeline order, or nil.
func (p Params) Validate() error {
	scalars := []struct {
		param Param
		value float64
	}{
		{ParamClarity, p.Clarity},
		{ParamSharpness, p.Sharpness},
		{ParamGrain, p.Grain},
		{ParamTonalCurve, p.TonalCurve},
		{ParamWarmness, p.Warmness},
	}
	for _, s := range scalars {
		if err := Validate(s.param, s.value); err != nil {
			return err
		}
	}
	return ValidateRGB(p.RGB)
}

// validate is shared; validator caches parsed tags and is safe for
// concurrent use.
var validate = validator.New()

// Validate returns a *RangeError if v is outside p's inclusive range.
// For ParamRGB it checks a single channel value; use ValidateRGB to check
// all three at once.
func Validate(p Param, v float64) error {
	return checkRange(p, "", v)
}

// ValidateRGB validates each channel against the RGB range. Any failing
// channel fails the whole value.
func ValidateRGB(rgb RGB) error {
	channels := []struct {
		name  string
		value float64
	}{
		{"red", rgb.Red},
		{"green", rgb.Green},
		{"blue", rgb.Blue},
	}
	for _, c := range channels {
		if err := checkRange(ParamRGB, c.name, c.value); err != nil {
			return err
		}
	}
	return nil
}

func checkRange(p Param, channel string, v float64) error {
	rng := p.Range()
	if err := validate.Var(v, rng.tag()); err != nil {
		return &RangeError{Param: p, Channel: channel, Value: v, Range: rng}
	}
	return nil
}
