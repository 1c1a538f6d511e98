package filmphoto

// Override is an optional pipeline argument. The zero value keeps the
// current parameter; Set replaces it.
type Override[T any] struct {
	value T
	set   bool
}

// Set returns an override that replaces the current value with v.
func Set[T any](v T) Override[T] {
	return Override[T]{value: v, set: true}
}

// Keep returns an override that keeps the current value. It is the zero value.
func Keep[T any]() Override[T] {
	return Override[T]{}
}

// Get returns the override value and whether it is set.
func (o Override[T]) Get() (T, bool) {
	return o.value, o.set
}

// Or returns the override value if set, and current otherwise.
func (o Override[T]) Or(current T) T {
	if o.set {
		return o.value
	}
	return current
}

// Overrides selects, per dimension, whether Transform uses a new value or
// re-applies the stored one. The zero value re-applies everything.
type Overrides struct {
	Clarity    Override[float64]
	Sharpness  Override[float64]
	Grain      Override[float64]
	TonalCurve Override[float64]
	Warmness   Override[float64]
	RGB        Override[RGB]
}

// SetAll returns Overrides that set every dimension from p.
func SetAll(p Params) Overrides {
	return Overrides{
		Clarity:    Set(p.Clarity),
		Sharpness:  Set(p.Sharpness),
		Grain:      Set(p.Grain),
		TonalCurve: Set(p.TonalCurve),
		Warmness:   Set(p.Warmness),
		RGB:        Set(p.RGB),
	}
}

// resolve merges the overrides with the current parameters.
func (o Overrides) resolve(current Params) Params {
	return Params{
		Clarity:    o.Clarity.Or(current.Clarity),
		Sharpness:  o.Sharpness.Or(current.Sharpness),
		Grain:      o.Grain.Or(current.Grain),
		TonalCurve: o.TonalCurve.Or(current.TonalCurve),
		Warmness:   o.Warmness.Or(current.Warmness),
		RGB:        o.RGB.Or(current.RGB),
	}
}
