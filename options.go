package filmphoto

import "math/rand/v2"

// Option configures a Photo during creation.
// Use functional options to customize Photo behavior.
//
// Example:
//
//	// Identity parameters, non-deterministic grain
//	p, err := filmphoto.Open("in.jpg")
//
//	// Start from the auto preset with reproducible grain
//	p, err := filmphoto.Open("in.jpg",
//	    filmphoto.WithParams(filmphoto.AutoPreset),
//	    filmphoto.WithSeed(42))
type Option func(*options)

// options holds optional configuration for Photo creation.
type options struct {
	params Params
	seed   *uint64
}

// defaultOptions returns the default photo options.
func defaultOptions() options {
	return options{
		params: DefaultParams(),
		seed:   nil, // global random source
	}
}

// WithParams sets the parameters applied through the pipeline at
// construction. Invalid parameters make construction fail.
func WithParams(p Params) Option {
	return func(o *options) {
		o.params = p
	}
}

// WithSeed makes grain reproducible by drawing noise from a random source
// seeded with seed. Without it, every grain application is unpredictable.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// newRand returns the grain source for the options, or nil for the global one.
func (o options) newRand() *rand.Rand {
	if o.seed == nil {
		return nil
	}
	return rand.New(rand.NewPCG(*o.seed, *o.seed^0x9e3779b97f4a7c15))
}
