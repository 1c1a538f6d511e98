// Package filmphoto gives digital photos the look of film.
//
// # Overview
//
// A [Photo] holds an immutable original image, a working image and the
// current [Params]. Every setter validates its value against a fixed inclusive
// range and then runs the matching pixel transform on the working image:
//
//   - Clarity: Gaussian blur radius, 0 to 1000 (identity 0)
//   - Sharpness: enhancement factor, -300 to 300 (identity 1)
//   - Grain: noise blend factor, 0 to 1 (identity 0)
//   - TonalCurve: power-law exponent, 1 to 30 (identity 1)
//   - Warmness: saturation factor, 0 to 10 (identity 1)
//   - RGB: per-channel scale, each 0 to 5 (identity 1)
//
// A rejected value returns a [*RangeError] and leaves both the stored
// parameter and the working image untouched.
//
// # Quick Start
//
//	import "github.com/gogpu/filmphoto"
//
//	p, err := filmphoto.Open("leo.jpeg")
//	if err != nil {
//	    return err
//	}
//	if err := p.Auto(); err != nil {
//	    return err
//	}
//	return p.Save("leo_film.jpeg")
//
// # Pipeline
//
// [Photo.Transform] applies all six operators in a fixed order: clarity,
// sharpness, grain, tonal curve, warmness, rgb. Each dimension takes its
// [Override] if set and the stored value otherwise, so a call with no
// overrides re-applies the current parameters. Operators compose: each one
// runs on the output of the previous one, never on the original. Re-applying
// is not a no-op for grain, which draws fresh noise every time.
//
// [Photo.Reset] restores the original image and the identity parameters.
//
// # Concurrency
//
// A Photo is meant for a single owner. Concurrent calls on the same Photo
// require external locking. Package-level state (logger, caches) is safe for
// concurrent use.
package filmphoto

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
