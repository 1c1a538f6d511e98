package filmphoto

import (
	"errors"
	"fmt"
)

// Errors returned by filmphoto.
var (
	// ErrInvalidInput is returned when a Photo cannot be constructed from its
	// input: the path does not name an existing regular file, or the image is
	// nil or empty.
	ErrInvalidInput = errors.New("filmphoto: invalid input")

	// ErrRange is matched by every *RangeError.
	ErrRange = errors.New("filmphoto: value out of range")
)

// RangeError reports a parameter value outside its inclusive range.
// Out-of-range values are always rejected, never clamped.
type RangeError struct {
	// Param is the rejected parameter.
	Param Param

	// Channel names the offending channel ("red", "green" or "blue") when
	// Param is ParamRGB, and is empty otherwise.
	Channel string

	// Value is the rejected value.
	Value float64

	// Range is the valid interval for Param.
	Range Range
}

func (e *RangeError) Error() string {
	name := e.Param.String()
	if e.Channel != "" {
		name += "." + e.Channel
	}
	return fmt.Sprintf("filmphoto: %s %g out of range [%g, %g]", name, e.Value, e.Range.Min, e.Range.Max)
}

// Is reports whether target is ErrRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}
