package timing

import "errors"

var (
	// ErrUnknownUnit is returned when a unit name cannot be recognized.
	ErrUnknownUnit = errors.New("timing: unknown time unit")

	// ErrZeroFrequency is returned when a frequency of 0 is used to derive a
	// period.
	ErrZeroFrequency = errors.New("timing: frequency must be greater than zero")
)
