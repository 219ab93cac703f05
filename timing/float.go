package timing

import "math"

const (
	floatMax     = 1e49
	floatMin     = -1.456e47
	floatEpsilon = 1e-86
)

// Float stores time as a plain float64 number of seconds. It is meant for
// reference runs and low precision use. Accumulated additions drift.
type Float struct{}

// Convert returns the seconds unchanged, clamped to the sentinels.
func (Float) Convert(seconds float64) float64 {
	mustBeANumber(seconds)

	switch {
	case seconds >= floatMax:
		return floatMax
	case seconds <= floatMin:
		return floatMin
	}

	return seconds
}

// ToDouble returns the code unchanged.
func (Float) ToDouble(code float64) float64 {
	return code
}

// ToCount converts seconds into a count of units, truncating toward zero.
func (Float) ToCount(code float64, unit Unit) int64 {
	mustBeValidUnit(unit)
	return floatToCount(code * countForward[unit])
}

// FromCount converts a count of units into seconds.
func (f Float) FromCount(count int64, unit Unit) float64 {
	mustBeValidUnit(unit)
	return f.Convert(float64(count) * countReverse[unit])
}

// Seconds returns the whole seconds, truncated toward zero.
func (Float) Seconds(code float64) int64 {
	return floatToCount(math.Trunc(code))
}

// Zero returns 0.
func (Float) Zero() float64 { return 0 }

// Min returns the negative sentinel.
func (Float) Min() float64 { return floatMin }

// Max returns the positive sentinel.
func (Float) Max() float64 { return floatMax }

// Epsilon returns the smallest increment the encoding reports.
func (Float) Epsilon() float64 { return floatEpsilon }
