package timing

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Tick is the native representation that an Encoding stores time in.
type Tick interface {
	~int64 | ~float64
}

// An Encoding converts between seconds and the native representation of a
// time. Encodings carry no state; the zero value of an Encoding type is ready
// to use.
type Encoding[T Tick] interface {
	// Convert maps seconds into the native representation.
	Convert(seconds float64) T

	// ToDouble maps the native representation back to seconds.
	ToDouble(code T) float64

	// ToCount converts the native representation into a count of units.
	ToCount(code T, unit Unit) int64

	// FromCount converts a count of units into the native representation.
	FromCount(count int64, unit Unit) T

	// Seconds returns the number of whole seconds, truncated toward zero.
	Seconds(code T) int64

	// Zero returns the representation of time 0.
	Zero() T

	// Min returns the sentinel that is below every finite time.
	Min() T

	// Max returns the sentinel that is above every finite time.
	Max() T

	// Epsilon returns the smallest positive increment.
	Epsilon() T
}

// fixedPointGuard is the smallest number of seconds that fixed-point
// encodings convert. Anything below it becomes the Min sentinel.
const fixedPointGuard = -1e12

func mustBeANumber(seconds float64) {
	if math.IsNaN(seconds) {
		logrus.Panic("timing: invalid time")
	}
}

// integral returns true if T is an integer type.
func integral[T Tick]() bool {
	return T(1)/T(2) == 0
}
