package timing

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Time is a point in simulated time, or a duration, stored in the native
// representation of the encoding E. The zero value is time 0.
//
// Time is a plain value. Addition, subtraction and integer scaling work on
// the native representation and are exact for the fixed-point encodings.
// Scaling by a float goes through seconds and is rounded to the nearest tick.
// The Min and Max sentinels are sticky: any arithmetic involving a sentinel
// produces a sentinel, and results that overflow saturate to them.
type Time[T Tick, E Encoding[T]] struct {
	code T
}

func encoding[T Tick, E Encoding[T]]() E {
	var e E
	return e
}

// New creates a time from a number of seconds.
func New[T Tick, E Encoding[T]](seconds float64) Time[T, E] {
	return Time[T, E]{code: encoding[T, E]().Convert(seconds)}
}

// FromCount creates a time from a count of units.
func FromCount[T Tick, E Encoding[T]](count int64, unit Unit) Time[T, E] {
	return Time[T, E]{code: encoding[T, E]().FromCount(count, unit)}
}

// FromCode creates a time directly from the native representation. It is
// meant for serialization, not for normal use.
func FromCode[T Tick, E Encoding[T]](code T) Time[T, E] {
	return Time[T, E]{code: code}
}

// Zero returns time 0.
func Zero[T Tick, E Encoding[T]]() Time[T, E] {
	return Time[T, E]{code: encoding[T, E]().Zero()}
}

// Max returns the sentinel that represents the unbounded future.
func Max[T Tick, E Encoding[T]]() Time[T, E] {
	return Time[T, E]{code: encoding[T, E]().Max()}
}

// Min returns the sentinel that represents the unbounded past.
func Min[T Tick, E Encoding[T]]() Time[T, E] {
	return Time[T, E]{code: encoding[T, E]().Min()}
}

// Epsilon returns the smallest positive time.
func Epsilon[T Tick, E Encoding[T]]() Time[T, E] {
	return Time[T, E]{code: encoding[T, E]().Epsilon()}
}

func (t Time[T, E]) enc() E {
	var e E
	return e
}

func (t Time[T, E]) with(code T) Time[T, E] {
	return Time[T, E]{code: code}
}

// Code returns the native representation.
func (t Time[T, E]) Code() T {
	return t.code
}

// Sec returns the time in seconds.
func (t Time[T, E]) Sec() float64 {
	return t.enc().ToDouble(t.code)
}

// WholeSeconds returns the number of whole seconds, truncated toward zero.
func (t Time[T, E]) WholeSeconds() int64 {
	return t.enc().Seconds(t.code)
}

// Count returns the time as a count of the given unit.
func (t Time[T, E]) Count(unit Unit) int64 {
	return t.enc().ToCount(t.code, unit)
}

// IsMax returns true if the time is the unbounded future sentinel.
func (t Time[T, E]) IsMax() bool {
	return t.code == t.enc().Max()
}

// IsMin returns true if the time is the unbounded past sentinel.
func (t Time[T, E]) IsMin() bool {
	return t.code == t.enc().Min()
}

// IsSentinel returns true if the time is either sentinel.
func (t Time[T, E]) IsSentinel() bool {
	return t.IsMax() || t.IsMin()
}

// IsZero returns true if the time is 0.
func (t Time[T, E]) IsZero() bool {
	return t.code == t.enc().Zero()
}

// clamp maps any value at or beyond a sentinel onto the sentinel.
func (t Time[T, E]) clamp(code T) Time[T, E] {
	e := t.enc()
	switch {
	case code >= e.Max():
		return t.with(e.Max())
	case code <= e.Min():
		return t.with(e.Min())
	}

	return t.with(code)
}

func (t Time[T, E]) flip() Time[T, E] {
	e := t.enc()
	if t.IsMax() {
		return t.with(e.Min())
	}

	return t.with(e.Max())
}

// Add returns t+o.
func (t Time[T, E]) Add(o Time[T, E]) Time[T, E] {
	if t.IsSentinel() {
		return t
	}

	if o.IsSentinel() {
		return o
	}

	e := t.enc()
	s := t.code + o.code

	switch {
	case o.code > 0 && s < t.code:
		return t.with(e.Max())
	case o.code < 0 && s > t.code:
		return t.with(e.Min())
	}

	return t.clamp(s)
}

// Sub returns t-o.
func (t Time[T, E]) Sub(o Time[T, E]) Time[T, E] {
	if t.IsSentinel() {
		return t
	}

	if o.IsSentinel() {
		return o.flip()
	}

	e := t.enc()
	d := t.code - o.code

	switch {
	case o.code < 0 && d < t.code:
		return t.with(e.Max())
	case o.code > 0 && d > t.code:
		return t.with(e.Min())
	}

	return t.clamp(d)
}

// MulInt returns t*n, computed on the native representation.
func (t Time[T, E]) MulInt(n int64) Time[T, E] {
	switch {
	case n == 0:
		return t.with(t.enc().Zero())
	case t.IsSentinel():
		if n > 0 {
			return t
		}
		return t.flip()
	}

	if integral[T]() {
		return t.clamp(T(mulSat(int64(t.code), n)))
	}

	return t.clamp(t.code * T(n))
}

// DivInt returns t/n, computed on the native representation. Integer
// encodings truncate toward zero.
func (t Time[T, E]) DivInt(n int64) Time[T, E] {
	switch {
	case n == 0:
		logrus.Panic("timing: division by zero")
	case t.IsSentinel():
		if n > 0 {
			return t
		}
		return t.flip()
	}

	if integral[T]() {
		return t.with(T(int64(t.code) / n))
	}

	return t.with(t.code / T(n))
}

// MulFloat returns t*f. The product is computed in seconds and converted back,
// so the result is rounded to the resolution of the encoding.
func (t Time[T, E]) MulFloat(f float64) Time[T, E] {
	mustBeANumber(f)

	switch {
	case f == 0:
		return t.with(t.enc().Zero())
	case t.IsSentinel():
		if f > 0 {
			return t
		}
		return t.flip()
	}

	return t.with(t.enc().Convert(t.Sec() * f))
}

// DivFloat returns t/f. The quotient is computed in seconds and converted
// back, so the result is rounded to the resolution of the encoding.
func (t Time[T, E]) DivFloat(f float64) Time[T, E] {
	mustBeANumber(f)

	switch {
	case f == 0:
		logrus.Panic("timing: division by zero")
	case t.IsSentinel():
		if f > 0 {
			return t
		}
		return t.flip()
	}

	return t.with(t.enc().Convert(t.Sec() / f))
}

// Mod returns the remainder of t divided by o. Integer encodings use the
// native integer remainder, the float encoding uses a floating remainder.
func (t Time[T, E]) Mod(o Time[T, E]) Time[T, E] {
	if o.IsZero() {
		logrus.Panic("timing: modulo by zero time")
	}

	if t.IsSentinel() {
		return t
	}

	if integral[T]() {
		return t.with(T(int64(t.code) % int64(o.code)))
	}

	return t.with(t.enc().Convert(math.Mod(t.Sec(), o.Sec())))
}

// Ratio returns t/o as a plain number. Dividing two times does not produce a
// time.
func (t Time[T, E]) Ratio(o Time[T, E]) float64 {
	return t.Sec() / o.Sec()
}

// Compare returns -1 if t is before o, +1 if t is after o, and 0 otherwise.
func (t Time[T, E]) Compare(o Time[T, E]) int {
	switch {
	case t.code < o.code:
		return -1
	case t.code > o.code:
		return 1
	}

	return 0
}

// Before returns true if t is strictly earlier than o.
func (t Time[T, E]) Before(o Time[T, E]) bool {
	return t.code < o.code
}

// After returns true if t is strictly later than o.
func (t Time[T, E]) After(o Time[T, E]) bool {
	return t.code > o.code
}

// Equal returns true if t and o denote the same time.
func (t Time[T, E]) Equal(o Time[T, E]) bool {
	return t.code == o.code
}

func (t Time[T, E]) String() string {
	switch {
	case t.IsMax():
		return "+inf"
	case t.IsMin():
		return "-inf"
	}

	return fmt.Sprintf("%gs", t.Sec())
}
