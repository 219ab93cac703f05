package timing

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Decimal stores time as a signed count of 10^-N second ticks, where N is the
// exponent of P. Human-written decimal periods such as 0.001 s are exact.
type Decimal[P Precision] struct{}

func (Decimal[P]) digits() uint {
	n := exponentOf[P]()
	if n >= uint(len(pow10)) {
		logrus.Panicf("timing: decimal encoding cannot have %d digits", n)
	}

	return n
}

func (d Decimal[P]) factor() int64 {
	return pow10[d.digits()]
}

// Convert maps seconds into ticks, rounding to the nearest tick. Values
// outside of the representable range saturate to the sentinels.
func (d Decimal[P]) Convert(seconds float64) int64 {
	f := d.factor()
	mustBeANumber(seconds)

	if seconds < fixedPointGuard {
		return math.MinInt64
	}

	limit := float64(math.MaxInt64 / f)
	if seconds >= limit {
		return math.MaxInt64
	}

	if seconds <= -limit {
		return math.MinInt64
	}

	whole, frac := math.Modf(seconds)

	return int64(whole)*f + int64(math.Round(frac*float64(f)))
}

// ToDouble maps ticks back to seconds.
func (d Decimal[P]) ToDouble(code int64) float64 {
	f := d.factor()
	return float64(code/f) + float64(code%f)/float64(f)
}

// ToCount converts ticks into a count of units, truncating toward zero.
func (d Decimal[P]) ToCount(code int64, unit Unit) int64 {
	mustBeValidUnit(unit)

	if code == math.MaxInt64 || code == math.MinInt64 {
		return code
	}

	n := d.digits()
	if !unit.SubSecond() {
		return code / d.factor() / secondsPer[unit]
	}

	k := unitDigits[unit]
	if n >= k {
		return code / pow10[n-k]
	}

	return mulSat(code, pow10[k-n])
}

// FromCount converts a count of units into ticks, truncating toward zero.
func (d Decimal[P]) FromCount(count int64, unit Unit) int64 {
	mustBeValidUnit(unit)

	n := d.digits()
	if !unit.SubSecond() {
		return mulSat(mulSat(count, secondsPer[unit]), d.factor())
	}

	k := unitDigits[unit]
	if n >= k {
		return mulSat(count, pow10[n-k])
	}

	return count / pow10[k-n]
}

// Seconds returns the whole seconds, truncated toward zero.
func (d Decimal[P]) Seconds(code int64) int64 {
	return code / d.factor()
}

// Zero returns 0.
func (Decimal[P]) Zero() int64 { return 0 }

// Min returns the smallest int64.
func (Decimal[P]) Min() int64 { return math.MinInt64 }

// Max returns the largest int64.
func (Decimal[P]) Max() int64 { return math.MaxInt64 }

// Epsilon returns a single tick.
func (Decimal[P]) Epsilon() int64 { return 1 }
