package timing

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Binary stores time as a signed count of 1/2^N second ticks, where N is the
// exponent of P. Power-of-two fractions of a second are exact and most
// conversions reduce to shifts and masks.
type Binary[P Precision] struct{}

func (Binary[P]) bits() uint {
	n := exponentOf[P]()
	if n > 62 {
		logrus.Panicf("timing: binary encoding cannot have %d fractional bits", n)
	}

	return n
}

// Convert maps seconds into ticks. Values outside of the representable range
// saturate to the sentinels.
func (b Binary[P]) Convert(seconds float64) int64 {
	n := b.bits()
	mustBeANumber(seconds)

	if seconds < fixedPointGuard {
		return math.MinInt64
	}

	limit := math.Ldexp(1, 63-int(n))
	if seconds >= limit {
		return math.MaxInt64
	}

	if seconds <= -limit {
		return math.MinInt64
	}

	whole, frac := math.Modf(seconds)
	code := int64(whole)<<n + int64(math.Round(math.Ldexp(frac, int(n))))
	if whole > 0 && code < 0 {
		return math.MaxInt64
	}

	return code
}

// ToDouble maps ticks back to seconds.
func (b Binary[P]) ToDouble(code int64) float64 {
	n := b.bits()
	mask := int64(1)<<n - 1

	return float64(code>>n) + math.Ldexp(float64(code&mask), -int(n))
}

// ToCount converts ticks into a count of units, truncating toward zero.
func (b Binary[P]) ToCount(code int64, unit Unit) int64 {
	mustBeValidUnit(unit)

	if code == math.MaxInt64 || code == math.MinInt64 {
		return code
	}

	n := b.bits()
	mag, neg := splitSign(code)
	whole := mag >> n

	if !unit.SubSecond() {
		return joinSign(whole/uint64(secondsPer[unit]), neg)
	}

	per := uint64(perSecond[unit])
	frac := mag & (uint64(1)<<n - 1)
	fracCount := mulDiv(frac, per, uint64(1)<<n)

	wholeCount := mulSat(int64(whole), int64(per))
	if wholeCount == math.MaxInt64 {
		return saturate(neg)
	}

	return joinSign(uint64(wholeCount)+fracCount, neg)
}

// FromCount converts a count of units into ticks, truncating toward zero.
func (b Binary[P]) FromCount(count int64, unit Unit) int64 {
	mustBeValidUnit(unit)

	n := b.bits()
	mag, neg := splitSign(count)

	var whole, frac uint64
	if unit.SubSecond() {
		per := uint64(perSecond[unit])
		whole = mag / per
		frac = mulDiv(mag%per, uint64(1)<<n, per)
	} else {
		if mag > math.MaxInt64 {
			return saturate(neg)
		}

		w := mulSat(int64(mag), secondsPer[unit])
		if w == math.MaxInt64 {
			return saturate(neg)
		}
		whole = uint64(w)
	}

	if whole > uint64(math.MaxInt64)>>n {
		return saturate(neg)
	}

	return joinSign(whole<<n+frac, neg)
}

// Seconds returns the whole seconds, truncated toward zero.
func (b Binary[P]) Seconds(code int64) int64 {
	return code / (int64(1) << b.bits())
}

// Zero returns 0.
func (Binary[P]) Zero() int64 { return 0 }

// Min returns the smallest int64.
func (Binary[P]) Min() int64 { return math.MinInt64 }

// Max returns the largest int64.
func (Binary[P]) Max() int64 { return math.MaxInt64 }

// Epsilon returns a single tick.
func (Binary[P]) Epsilon() int64 { return 1 }
