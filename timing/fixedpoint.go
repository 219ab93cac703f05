package timing

import (
	"math"
	"math/bits"
)

var pow10 = [16]int64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
}

// unitDigits is the power of ten of the sub-second units.
var unitDigits = [...]uint{
	Picosecond:  12,
	Nanosecond:  9,
	Microsecond: 6,
	Millisecond: 3,
}

// splitSign returns the magnitude of v and whether v is negative.
func splitSign(v int64) (uint64, bool) {
	if v < 0 {
		return uint64(-(v + 1)) + 1, true
	}

	return uint64(v), false
}

// joinSign applies a sign to a magnitude, saturating at the int64 limits.
func joinSign(mag uint64, neg bool) int64 {
	if neg {
		if mag > 1<<63 {
			return math.MinInt64
		}

		return -int64(mag - 1) - 1
	}

	if mag > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(mag)
}

// saturate returns the int64 limit with the given sign.
func saturate(neg bool) int64 {
	if neg {
		return math.MinInt64
	}

	return math.MaxInt64
}

// mulSat multiplies two int64 values, saturating on overflow.
func mulSat(a, b int64) int64 {
	ma, na := splitSign(a)
	mb, nb := splitSign(b)
	neg := na != nb

	hi, lo := bits.Mul64(ma, mb)
	if hi != 0 {
		return saturate(neg)
	}

	return joinSign(lo, neg)
}

// addSat adds two int64 values, saturating on overflow.
func addSat(a, b int64) int64 {
	s := a + b
	switch {
	case b > 0 && s < a:
		return math.MaxInt64
	case b < 0 && s > a:
		return math.MinInt64
	}

	return s
}

// mulDiv computes x*m/d without intermediate overflow. The caller guarantees
// x < d so that the quotient fits.
func mulDiv(x, m, d uint64) uint64 {
	hi, lo := bits.Mul64(x, m)
	q, _ := bits.Div64(hi, lo, d)

	return q
}

// floatToCount truncates a float toward zero, saturating at the int64 limits.
func floatToCount(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}

	return int64(v)
}
