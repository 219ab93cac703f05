package timing

// VTime is the simulation time used by the rest of the simulator. It counts
// nanoseconds, so decimal sampling periods are exact and long runs do not
// drift.
type VTime = Time[int64, Decimal[Nano]]

// Other ready-made time types.
type (
	// BinaryTime counts 1/2^30 second ticks.
	BinaryTime = Time[int64, Binary[Bits30]]

	// PicoTime counts picoseconds.
	PicoTime = Time[int64, Decimal[Pico]]

	// FloatTime stores seconds as a float64.
	FloatTime = Time[float64, Float]
)

var (
	// TimeZero is time 0.
	TimeZero = Zero[int64, Decimal[Nano]]()

	// MaxTime is later than every finite VTime.
	MaxTime = Max[int64, Decimal[Nano]]()

	// NegTime is earlier than every finite VTime.
	NegTime = Min[int64, Decimal[Nano]]()

	// TimeEpsilon is the resolution of VTime.
	TimeEpsilon = Epsilon[int64, Decimal[Nano]]()

	// OneSecond is one second.
	OneSecond = Sec(1)
)

// Sec creates a VTime from a number of seconds.
func Sec(seconds float64) VTime {
	return New[int64, Decimal[Nano]](seconds)
}

// Units creates a VTime from a count of units.
func Units(count int64, unit Unit) VTime {
	return FromCount[int64, Decimal[Nano]](count, unit)
}
