package timing

import (
	"fmt"
	"strings"
)

// Unit is a unit that a time can be counted in.
type Unit int

// Supported units, from the finest to the coarsest.
const (
	Picosecond Unit = iota
	Nanosecond
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
)

// perSecond is the number of units in one second for sub-second units.
var perSecond = [...]int64{
	Picosecond:  1e12,
	Nanosecond:  1e9,
	Microsecond: 1e6,
	Millisecond: 1e3,
	Second:      1,
}

// secondsPer is the number of seconds in one unit for the units no finer than
// a second.
var secondsPer = [...]int64{
	Second: 1,
	Minute: 60,
	Hour:   3600,
	Day:    86400,
}

// countForward converts seconds into a count of units.
var countForward = [...]float64{
	Picosecond:  1e12,
	Nanosecond:  1e9,
	Microsecond: 1e6,
	Millisecond: 1e3,
	Second:      1,
	Minute:      1.0 / 60.0,
	Hour:        1.0 / 3600.0,
	Day:         1.0 / 86400.0,
}

// countReverse converts a count of units into seconds.
var countReverse = [...]float64{
	Picosecond:  1e-12,
	Nanosecond:  1e-9,
	Microsecond: 1e-6,
	Millisecond: 1e-3,
	Second:      1,
	Minute:      60,
	Hour:        3600,
	Day:         86400,
}

var unitNames = [...]string{
	Picosecond:  "ps",
	Nanosecond:  "ns",
	Microsecond: "us",
	Millisecond: "ms",
	Second:      "s",
	Minute:      "min",
	Hour:        "hr",
	Day:         "day",
}

// Valid returns true if the unit is one of the supported units.
func (u Unit) Valid() bool {
	return u >= Picosecond && u <= Day
}

// SubSecond returns true if the unit is finer than a second.
func (u Unit) SubSecond() bool {
	return u < Second
}

func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}

	return unitNames[u]
}

// ParseUnit converts the short name of a unit into a Unit.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ps":
		return Picosecond, nil
	case "ns":
		return Nanosecond, nil
	case "us":
		return Microsecond, nil
	case "ms":
		return Millisecond, nil
	case "s", "sec", "second", "seconds":
		return Second, nil
	case "min", "minute", "minutes":
		return Minute, nil
	case "hr", "hour", "hours":
		return Hour, nil
	case "day", "days":
		return Day, nil
	}

	return Second, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

func mustBeValidUnit(u Unit) {
	if !u.Valid() {
		panic(fmt.Sprintf("timing: invalid unit %d", int(u)))
	}
}
