package timing

import (
	"github.com/sirupsen/logrus"
)

// Freq defines the type of frequency
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// Period returns the time between two consecutive ticks
func (f Freq) Period() VTime {
	if f <= 0 {
		logrus.Panic(ErrZeroFrequency)
	}

	p := Sec(1.0 / float64(f))
	if p.Code() <= 0 {
		logrus.Panicf("timing: frequency %g Hz is finer than the time resolution", f)
	}

	return p
}

// Cycle converts a time to the number of cycles passed since time 0, rounded
// to the nearest cycle.
func (f Freq) Cycle(t VTime) uint64 {
	if t.Code() <= 0 {
		return 0
	}

	p := f.Period().Code()

	return uint64((t.Code() + p/2) / p)
}

// ThisTick returns the current tick time
//
//	               Input
//	               (          ]
//	    |----------|----------|----------|----->
//	                          |
//	                          Output
func (f Freq) ThisTick(now VTime) VTime {
	if now.IsSentinel() {
		return now
	}

	p := f.Period()

	return p.MulInt(ceilDiv(now.Code(), p.Code()))
}

// NextTick returns the next tick time.
//
//	               Input
//	               [          )
//	    |----------|----------|----------|----->
//	                          |
//	                          Output
func (f Freq) NextTick(now VTime) VTime {
	if now.IsSentinel() {
		return now
	}

	p := f.Period()

	return p.MulInt(floorDiv(now.Code(), p.Code()) + 1)
}

// NCyclesLater returns the time after N cycles
//
// This function will always return a time of an integer number of cycles
func (f Freq) NCyclesLater(n int, now VTime) VTime {
	return f.ThisTick(now).Add(f.Period().MulInt(int64(n)))
}

// NoEarlierThan returns the tick time that is at or right after the given time
func (f Freq) NoEarlierThan(t VTime) VTime {
	return f.ThisTick(t)
}

// HalfTick returns the time in middle of two ticks
//
//	               Input
//	               (          ]
//	    |----------|----------|----------|----->
//	                               |
//	                               Output
func (f Freq) HalfTick(t VTime) VTime {
	return f.ThisTick(t).Add(f.Period().DivInt(2))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}

	return q
}
