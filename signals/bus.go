// Package signals provides synthetic buses whose quantities follow simple
// closed-form waveforms. They stand in for a solved network when exercising
// collectors.
package signals

import (
	"math"

	"github.com/griddyn/griddyn/timing"
)

// Scalar fields a Bus exposes, in offset order starting at 1.
var scalarFields = []string{"voltage", "angle", "load", "freq"}

// PhasesField is the three-phase vector field of a Bus.
const PhasesField = "phases"

// A Bus is a network node with a voltage waveform and a ramping load.
type Bus struct {
	name string

	Nominal   float64
	Hz        float64
	Swing     float64
	SwingHz   float64
	BaseLoad  float64
	LoadRamp  float64
	Until     timing.VTime
	now       float64
	tickCount int
}

// NewBus creates a 1 p.u. 60 Hz bus that updates forever.
func NewBus(name string) *Bus {
	return &Bus{
		name:     name,
		Nominal:  1,
		Hz:       60,
		Swing:    0.02,
		SwingHz:  0.5,
		BaseLoad: 1,
		LoadRamp: 0.01,
		Until:    timing.MaxTime,
	}
}

// Name returns the name of the bus.
func (b *Bus) Name() string {
	return b.name
}

// Tick moves the bus state to now. The bus keeps ticking until Until.
func (b *Bus) Tick(now timing.VTime) bool {
	b.now = now.Sec()
	b.tickCount++

	return now.Before(b.Until)
}

// Ticks returns how many times the bus was ticked.
func (b *Bus) Ticks() int {
	return b.tickCount
}

// Value returns the current value of a scalar field. Unknown fields read as
// NaN.
func (b *Bus) Value(field string) float64 {
	t := b.now

	switch field {
	case "voltage":
		return b.Nominal * (1 + b.Swing*math.Sin(2*math.Pi*b.SwingHz*t))
	case "angle":
		return math.Mod(2*math.Pi*b.Hz*t, 2*math.Pi)
	case "load":
		return b.BaseLoad + b.LoadRamp*t
	case "freq":
		return b.Hz * (1 + 0.001*math.Sin(2*math.Pi*b.SwingHz*t))
	}

	return math.NaN()
}

// Phases appends the instantaneous three-phase voltages to buf.
func (b *Bus) Phases(buf []float64) []float64 {
	v := b.Value("voltage")
	w := 2 * math.Pi * b.Hz * b.now

	for k := 0; k < 3; k++ {
		buf = append(buf, v*math.Sin(w-float64(k)*2*math.Pi/3))
	}

	return buf
}

func isScalarField(field string) bool {
	for _, f := range scalarFields {
		if f == field {
			return true
		}
	}

	return false
}
