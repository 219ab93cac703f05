package sampling

import "github.com/griddyn/griddyn/sim"

// A Target is the simulation object a Source reads from.
type Target interface {
	sim.Named
}

// A Source is a bound handle that reads one quantity from a Target.
//
// A Source must also implement ScalarReader or VectorReader to be sampled.
// Reads never fail loudly. A read that cannot produce a value returns NaN.
type Source interface {
	// Description is a human readable label of the quantity.
	Description() string

	// Field is the field expression the source was built from.
	Field() string

	// Target returns the bound object, or nil if there is none.
	Target() Target

	// Loaded tells if the source is bound to a valid field of a live target.
	Loaded() bool

	// Clone returns an independent copy that shares no mutable state.
	Clone() Source
}

// A ScalarReader reads a single value.
type ScalarReader interface {
	Source
	ReadScalar() float64
}

// A VectorReader reads a run of values whose length may change over time.
type VectorReader interface {
	Source

	// ReadVector appends the current values to buf and returns the result.
	ReadVector(buf []float64) []float64

	// VectorDescriptions returns one label per element.
	VectorDescriptions() []string
}

// A Retargeter can be rebound to another Target.
type Retargeter interface {
	Retarget(t Target)
}

// Calibrated sources apply value*gain + bias to every reading.
type Calibrated interface {
	Calibration() (gain, bias float64)
	SetCalibration(gain, bias float64)
}

func isVector(s Source) bool {
	_, ok := s.(VectorReader)
	return ok
}
