package signals

import (
	"math"

	"github.com/griddyn/griddyn/sampling"
)

type calibration struct {
	gain float64
	bias float64
}

func (c *calibration) Calibration() (float64, float64) {
	return c.gain, c.bias
}

func (c *calibration) SetCalibration(gain, bias float64) {
	c.gain = gain
	c.bias = bias
}

func (c *calibration) apply(v float64) float64 {
	return v*c.gain + c.bias
}

// FieldSource reads one scalar field of a Bus.
type FieldSource struct {
	calibration

	bus   *Bus
	field string
}

// NewFieldSource binds field of bus. A nil bus gives an unloaded source.
func NewFieldSource(bus *Bus, field string) *FieldSource {
	return &FieldSource{
		calibration: calibration{gain: 1},
		bus:         bus,
		field:       field,
	}
}

// Description returns bus:field.
func (s *FieldSource) Description() string {
	if s.bus == nil {
		return s.field
	}

	return s.bus.Name() + ":" + s.field
}

// Field returns the field name.
func (s *FieldSource) Field() string {
	return s.field
}

// Target returns the bus, or nil.
func (s *FieldSource) Target() sampling.Target {
	if s.bus == nil {
		return nil
	}

	return s.bus
}

// Loaded tells if the source has a bus and the bus has the field.
func (s *FieldSource) Loaded() bool {
	return s.bus != nil && isScalarField(s.field)
}

// Clone returns a copy bound to the same bus.
func (s *FieldSource) Clone() sampling.Source {
	c := *s
	return &c
}

// ReadScalar returns the calibrated field value, or NaN if not loaded.
func (s *FieldSource) ReadScalar() float64 {
	if !s.Loaded() {
		return math.NaN()
	}

	return s.apply(s.bus.Value(s.field))
}

// Retarget binds the source to t if t is a Bus, or unbinds it otherwise.
func (s *FieldSource) Retarget(t sampling.Target) {
	s.bus, _ = t.(*Bus)
}

// PhaseSource reads the three-phase voltages of a Bus.
type PhaseSource struct {
	calibration

	bus *Bus
}

// NewPhaseSource binds the phases of bus.
func NewPhaseSource(bus *Bus) *PhaseSource {
	return &PhaseSource{
		calibration: calibration{gain: 1},
		bus:         bus,
	}
}

// Description returns bus:phases.
func (s *PhaseSource) Description() string {
	if s.bus == nil {
		return PhasesField
	}

	return s.bus.Name() + ":" + PhasesField
}

// Field returns "phases".
func (s *PhaseSource) Field() string {
	return PhasesField
}

// Target returns the bus, or nil.
func (s *PhaseSource) Target() sampling.Target {
	if s.bus == nil {
		return nil
	}

	return s.bus
}

// Loaded tells if the source has a bus.
func (s *PhaseSource) Loaded() bool {
	return s.bus != nil
}

// Clone returns a copy bound to the same bus.
func (s *PhaseSource) Clone() sampling.Source {
	c := *s
	return &c
}

// ReadVector appends the calibrated phase voltages. An unbound source reads
// nothing.
func (s *PhaseSource) ReadVector(buf []float64) []float64 {
	if s.bus == nil {
		return buf
	}

	start := len(buf)
	buf = s.bus.Phases(buf)

	for i := start; i < len(buf); i++ {
		buf[i] = s.apply(buf[i])
	}

	return buf
}

// VectorDescriptions names the phases a, b and c.
func (s *PhaseSource) VectorDescriptions() []string {
	prefix := s.Description() + "_"
	return []string{prefix + "a", prefix + "b", prefix + "c"}
}

// Retarget binds the source to t if t is a Bus, or unbinds it otherwise.
func (s *PhaseSource) Retarget(t sampling.Target) {
	s.bus, _ = t.(*Bus)
}
