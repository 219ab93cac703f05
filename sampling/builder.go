package sampling

import (
	"github.com/griddyn/griddyn/timing"
	"github.com/sirupsen/logrus"
)

// Builder can build collectors.
type Builder struct {
	period      timing.VTime
	resolution  timing.VTime
	startTime   timing.VTime
	stopTime    timing.VTime
	triggerTime timing.VTime
	triggerSet  bool
	sourceMaker SourceMaker
}

// MakeBuilder returns a Builder for a collector that samples once per second
// from time zero and never stops.
func MakeBuilder() Builder {
	return Builder{
		period:      timing.OneSecond,
		startTime:   timing.NegTime,
		stopTime:    timing.MaxTime,
		triggerTime: timing.TimeZero,
	}
}

// WithPeriod sets the sampling period.
func (b Builder) WithPeriod(p timing.VTime) Builder {
	b.period = p
	return b
}

// WithFrequency sets the sampling period to one cycle of f.
func (b Builder) WithFrequency(f timing.Freq) Builder {
	b.period = f.Period()
	return b
}

// WithPeriodResolution quantizes the period to a multiple of r.
func (b Builder) WithPeriodResolution(r timing.VTime) Builder {
	b.resolution = r
	return b
}

// WithStartTime sets the start time. The first trigger happens at the start
// time unless a trigger time is given.
func (b Builder) WithStartTime(t timing.VTime) Builder {
	b.startTime = t
	return b
}

// WithStopTime sets the time after which the collector no longer fires.
func (b Builder) WithStopTime(t timing.VTime) Builder {
	b.stopTime = t
	return b
}

// WithTriggerTime sets the first trigger time.
func (b Builder) WithTriggerTime(t timing.VTime) Builder {
	b.triggerTime = t
	b.triggerSet = true

	return b
}

// WithSourceMaker sets the factory used to add points by field expression.
func (b Builder) WithSourceMaker(m SourceMaker) Builder {
	b.sourceMaker = m
	return b
}

// Build creates a plain collector.
func (b Builder) Build(name string) *Base {
	c := &Base{}
	b.configure(c, name)

	return c
}

// BuildRecorder creates a recorder that writes to sink.
func (b Builder) BuildRecorder(name string, sink Sink) *Recorder {
	r := &Recorder{}
	b.configure(&r.Base, name)
	r.sink = sink

	return r
}

func (b Builder) configure(c *Base, name string) {
	b.parametersMustBeValid()

	*c = *newBaseAt(name, b.triggerTime, b.period)
	c.startTime = b.startTime
	c.stopTime = b.stopTime
	c.sourceMaker = b.sourceMaker

	if !b.triggerSet && !b.startTime.IsMin() {
		c.triggerTime = b.startTime
	}

	if b.resolution.Code() > 0 {
		c.quantizePeriod(b.resolution)
	}
}

func (b Builder) parametersMustBeValid() {
	if b.period.Code() <= 0 {
		logrus.Panicf("sampling: period must be positive, got %s", b.period)
	}

	if b.resolution.Code() < 0 {
		logrus.Panicf("sampling: period resolution must not be negative, got %s",
			b.resolution)
	}
}
