package sampling

import (
	"github.com/griddyn/griddyn/sim"
	"github.com/griddyn/griddyn/timing"
	"github.com/sirupsen/logrus"
)

// TriggerEvent asks a Driver to trigger its collector. Trigger events are
// secondary so that samples see the state after all same-time updates.
type TriggerEvent struct {
	sim.EventBase
}

// A Driver triggers a collector on an engine at the times the collector asks
// for, until the collector stops.
type Driver struct {
	engine    sim.Engine
	collector Collector

	pending timing.VTime
}

// NewDriver creates a Driver for c. Nothing is scheduled until Start.
func NewDriver(engine sim.Engine, c Collector) *Driver {
	return &Driver{
		engine:    engine,
		collector: c,
		pending:   timing.NegTime,
	}
}

// Name returns the name of the driver.
func (d *Driver) Name() string {
	return d.collector.Name() + ".Driver"
}

// Collector returns the driven collector.
func (d *Driver) Collector() Collector {
	return d.collector
}

// Start schedules the first trigger.
func (d *Driver) Start() {
	d.scheduleNext()
}

// Resume fast-forwards the collector to t and reschedules it. Triggers that
// were scheduled earlier are dropped.
func (d *Driver) Resume(t timing.VTime) {
	d.collector.SetTime(t)
	d.scheduleNext()
}

// Handle triggers the collector and schedules the next trigger.
func (d *Driver) Handle(e sim.Event) error {
	if _, ok := e.(TriggerEvent); !ok {
		logrus.Panicf("sampling: driver cannot handle %T", e)
	}

	if !e.Time().Equal(d.pending) {
		return nil
	}

	d.pending = timing.NegTime
	code := d.collector.Trigger(e.Time())

	logrus.WithFields(logrus.Fields{
		"collector": d.collector.Name(),
		"time":      e.Time().String(),
		"next":      d.collector.NextTriggerTime().String(),
		"change":    code.String(),
	}).Debug("collector triggered")

	d.scheduleNext()

	return nil
}

func (d *Driver) scheduleNext() {
	next := d.collector.NextTriggerTime()
	if next.IsMax() {
		d.pending = timing.NegTime
		return
	}

	now := d.engine.CurrentTime()
	if next.Before(now) {
		next = now
	}

	if next.Equal(d.pending) {
		return
	}

	d.pending = next

	evt := TriggerEvent{sim.MakeEventBase(next, d)}
	evt.MakeSecondary()
	d.engine.Schedule(evt)
}

// FlushAtEnd returns a handler that flushes c when the simulation ends.
func FlushAtEnd(c Collector) sim.SimulationEndHandler {
	return endFlusher{c}
}

type endFlusher struct {
	c Collector
}

func (f endFlusher) Handle(now timing.VTime) {
	if err := f.c.Flush(); err != nil {
		logrus.WithField("collector", f.c.Name()).
			WithError(err).
			Error("flush at simulation end failed")
	}
}
