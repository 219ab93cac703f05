// Package sampling provides periodic collectors that sample simulation
// quantities into a column buffer on a fixed time grid.
package sampling

import (
	"fmt"

	"github.com/griddyn/griddyn/sim"
	"github.com/griddyn/griddyn/timing"
	"github.com/sirupsen/logrus"
)

// HookPosPointAdded is invoked after a DataPoint is appended. The hook item
// is the *DataPoint.
var HookPosPointAdded = &sim.HookPos{Name: "PointAdded"}

// HookPosAfterTrigger is invoked at the end of every trigger. The hook item
// is the trigger time.
var HookPosAfterTrigger = &sim.HookPos{Name: "AfterTrigger"}

// maxCatchUpSteps bounds how many whole periods a single trigger walks the
// trigger time forward before jumping straight past the current time.
const maxCatchUpSteps = 5

// A Collector samples a set of DataPoints whenever it is triggered and keeps
// track of when it should be triggered next.
type Collector interface {
	sim.Named
	sim.Hookable

	Trigger(now timing.VTime) ChangeCode
	SetTime(t timing.VTime)
	NextTriggerTime() timing.VTime
	LastTriggerTime() timing.VTime
	Period() timing.VTime

	Add(src Source, column int)
	AddPaired(src, paired Source, column int)
	AddField(field string, target Target) error
	AddInfo(info FieldInfo, target Target) error
	SetSourceMaker(m SourceMaker)
	Retarget(t Target)

	Data() []float64
	ColumnDescriptions() []string

	Set(param string, value float64) error
	SetString(param, value string) error

	Warnings() []string
	Clone() Collector
	Flush() error
	SinkName() string
}

type layoutState int

const (
	layoutClean layoutState = iota
	layoutDirty
)

// Base is the plain collector. It samples into an in-memory buffer and
// never reports a structural change.
type Base struct {
	sim.HookableBase

	name string

	timePeriod      timing.VTime
	reqPeriod       timing.VTime
	triggerTime     timing.VTime
	lastTriggerTime timing.VTime
	startTime       timing.VTime
	stopTime        timing.VTime

	points  []DataPoint
	data    []float64
	scratch []float64
	columns int
	layout  layoutState

	warnings    []string
	sourceMaker SourceMaker
}

// NewBase creates a collector with a one second period that first fires at
// time zero.
func NewBase(name string) *Base {
	return newBaseAt(name, timing.TimeZero, timing.OneSecond)
}

func newBaseAt(name string, time0, period timing.VTime) *Base {
	b := &Base{}
	b.name = name
	b.timePeriod = period
	b.reqPeriod = period
	b.triggerTime = time0
	b.lastTriggerTime = timing.NegTime
	b.startTime = timing.NegTime
	b.stopTime = timing.MaxTime

	return b
}

// Name returns the name of the collector.
func (b *Base) Name() string {
	return b.name
}

// SetName renames the collector.
func (b *Base) SetName(name string) {
	b.name = name
}

// Period returns the sampling period in use.
func (b *Base) Period() timing.VTime {
	return b.timePeriod
}

// RequestedPeriod returns the period last asked for, before quantization.
func (b *Base) RequestedPeriod() timing.VTime {
	return b.reqPeriod
}

// NextTriggerTime returns the time at which the collector wants to be
// triggered next. MaxTime means never.
func (b *Base) NextTriggerTime() timing.VTime {
	return b.triggerTime
}

// LastTriggerTime returns the time of the most recent trigger.
func (b *Base) LastTriggerTime() timing.VTime {
	return b.lastTriggerTime
}

// StartTime returns the start time.
func (b *Base) StartTime() timing.VTime {
	return b.startTime
}

// StopTime returns the time after which the collector stops firing.
func (b *Base) StopTime() timing.VTime {
	return b.stopTime
}

// SetSourceMaker sets the factory used by AddField and AddInfo.
func (b *Base) SetSourceMaker(m SourceMaker) {
	b.sourceMaker = m
}

// Points returns a copy of the data points.
func (b *Base) Points() []DataPoint {
	points := make([]DataPoint, len(b.points))
	copy(points, b.points)

	return points
}

// Columns returns the number of columns tracked so far.
func (b *Base) Columns() int {
	return b.columns
}

// Trigger samples every point and moves the trigger time past now.
func (b *Base) Trigger(now timing.VTime) ChangeCode {
	if b.layout == layoutDirty {
		b.recheckColumns()
	}

	for i := range b.points {
		b.scratch = b.points[i].sample(b.data, b.scratch)
	}

	b.lastTriggerTime = now
	b.reschedule(now)

	b.InvokeHook(sim.HookCtx{
		Domain: b,
		Pos:    HookPosAfterTrigger,
		Item:   now,
	})

	return NoChange
}

func (b *Base) reschedule(now timing.VTime) {
	for steps := 1; !now.Before(b.triggerTime); steps++ {
		b.triggerTime = b.triggerTime.Add(b.timePeriod)

		if steps > maxCatchUpSteps {
			b.triggerTime = now.Add(b.timePeriod)

			if !b.triggerTime.After(now) {
				b.triggerTime = timing.MaxTime
				break
			}
		}
	}

	if b.triggerTime.After(b.stopTime) {
		b.triggerTime = timing.MaxTime
	}
}

// SetTime moves the trigger time forward to t. It never moves it back.
func (b *Base) SetTime(t timing.VTime) {
	if t.After(b.triggerTime) {
		b.triggerTime = t
	}
}

// recheckColumns assigns columns to unassigned points in insertion order and
// resizes the buffer to cover every point.
func (b *Base) recheckColumns() {
	count := 0
	size := 0

	for i := range b.points {
		p := &b.points[i]
		if p.Column == Unassigned {
			p.Column = count
		}

		b.scratch = p.measure(b.scratch)
		count += p.width

		if end := p.Column + p.width; end > size {
			size = end
		}
	}

	if count > size {
		size = count
	}

	b.columns = size
	b.resize(size)
	b.layout = layoutClean
}

func (b *Base) resize(n int) {
	if n <= cap(b.data) {
		old := len(b.data)
		b.data = b.data[:n]

		for i := old; i < n; i++ {
			b.data[i] = 0
		}

		return
	}

	data := make([]float64, n)
	copy(data, b.data)
	b.data = data
}

func (b *Base) getColumn(requested int) int {
	if requested >= 0 {
		return requested
	}

	if b.layout == layoutDirty {
		return Unassigned
	}

	return b.columns
}

func (b *Base) updateColumns(column int) {
	if column >= b.columns {
		b.columns = column + 1
	}

	if b.layout == layoutClean {
		b.resize(b.columns)
	}
}

// Add appends a point bound to src. A negative column lets the collector
// pick the next free one.
func (b *Base) Add(src Source, column int) {
	if src == nil {
		logrus.Panic("sampling: cannot add a nil source")
	}

	col := b.getColumn(column)
	if isVector(src) {
		b.layout = layoutDirty
	}

	b.updateColumns(col)
	b.appendPoint(DataPoint{
		Source: src,
		Column: col,
		Name:   src.Description(),
	})

	if !src.Loaded() {
		if src.Target() != nil {
			b.addWarning("source not loaded, invalid field: " + src.Field())
		} else {
			b.addWarning("source target not valid")
		}
	}
}

// AddPaired appends a point that reads src and keeps paired bound to the
// same target.
func (b *Base) AddPaired(src, paired Source, column int) {
	if src == nil || paired == nil {
		logrus.Panic("sampling: cannot add a nil source")
	}

	col := b.getColumn(column)
	if isVector(src) || isVector(paired) {
		b.layout = layoutDirty
	}

	b.updateColumns(col)
	b.appendPoint(DataPoint{
		Source: src,
		Paired: paired,
		Column: col,
		Name:   src.Description(),
	})

	if !src.Loaded() && !paired.Loaded() {
		b.addWarning("source not loaded")
	}
}

func (b *Base) appendPoint(p DataPoint) {
	b.points = append(b.points, p)

	if b.NumHooks() > 0 {
		b.InvokeHook(sim.HookCtx{
			Domain: b,
			Pos:    HookPosPointAdded,
			Item:   &b.points[len(b.points)-1],
		})
	}
}

// Retarget rebinds every source that supports it to t.
func (b *Base) Retarget(t Target) {
	for i := range b.points {
		p := &b.points[i]

		retarget(p.Source, t)
		if p.Paired != nil {
			retarget(p.Paired, t)
		}

		if p.IsVector() {
			b.layout = layoutDirty
		}
	}
}

func retarget(s Source, t Target) {
	if r, ok := s.(Retargeter); ok {
		r.Retarget(t)
	}
}

// Target returns the target of the first point, or nil.
func (b *Base) Target() Target {
	for _, p := range b.points {
		if t := p.Source.Target(); t != nil {
			return t
		}

		if p.Paired != nil {
			if t := p.Paired.Target(); t != nil {
				return t
			}
		}
	}

	return nil
}

// Targets returns every distinct target in point order.
func (b *Base) Targets() []Target {
	var targets []Target

	seen := make(map[Target]bool)
	for _, p := range b.points {
		t := p.Source.Target()
		if t == nil && p.Paired != nil {
			t = p.Paired.Target()
		}

		if t == nil || seen[t] {
			continue
		}

		seen[t] = true
		targets = append(targets, t)
	}

	return targets
}

// Data returns the sample buffer. The slice is owned by the collector and is
// overwritten by the next trigger.
func (b *Base) Data() []float64 {
	if b.layout == layoutDirty {
		b.recheckColumns()
	}

	return b.data
}

// ColumnDescriptions returns one label per column of the sample buffer.
func (b *Base) ColumnDescriptions() []string {
	if b.layout == layoutDirty {
		b.recheckColumns()
	}

	desc := make([]string, len(b.data))

	for _, p := range b.points {
		if p.Column < 0 {
			continue
		}

		vr, ok := p.Source.(VectorReader)
		if !ok {
			if p.Column >= len(desc) {
				continue
			}

			if p.Name != "" {
				desc[p.Column] = p.Name
			} else {
				desc[p.Column] = p.Source.Description()
			}

			continue
		}

		if p.Name != "" {
			for k := 0; k < p.width && p.Column+k < len(desc); k++ {
				desc[p.Column+k] = fmt.Sprintf("%s[%d]", p.Name, k)
			}

			continue
		}

		for k, d := range vr.VectorDescriptions() {
			if p.Column+k >= len(desc) {
				break
			}

			desc[p.Column+k] = d
		}
	}

	return desc
}

func (b *Base) addWarning(msg string) {
	b.warnings = append(b.warnings, msg)
	logrus.WithField("collector", b.name).Warn(msg)
}

// Warnings returns the non-fatal problems found while adding points.
func (b *Base) Warnings() []string {
	return b.warnings
}

// ClearWarnings forgets all warnings.
func (b *Base) ClearWarnings() {
	b.warnings = nil
}

// Clone returns an independent copy of the collector.
func (b *Base) Clone() Collector {
	c := &Base{}
	b.CloneInto(c)

	return c
}

// CloneInto overwrites dst with a deep copy of the collector. Every source is
// cloned and the sample buffer of dst is zero-filled. Hooks and warnings of
// dst are kept.
func (b *Base) CloneInto(dst *Base) {
	dst.name = b.name
	dst.timePeriod = b.timePeriod
	dst.reqPeriod = b.reqPeriod
	dst.triggerTime = b.triggerTime
	dst.lastTriggerTime = b.lastTriggerTime
	dst.startTime = b.startTime
	dst.stopTime = b.stopTime
	dst.sourceMaker = b.sourceMaker

	dst.points = make([]DataPoint, len(b.points))
	for i, p := range b.points {
		dst.points[i] = p.clone()
	}

	dst.columns = b.columns
	dst.layout = b.layout
	dst.data = make([]float64, len(b.data))
	dst.scratch = nil
}

// Flush does nothing. The base collector keeps no history.
func (b *Base) Flush() error {
	return nil
}

// SinkName returns the empty string. The base collector has no sink.
func (b *Base) SinkName() string {
	return ""
}
