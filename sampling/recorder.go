package sampling

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/griddyn/griddyn/timing"
	"github.com/sirupsen/logrus"
)

// A Sink receives the rows a Recorder has buffered.
type Sink interface {
	Write(name string, columns []string, rows *TimeSeries) error
}

// A Recorder is a collector that keeps every sampled row and hands them to a
// Sink when flushed.
type Recorder struct {
	Base

	series   TimeSeries
	flushed  int
	autosave int
	sinkName string
	sink     Sink
}

// NewRecorder creates a recorder with a one second period.
func NewRecorder(name string) *Recorder {
	r := &Recorder{}
	r.Base = *NewBase(name)

	return r
}

// SetSink sets where flushed rows go.
func (r *Recorder) SetSink(s Sink) {
	r.sink = s
}

// SinkName returns the name rows are written under.
func (r *Recorder) SinkName() string {
	return r.sinkName
}

// Autosave returns the number of unflushed rows that triggers a flush. Zero
// disables automatic flushing.
func (r *Recorder) Autosave() int {
	return r.autosave
}

// Series returns all rows recorded so far.
func (r *Recorder) Series() *TimeSeries {
	return &r.series
}

// Trigger samples and appends the new row to the series.
func (r *Recorder) Trigger(now timing.VTime) ChangeCode {
	code := r.Base.Trigger(now)
	r.series.Append(now, r.data)

	if r.autosave > 0 && r.series.Len()-r.flushed >= r.autosave {
		if err := r.Flush(); err != nil {
			logrus.WithField("collector", r.name).
				WithError(err).
				Error("autosave failed")
		}
	}

	return code
}

// Flush writes the rows recorded since the last successful flush to the sink.
// Without a sink the rows stay buffered.
func (r *Recorder) Flush() error {
	if r.sink == nil || r.flushed == r.series.Len() {
		return nil
	}

	name := r.sinkName
	if name == "" {
		name = r.name
	}

	err := r.sink.Write(name, r.ColumnDescriptions(), r.series.Since(r.flushed))
	if err != nil {
		return fmt.Errorf("sampling: flushing %s: %w", r.name, err)
	}

	r.flushed = r.series.Len()

	return nil
}

// Set adds the autosave parameter to the ones the base collector knows.
func (r *Recorder) Set(param string, value float64) error {
	if param == "autosave" {
		if value < 0 {
			return fmt.Errorf("%w: autosave must not be negative, got %g",
				ErrInvalidParameter, value)
		}

		r.autosave = int(value)

		return nil
	}

	return r.Base.Set(param, value)
}

// SetString adds the file and sink parameters to the ones the base collector
// knows.
func (r *Recorder) SetString(param, value string) error {
	if isComment(param) || isComment(value) {
		return nil
	}

	switch param {
	case "file", "sink":
		r.sinkName = value
		return nil
	}

	if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
		return r.Set(param, f)
	}

	return r.Base.SetString(param, value)
}

// Clone returns an independent recorder with the same configuration and no
// recorded rows.
func (r *Recorder) Clone() Collector {
	c := &Recorder{}
	r.CloneInto(&c.Base)
	c.autosave = r.autosave
	c.sinkName = r.sinkName
	c.sink = r.sink

	return c
}
