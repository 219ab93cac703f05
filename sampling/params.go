package sampling

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/griddyn/griddyn/timing"
)

// Set sets a numeric parameter. Time values are in seconds.
//
//	period              sampling period
//	frequency           requested period 1/value, period value
//	triggertime, trigger, time
//	                    next trigger time
//	starttime, start    start time, also resets the trigger time
//	stoptime, stop      stop time
//	period_resolution   quantizes the period to a multiple of value
func (b *Base) Set(param string, value float64) error {
	if math.IsNaN(value) {
		return fmt.Errorf("%w: %s is NaN", ErrInvalidParameter, param)
	}

	switch param {
	case "period":
		if value <= 0 {
			return mustBePositive(param, value)
		}

		b.reqPeriod = timing.Sec(value)
		b.timePeriod = b.reqPeriod
	case "frequency":
		if value <= 0 {
			return mustBePositive(param, value)
		}

		b.reqPeriod = timing.Sec(1.0 / value)
		b.timePeriod = timing.Sec(value)
	case "triggertime", "trigger", "time":
		b.triggerTime = timing.Sec(value)
	case "starttime", "start":
		b.startTime = timing.Sec(value)
		b.triggerTime = b.startTime
	case "stoptime", "stop":
		b.stopTime = timing.Sec(value)
	case "period_resolution":
		if value <= 0 {
			return mustBePositive(param, value)
		}

		b.quantizePeriod(timing.Sec(value))
	default:
		return b.setFallback(param, strconv.FormatFloat(value, 'g', -1, 64))
	}

	return nil
}

func mustBePositive(param string, value float64) error {
	return fmt.Errorf("%w: %s must be positive, got %g",
		ErrInvalidParameter, param, value)
}

// quantizePeriod snaps the period to the multiple of resolution closest to
// the requested period. A requested period shorter than half the resolution
// becomes the resolution itself.
func (b *Base) quantizePeriod(resolution timing.VTime) {
	if resolution.Code() <= 0 {
		b.timePeriod = timing.TimeEpsilon
		return
	}

	multiple := int64(math.Round(b.reqPeriod.Ratio(resolution)))
	if multiple == 0 {
		b.timePeriod = resolution
		return
	}

	b.timePeriod = resolution.MulInt(multiple)
}

// SetString sets a parameter from its text form. Parameters and values that
// start with '#' are comments and are ignored. Numeric values are forwarded
// to Set.
func (b *Base) SetString(param, value string) error {
	if isComment(param) || isComment(value) {
		return nil
	}

	if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
		return b.Set(param, f)
	}

	return b.setFallback(param, value)
}

func isComment(s string) bool {
	return strings.HasPrefix(s, "#")
}

func (b *Base) setFallback(param, value string) error {
	switch param {
	case "name", "id":
		b.name = value
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownParameter, param)
}
