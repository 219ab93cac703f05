package sampling

import (
	"errors"
	"fmt"
	"strings"
)

// A SourceMaker turns field expressions into bound sources.
type SourceMaker interface {
	// MakeSources returns every source the field expression names on target.
	// An expression that names nothing returns an empty slice.
	MakeSources(field string, target Target) []Source

	// MakeSourceAt returns a source for the state at offset, or nil.
	MakeSourceAt(offset int, target Target) Source
}

// FieldInfo describes a point to add by field expression or state offset.
type FieldInfo struct {
	Field  string
	Offset int
	Column int
	Gain   float64
	Bias   float64
}

// NewFieldInfo returns a FieldInfo with unit gain and no explicit column.
func NewFieldInfo(field string) FieldInfo {
	return FieldInfo{
		Field:  field,
		Column: Unassigned,
		Gain:   1,
	}
}

// AddField adds one point for every source the field expression produces.
// Expressions may be lists separated by ',' or ';'.
func (b *Base) AddField(field string, target Target) error {
	return b.AddInfo(NewFieldInfo(field), target)
}

// AddInfo adds points described by info. A field expression takes precedence
// over the offset. Gain and bias are merged into a single resulting source.
func (b *Base) AddInfo(info FieldInfo, target Target) error {
	if b.sourceMaker == nil {
		return fmt.Errorf("%w: no source maker configured", ErrAddFailure)
	}

	if info.Field == "" {
		return b.addAtOffset(info, target)
	}

	if strings.ContainsAny(info.Field, ",;") {
		if fields := splitBracket(info.Field, ",;"); len(fields) > 1 {
			return b.addList(info, fields, target)
		}
	}

	sources := b.sourceMaker.MakeSources(info.Field, target)
	if len(sources) == 0 {
		b.addWarning("no sources created from " + info.Field)
		return fmt.Errorf("%w: no sources created from %q",
			ErrAddFailure, info.Field)
	}

	if len(sources) == 1 {
		mergeCalibration(sources[0], info.Gain, info.Bias)
		b.Add(sources[0], info.Column)

		return nil
	}

	col := info.Column
	for _, s := range sources {
		if col >= 0 {
			b.Add(s, col)
			col++

			continue
		}

		b.Add(s, Unassigned)
	}

	return nil
}

func (b *Base) addAtOffset(info FieldInfo, target Target) error {
	if info.Offset <= 0 {
		b.addWarning("unable to create point, no field or offset specified")
		return nil
	}

	src := b.sourceMaker.MakeSourceAt(info.Offset, target)
	if src == nil {
		return fmt.Errorf("%w: no source at offset %d",
			ErrAddFailure, info.Offset)
	}

	if c, ok := src.(Calibrated); ok {
		c.SetCalibration(info.Gain, info.Bias)
	}

	b.Add(src, info.Column)

	return nil
}

// addList adds every element of a separated field list. Explicit columns
// advance by one per element. The list fails only if no element could be
// added.
func (b *Base) addList(
	info FieldInfo,
	fields []string,
	target Target,
) error {
	col := info.Column
	added := 0

	for _, field := range fields {
		if field == "" {
			continue
		}

		sub := info
		sub.Field = field

		if col >= 0 {
			sub.Column = col
			col++
		}

		err := b.AddInfo(sub, target)
		if errors.Is(err, ErrAddFailure) {
			continue
		}

		if err != nil {
			return err
		}

		added++
	}

	if added == 0 {
		return fmt.Errorf("%w: no sources created from %q",
			ErrAddFailure, info.Field)
	}

	return nil
}

func mergeCalibration(s Source, gain, bias float64) {
	c, ok := s.(Calibrated)
	if !ok {
		return
	}

	g, o := c.Calibration()
	c.SetCalibration(g*gain, o*gain+bias)
}

// splitBracket splits s at any of seps that is not enclosed in brackets and
// trims the pieces.
func splitBracket(s, seps string) []string {
	var (
		pieces []string
		depth  int
		start  int
	)

	for i, r := range s {
		switch {
		case strings.ContainsRune("([{", r):
			depth++
		case strings.ContainsRune(")]}", r):
			if depth > 0 {
				depth--
			}
		case depth == 0 && strings.ContainsRune(seps, r):
			pieces = append(pieces, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}

	return append(pieces, strings.TrimSpace(s[start:]))
}
