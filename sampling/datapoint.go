package sampling

import "math"

// Unassigned marks a DataPoint whose column will be resolved by the next
// layout pass.
const Unassigned = -1

// A DataPoint is one recorded quantity and its place in the sample buffer.
//
// Source is the reading source. Paired, when set, is a companion source that
// is retargeted and cloned together with Source but never read.
type DataPoint struct {
	Source Source
	Paired Source
	Column int
	Name   string

	width int
}

// Width is the number of columns the point occupied in the last layout pass
// or trigger.
func (p DataPoint) Width() int {
	return p.width
}

// IsVector tells if any of the bound sources produces a vector.
func (p DataPoint) IsVector() bool {
	return isVector(p.Source) || (p.Paired != nil && isVector(p.Paired))
}

func (p DataPoint) clone() DataPoint {
	c := p
	c.Source = p.Source.Clone()

	if p.Paired != nil {
		c.Paired = p.Paired.Clone()
	}

	return c
}

// measure reads the current width of the point without writing anywhere.
func (p *DataPoint) measure(scratch []float64) []float64 {
	if vr, ok := p.Source.(VectorReader); ok {
		scratch = vr.ReadVector(scratch[:0])
		p.width = len(scratch)

		return scratch
	}

	p.width = 1

	return scratch
}

// sample writes the current reading into buf starting at the point's
// column. Values that fall outside of buf are dropped.
func (p *DataPoint) sample(buf, scratch []float64) []float64 {
	if p.Column < 0 {
		return scratch
	}

	switch s := p.Source.(type) {
	case VectorReader:
		scratch = s.ReadVector(scratch[:0])
		p.width = len(scratch)

		if p.Column < len(buf) {
			copy(buf[p.Column:], scratch)
		}
	case ScalarReader:
		p.width = 1

		if p.Column < len(buf) {
			buf[p.Column] = s.ReadScalar()
		}
	default:
		p.width = 1

		if p.Column < len(buf) {
			buf[p.Column] = math.NaN()
		}
	}

	return scratch
}
