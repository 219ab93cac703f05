package sampling

import "github.com/griddyn/griddyn/timing"

// TimeSeries is a table of sample rows indexed by trigger time.
type TimeSeries struct {
	times []timing.VTime
	rows  [][]float64
}

// Append adds a copy of row at time t.
func (s *TimeSeries) Append(t timing.VTime, row []float64) {
	r := make([]float64, len(row))
	copy(r, row)

	s.times = append(s.times, t)
	s.rows = append(s.rows, r)
}

// Len returns the number of rows.
func (s *TimeSeries) Len() int {
	return len(s.times)
}

// Time returns the time of the i-th row.
func (s *TimeSeries) Time(i int) timing.VTime {
	return s.times[i]
}

// Row returns the i-th row.
func (s *TimeSeries) Row(i int) []float64 {
	return s.rows[i]
}

// Since returns the rows from index i on. The returned series shares storage
// with s.
func (s *TimeSeries) Since(i int) *TimeSeries {
	return &TimeSeries{
		times: s.times[i:],
		rows:  s.rows[i:],
	}
}

// Reset drops all rows.
func (s *TimeSeries) Reset() {
	s.times = nil
	s.rows = nil
}
