package cmd

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/griddyn/griddyn/sampling"
	"github.com/griddyn/griddyn/timing"
)

// csvSink writes recorded rows as CSV. The header is written once, with the
// columns of the first write.
type csvSink struct {
	file   *os.File
	w      *csv.Writer
	header bool
}

// newCSVSink writes to path, or to out if path is empty. An existing file is
// overwritten.
func newCSVSink(path string, out io.Writer) (*csvSink, error) {
	s := &csvSink{}

	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return nil, err
		}

		s.file = file
		out = file
	}

	s.w = csv.NewWriter(out)

	return s, nil
}

func (s *csvSink) Write(
	_ string,
	columns []string,
	rows *sampling.TimeSeries,
) error {
	if !s.header {
		s.header = true

		if err := s.w.Write(append([]string{"time"}, columns...)); err != nil {
			return err
		}
	}

	for i := 0; i < rows.Len(); i++ {
		if err := s.w.Write(formatRow(rows.Time(i), rows.Row(i))); err != nil {
			return err
		}
	}

	s.w.Flush()

	return s.w.Error()
}

func formatRow(t timing.VTime, values []float64) []string {
	record := make([]string, 0, len(values)+1)
	record = append(record, strconv.FormatFloat(t.Sec(), 'f', -1, 64))

	for _, v := range values {
		record = append(record, strconv.FormatFloat(v, 'g', 8, 64))
	}

	return record
}

// Close flushes and closes the file, if any.
func (s *csvSink) Close() error {
	s.w.Flush()

	if s.file == nil {
		return s.w.Error()
	}

	return s.file.Close()
}
