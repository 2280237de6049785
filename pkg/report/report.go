// Package report writes benchmark results as CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Header is the column layout downstream tooling parses by name.
var Header = []string{"case_type", "case_id", "n", "reps", "time_ns"}

// Row is one measured scenario.
type Row struct {
	CaseType string
	CaseID   int
	N        int
	Reps     int64
	TimeNs   int64
}

// Record renders the row as CSV fields in Header order.
func (r Row) Record() []string {
	return []string{
		r.CaseType,
		strconv.Itoa(r.CaseID),
		strconv.Itoa(r.N),
		strconv.FormatInt(r.Reps, 10),
		strconv.FormatInt(r.TimeNs, 10),
	}
}

// Writer emits the header followed by one line per row. Every line is
// flushed as soon as it is written so that rows already reported survive
// an abort later in the sweep.
type Writer struct {
	csv  *csv.Writer
	rows int
}

// NewWriter creates a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header line.
func (w *Writer) WriteHeader() error {
	return w.write(Header)
}

// WriteRow writes one data line.
func (w *Writer) WriteRow(r Row) error {
	if err := w.write(r.Record()); err != nil {
		return fmt.Errorf("write row %d: %w", r.CaseID, err)
	}
	w.rows++
	return nil
}

// Rows returns the number of data lines written.
func (w *Writer) Rows() int {
	return w.rows
}

func (w *Writer) write(record []string) error {
	if err := w.csv.Write(record); err != nil {
		return err
	}
	w.csv.Flush()
	return w.csv.Error()
}
