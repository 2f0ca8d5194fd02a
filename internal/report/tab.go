package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TabWriter writes records in tab-delimited format.
type TabWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTabWriter creates a new tab-delimited writer.
func NewTabWriter(w io.Writer) *TabWriter {
	return &TabWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Position",
			"Segment",
			"Strand1",
			"Strand2",
			"Type",
			"HBonds",
			"Swapped",
			"Flags",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TabWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single record.
func (tw *TabWriter) Write(rec *Record) error {
	hbonds := rec.HBonds
	if hbonds == "" {
		hbonds = "-"
	}

	swapped := "-"
	if rec.Swapped {
		swapped = "YES"
	}

	flags := segmentFlags(rec)

	values := []string{
		fmt.Sprintf("%d", rec.Position),
		fmt.Sprintf("%d", rec.Segment),
		rec.Strand1,
		rec.Strand2,
		rec.Type,
		hbonds,
		swapped,
		flags,
	}
	_, err := tw.w.WriteString(strings.Join(values, "\t") + "\n")
	return err
}

func segmentFlags(rec *Record) string {
	var flags []string
	if rec.Parallel {
		flags = append(flags, "parallel")
	}
	if rec.Break {
		flags = append(flags, "break")
	}
	if rec.Mixed {
		flags = append(flags, "mixed")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}

// Flush flushes any buffered data to the underlying writer.
func (tw *TabWriter) Flush() error {
	return tw.w.Flush()
}
