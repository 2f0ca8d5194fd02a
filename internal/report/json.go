package report

import (
	"encoding/json"
	"io"
)

// JSONWriter collects records and emits them as one JSON array on Flush.
type JSONWriter struct {
	w       io.Writer
	records []Record
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteHeader is a no-op; JSON output has no header line.
func (jw *JSONWriter) WriteHeader() error { return nil }

// Write queues a single record.
func (jw *JSONWriter) Write(rec *Record) error {
	jw.records = append(jw.records, *rec)
	return nil
}

// Flush encodes every queued record.
func (jw *JSONWriter) Flush() error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	if jw.records == nil {
		return enc.Encode([]Record{})
	}
	return enc.Encode(jw.records)
}

// Writer is the common shape of the output formatters.
type Writer interface {
	WriteHeader() error
	Write(rec *Record) error
	Flush() error
}
