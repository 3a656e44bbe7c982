package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/FocuswithJustin/babcal/core/table"
)

// JSONLWriter writes one JSON object per line.
type JSONLWriter struct {
	buf *bufio.Writer
	enc *json.Encoder
}

// NewJSONL returns a JSONLWriter on w.
func NewJSONL(w io.Writer) *JSONLWriter {
	buf := bufio.NewWriter(w)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	return &JSONLWriter{buf: buf, enc: enc}
}

// Write encodes one record.
func (j *JSONLWriter) Write(m table.MonthRecord) error {
	return j.enc.Encode(m)
}

// Close flushes buffered output.
func (j *JSONLWriter) Close() error {
	return j.buf.Flush()
}
