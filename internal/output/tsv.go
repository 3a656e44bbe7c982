package output

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/babcal/core/table"
)

// TSVWriter writes tab-separated rows. Strings are always double-quoted and
// numbers never are, so a reader can tell "12" the name from 12 the number.
type TSVWriter struct {
	w           *bufio.Writer
	wroteHeader bool
	row         []string
}

// NewTSV returns a TSVWriter on w. The header row is written before the first
// record, or on Close if there were none.
func NewTSV(w io.Writer) *TSVWriter {
	return &TSVWriter{w: bufio.NewWriter(w), row: make([]string, 0, len(table.Header))}
}

func (t *TSVWriter) header() error {
	if t.wroteHeader {
		return nil
	}
	t.wroteHeader = true
	t.row = t.row[:0]
	for _, h := range table.Header {
		t.row = append(t.row, quote(h))
	}
	return t.line()
}

// Write writes one record.
func (t *TSVWriter) Write(m table.MonthRecord) error {
	if err := t.header(); err != nil {
		return err
	}
	t.row = append(t.row[:0],
		strconv.Itoa(m.JDN),
		strconv.Itoa(m.JulianYear),
		strconv.Itoa(m.JulianMonth),
		strconv.Itoa(m.JulianDay),
		strconv.Itoa(m.MonthNumber),
		quote(m.MonthName),
		strconv.Itoa(m.MonthDays),
		FormatFloat(m.NewMoon),
		FormatFloat(m.Diff),
	)
	return t.line()
}

func (t *TSVWriter) line() error {
	if _, err := t.w.WriteString(strings.Join(t.row, "\t")); err != nil {
		return err
	}
	return t.w.WriteByte('\n')
}

// Close writes any pending header and flushes. It does not close the
// underlying writer.
func (t *TSVWriter) Close() error {
	if err := t.header(); err != nil {
		return err
	}
	return t.w.Flush()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// FormatFloat prints f in its shortest exact form, keeping a ".0" suffix on
// integral values.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
