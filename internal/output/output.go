// Package output writes month records in the supported formats.
package output

import (
	"context"
	"io"
	"strings"

	"github.com/FocuswithJustin/babcal/core/errors"
	"github.com/FocuswithJustin/babcal/core/table"
)

// Format names an output encoding.
type Format string

const (
	FormatTSV    Format = "tsv"
	FormatJSONL  Format = "jsonl"
	FormatSQLite Format = "sqlite"
)

// Formats lists every supported format.
var Formats = []Format{FormatTSV, FormatJSONL, FormatSQLite}

// ParseFormat returns the Format named by s, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.NewValidation("format", "unknown output format: "+s)
}

// Writer receives month records in table order.
type Writer interface {
	Write(table.MonthRecord) error
	Close() error
}

// RunRecorder is implemented by writers that keep a record of each run.
type RunRecorder interface {
	RecordRun(ctx context.Context, run Run) error
}

// New returns a Writer for f. Stream formats write to w; the sqlite format
// writes to the database file at database and ignores w.
func New(ctx context.Context, f Format, w io.Writer, database string) (Writer, error) {
	switch f {
	case FormatTSV, "":
		return NewTSV(w), nil
	case FormatJSONL:
		return NewJSONL(w), nil
	case FormatSQLite:
		if database == "" {
			return nil, errors.NewValidation("database", "sqlite output requires a database path")
		}
		return NewSQLite(ctx, database)
	default:
		return nil, errors.NewUnsupported("output format "+string(f), "not implemented")
	}
}
