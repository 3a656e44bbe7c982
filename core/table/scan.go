package table

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/FocuswithJustin/babcal/core/errors"
	"github.com/FocuswithJustin/babcal/core/newmoon"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// ScanResult summarizes a completed or aborted scan.
type ScanResult struct {
	State    State // state after the last successfully parsed line
	Lines    int
	Headings int
	Months   int
}

// Scanner folds ParseLine over a stream of lines.
type Scanner struct {
	Moons *newmoon.Table

	// OnHeading, if set, is called for every skipped non-blank line.
	OnHeading func(lineNum int, text string)
}

// Scan parses r line by line starting from st and hands each month to emit in order.
// It stops at the first error; parse failures are returned as *errors.LineError.
func (s *Scanner) Scan(ctx context.Context, r io.Reader, st State, emit func(MonthRecord) error) (ScanResult, error) {
	res := ScanResult{State: st}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Lines++
		raw := scanner.Text()

		lr, err := ParseLine(raw, res.State, s.Moons)
		if err != nil {
			return res, &errors.LineError{Number: res.Lines, Text: strings.TrimSpace(raw), Err: err}
		}
		if lr.Skipped {
			if text := strings.TrimSpace(raw); text != "" {
				res.Headings++
				if s.OnHeading != nil {
					s.OnHeading(res.Lines, text)
				}
			}
			continue
		}

		for _, m := range lr.Months {
			if err := emit(m); err != nil {
				return res, fmt.Errorf("emit month %d: %w", m.JDN, err)
			}
			res.Months++
		}
		res.State = lr.State
	}

	if err := scanner.Err(); err != nil {
		return res, errors.NewIO("read", "table", err)
	}
	return res, nil
}
