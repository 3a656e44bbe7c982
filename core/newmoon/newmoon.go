// Package newmoon holds the reference table of conjunction-adjacent Julian Day Numbers
// and finds the entry nearest to a given day.
//
// A Table is immutable once built and safe for concurrent readers.
package newmoon

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/babcal/core/errors"
	"github.com/FocuswithJustin/babcal/internal/archive"
)

// MaxDiff is the largest accepted distance, in days, between a month start
// and the nearest reference new moon.
const MaxDiff = 5.0

// Table is a read-only set of reference new-moon JDNs.
type Table struct {
	jdns   []float64 // sorted ascending
	source string
}

// NewTable builds a table from values in any order. The slice is copied.
func NewTable(values []float64) *Table {
	jdns := make([]float64, len(values))
	copy(jdns, values)
	sort.Float64s(jdns)
	return &Table{jdns: jdns}
}

// Len returns the number of reference entries.
func (t *Table) Len() int {
	return len(t.jdns)
}

// Source returns where the table was loaded from, if known.
func (t *Table) Source() string {
	return t.source
}

// Range returns the first and last reference JDN. ok is false for an empty table.
func (t *Table) Range() (first, last float64, ok bool) {
	if len(t.jdns) == 0 {
		return 0, 0, false
	}
	return t.jdns[0], t.jdns[len(t.jdns)-1], true
}

// Nearest returns the reference entry closest to target and diff = target - nearest.
// Which of two equidistant entries is returned is unspecified.
func (t *Table) Nearest(target int) (diff, nearest float64, err error) {
	if len(t.jdns) == 0 {
		return 0, 0, &errors.NoReferenceDataError{Source: t.source}
	}

	x := float64(target)
	i := sort.SearchFloat64s(t.jdns, x)

	switch {
	case i == 0:
		nearest = t.jdns[0]
	case i == len(t.jdns):
		nearest = t.jdns[i-1]
	default:
		below, above := t.jdns[i-1], t.jdns[i]
		if math.Abs(x-below) <= math.Abs(above-x) {
			nearest = below
		} else {
			nearest = above
		}
	}

	return x - nearest, nearest, nil
}

// Load reads one JDN per line. Blank lines and lines containing '#' are skipped.
func Load(r io.Reader) (*Table, error) {
	var values []float64

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.Contains(line, "#") {
			continue
		}

		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, &errors.ParseError{
				Format:  "new moon table",
				Line:    lineNum,
				Message: fmt.Sprintf("not a number: %q", line),
				Err:     err,
			}
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIO("read", "new moon table", err)
	}

	return NewTable(values), nil
}

// LoadFile loads a table from path, which may be .gz or .xz compressed.
func LoadFile(path string) (*Table, error) {
	r, err := archive.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer r.Close()

	t, err := Load(r)
	if err != nil {
		var pe *errors.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	t.source = path
	return t, nil
}
