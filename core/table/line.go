package table

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/FocuswithJustin/babcal/core/newmoon"
)

// SecondColumn is the character offset at which the second semester starts.
const SecondColumn = 42

// LineResult is the outcome of parsing one input line.
type LineResult struct {
	Months  []MonthRecord
	State   State
	Skipped bool // heading or blank line; State is unchanged
}

// ParseLine parses one line of the table. Lines that are blank or do not start with a
// digit are headings (a king's name) and are skipped without changing state.
func ParseLine(raw string, st State, moons *newmoon.Table) (LineResult, error) {
	line := strings.TrimSpace(raw)
	if !isDataLine(line) {
		return LineResult{State: st, Skipped: true}, nil
	}

	first, second := SplitColumns(line)

	s1, err := ParseSemester(strings.Fields(first), st, 1, moons)
	if err != nil {
		return LineResult{State: st}, err
	}
	s2, err := ParseSemester(strings.Fields(second), s1.State, s1.NextIndex, moons)
	if err != nil {
		return LineResult{State: st}, err
	}

	months := make([]MonthRecord, 0, len(s1.Months)+len(s2.Months))
	months = append(months, s1.Months...)
	months = append(months, s2.Months...)

	return LineResult{Months: months, State: s2.State}, nil
}

// SplitColumns splits a trimmed line at SecondColumn characters.
func SplitColumns(line string) (first, second string) {
	if utf8.RuneCountInString(line) <= SecondColumn {
		return line, ""
	}
	runes := []rune(line)
	return string(runes[:SecondColumn]), string(runes[SecondColumn:])
}

func isDataLine(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return line != "" && unicode.IsNumber(r)
}
