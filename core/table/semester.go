package table

import (
	"github.com/FocuswithJustin/babcal/core/errors"
	"github.com/FocuswithJustin/babcal/core/julian"
	"github.com/FocuswithJustin/babcal/core/newmoon"
)

// SemesterResult is the outcome of parsing one column of a line.
type SemesterResult struct {
	Months    []MonthRecord
	State     State
	NextIndex int // month number for the first month of the next semester
}

// ParseSemester parses the whitespace-separated tokens of one column.
//
// If neither of the first two tokens contains "/", they are the regnal year and the
// Julian year label and every following token is a first-semester month of that year.
// Otherwise the first token without "/" is the label of the next Julian year: months
// before it belong to the tracked year, months after it to the new one. Month names
// come from the second semester table by position, the label taking no position.
// Month numbers run on from start.
func ParseSemester(tokens []string, st State, start int, moons *newmoon.Table) (SemesterResult, error) {
	res := SemesterResult{State: st, NextIndex: start}
	if len(tokens) == 0 {
		return res, nil
	}

	if len(tokens) >= 2 && isYearLabel(tokens[0]) && isYearLabel(tokens[1]) {
		year, era, err := ConvertYear(tokens[1], st.Era, st.Year, true)
		if err != nil {
			return SemesterResult{}, err
		}
		res.State.Era, res.State.Year = era, year

		if err := res.appendMonths(tokens[2:], FirstSemester[:], 0, moons); err != nil {
			return SemesterResult{}, err
		}
		return res, nil
	}

	boundary := -1
	for i, tok := range tokens {
		if isYearLabel(tok) {
			boundary = i
			break
		}
	}

	if boundary < 0 {
		if err := res.appendMonths(tokens, SecondSemester[:], 0, moons); err != nil {
			return SemesterResult{}, err
		}
		return res, nil
	}

	year, era, err := ConvertYear(tokens[boundary], st.Era, st.Year, false)
	if err != nil {
		return SemesterResult{}, err
	}

	if err := res.appendMonths(tokens[:boundary], SecondSemester[:], 0, moons); err != nil {
		return SemesterResult{}, err
	}

	res.State.Era, res.State.Year = era, year
	if err := res.appendMonths(tokens[boundary+1:], SecondSemester[:], boundary, moons); err != nil {
		return SemesterResult{}, err
	}
	return res, nil
}

// appendMonths parses tokens as consecutive months of the result's current year,
// naming them from names starting at offset.
func (r *SemesterResult) appendMonths(tokens, names []string, offset int, moons *newmoon.Table) error {
	year := julian.Astronomical(r.State.Era, r.State.Year)

	for i, tok := range tokens {
		pos := offset + i
		if pos >= len(names) {
			return &errors.SemesterOverflowError{Position: pos, Names: len(names)}
		}

		m, err := ParseMonth(year, tok, names[pos], r.NextIndex, r.State.LastJDN, moons)
		if err != nil {
			return err
		}
		r.Months = append(r.Months, m)
		r.State.LastJDN = m.JDN
		r.NextIndex++
	}
	return nil
}
