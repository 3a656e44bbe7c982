package table

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/FocuswithJustin/babcal/core/errors"
	"github.com/FocuswithJustin/babcal/core/julian"
	"github.com/FocuswithJustin/babcal/core/newmoon"
)

func TestParseSemester_OpensYear(t *testing.T) {
	tokens := strings.Fields("1 626 4/5 5/4 6/3 7/2 8/1 8/30")

	res, err := ParseSemester(tokens, DefaultState(), 1, fixtureMoons())
	if err != nil {
		t.Fatalf("ParseSemester() error = %v", err)
	}
	if diff := cmp.Diff(want626[:6], res.Months); diff != "" {
		t.Errorf("months mismatch (-want +got):\n%s", diff)
	}
	wantState := State{Era: julian.BCE, Year: 626, LastJDN: 1493018}
	if res.State != wantState {
		t.Errorf("State = %+v, want %+v", res.State, wantState)
	}
	if res.NextIndex != 7 {
		t.Errorf("NextIndex = %d, want 7", res.NextIndex)
	}
}

func TestParseSemester_YearChange(t *testing.T) {
	tokens := strings.Fields("9/29 10/28 11/27 12/26 625 1/25 2/23")
	st := State{Era: julian.BCE, Year: 626, LastJDN: 1493018}

	res, err := ParseSemester(tokens, st, 7, fixtureMoons())
	if err != nil {
		t.Fatalf("ParseSemester() error = %v", err)
	}
	if diff := cmp.Diff(want626[6:], res.Months); diff != "" {
		t.Errorf("months mismatch (-want +got):\n%s", diff)
	}
	wantState := State{Era: julian.BCE, Year: 625, LastJDN: 1493195}
	if res.State != wantState {
		t.Errorf("State = %+v, want %+v", res.State, wantState)
	}
	if res.NextIndex != 13 {
		t.Errorf("NextIndex = %d, want 13", res.NextIndex)
	}
}

func TestParseSemester_YearLabelFirst(t *testing.T) {
	// The Julian year changes before the first month of the semester.
	start := julian.ToJDN(-623, 1, 2)
	moons := newmoon.NewTable([]float64{float64(start), float64(start + 30)})
	st := State{Era: julian.BCE, Year: 625, LastJDN: start - 29}

	res, err := ParseSemester([]string{"624", "1/2", "1/31"}, st, 7, moons)
	if err != nil {
		t.Fatalf("ParseSemester() error = %v", err)
	}
	if len(res.Months) != 2 {
		t.Fatalf("got %d months, want 2", len(res.Months))
	}
	if res.Months[0].MonthName != "Tashritu" || res.Months[1].MonthName != "Arahsamnu" {
		t.Errorf("names = %q, %q", res.Months[0].MonthName, res.Months[1].MonthName)
	}
	if res.Months[0].JulianYear != -623 {
		t.Errorf("JulianYear = %d, want -623", res.Months[0].JulianYear)
	}
	if res.State.Year != 624 {
		t.Errorf("State.Year = %d, want 624", res.State.Year)
	}
}

func TestParseSemester_NoYearLabel(t *testing.T) {
	tokens := strings.Fields("9/29 10/28")
	st := State{Era: julian.BCE, Year: 626, LastJDN: 1493018}

	res, err := ParseSemester(tokens, st, 7, fixtureMoons())
	if err != nil {
		t.Fatalf("ParseSemester() error = %v", err)
	}
	if diff := cmp.Diff(want626[6:8], res.Months); diff != "" {
		t.Errorf("months mismatch (-want +got):\n%s", diff)
	}
	if res.State.Year != 626 {
		t.Errorf("State.Year = %d, want 626", res.State.Year)
	}
}

func TestParseSemester_Empty(t *testing.T) {
	st := DefaultState()
	res, err := ParseSemester(nil, st, 7, fixtureMoons())
	if err != nil {
		t.Fatalf("ParseSemester() error = %v", err)
	}
	if len(res.Months) != 0 || res.State != st || res.NextIndex != 7 {
		t.Errorf("ParseSemester(nil) = %+v", res)
	}
}

func TestParseSemester_Errors(t *testing.T) {
	tests := []struct {
		name    string
		tokens  string
		st      State
		start   int
		wantErr error
	}{
		{
			name:    "year discontinuity",
			tokens:  "1 620 4/5",
			st:      DefaultState(),
			start:   1,
			wantErr: errors.ErrYearDiscontinuity,
		},
		{
			name:    "malformed year",
			tokens:  "1 6z6 4/5",
			st:      DefaultState(),
			start:   1,
			wantErr: errors.ErrYearFormat,
		},
		{
			name:    "malformed boundary year",
			tokens:  "9/29 10/28 11/27 12/26 x 1/25",
			st:      State{Era: julian.BCE, Year: 626, LastJDN: 1493018},
			start:   7,
			wantErr: errors.ErrYearFormat,
		},
		{
			name:    "second label after boundary",
			tokens:  "9/29 10/28 11/27 12/26 625 1/25 624",
			st:      State{Era: julian.BCE, Year: 626, LastJDN: 1493018},
			start:   7,
			wantErr: errors.ErrMonthFormat,
		},
		{
			name:    "month too long",
			tokens:  "1 626 4/5 5/8",
			st:      DefaultState(),
			start:   1,
			wantErr: errors.ErrMonthLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSemester(strings.Fields(tt.tokens), tt.st, tt.start, fixtureMoons())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseSemester_Overflow(t *testing.T) {
	// Eight months after the labels; the first semester has seven names.
	start := DefaultState().LastJDN
	var tokens []string
	var moons []float64
	tokens = append(tokens, "1", "626")
	jdn := start
	for i := 0; i < 8; i++ {
		jdn += 30
		y, m, d := julian.FromJDN(jdn)
		if y != -625 {
			t.Fatalf("fixture left the year: %d", y)
		}
		tokens = append(tokens, fmt.Sprintf("%d/%d", m, d))
		moons = append(moons, float64(jdn))
	}

	_, err := ParseSemester(tokens, DefaultState(), 1, newmoon.NewTable(moons))
	var soe *errors.SemesterOverflowError
	if !errors.As(err, &soe) {
		t.Fatalf("error = %v, want SemesterOverflowError", err)
	}
	if soe.Position != 7 || soe.Names != 7 {
		t.Errorf("SemesterOverflowError = %+v", soe)
	}
}

