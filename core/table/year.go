package table

import (
	"strconv"

	"github.com/FocuswithJustin/babcal/core/errors"
	"github.com/FocuswithJustin/babcal/core/julian"
)

// ConvertYear resolves a year label against the tracked era and year.
//
// Labels count years in the tracked era. Within a semester (sameSemester) the label must
// name the tracked year. At a year change inside a semester it may name the tracked year
// or the following one. The one label that changes era is "1" at a year change while the
// tracked year is 1 BCE: it names 1 CE.
func ConvertYear(label string, era julian.Era, year int, sameSemester bool) (int, julian.Era, error) {
	current := julian.Astronomical(era, year)

	if era == julian.BCE && !sameSemester && current == 0 && label == "1" {
		return 1, julian.CE, nil
	}

	n, err := strconv.Atoi(label)
	if err != nil {
		return 0, era, &errors.YearFormatError{Label: label, Err: err}
	}
	if n < 1 {
		return 0, era, &errors.YearFormatError{Label: label}
	}

	if _, err := CheckYear(julian.Astronomical(era, n), current, sameSemester); err != nil {
		return 0, era, err
	}
	return n, era, nil
}

// CheckYear validates an astronomical year against the tracked astronomical year.
func CheckYear(got, current int, sameSemester bool) (int, error) {
	if got == current {
		return got, nil
	}
	if !sameSemester && got == current+1 {
		return got, nil
	}
	return 0, &errors.YearDiscontinuityError{Got: got, Want: current, AllowNext: !sameSemester}
}
