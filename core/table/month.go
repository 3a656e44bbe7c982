package table

import (
	"math"

	"github.com/FocuswithJustin/babcal/core/errors"
	"github.com/FocuswithJustin/babcal/core/julian"
	"github.com/FocuswithJustin/babcal/core/newmoon"
)

// Plausible lunar month lengths, in days.
const (
	MinMonthDays = 28
	MaxMonthDays = 31
)

// ParseMonth turns a "M/D" token of the given astronomical year into a month record.
// The month must start 28 to 31 days after lastJDN and within newmoon.MaxDiff days
// of a reference new moon.
func ParseMonth(julianYear int, token, name string, index, lastJDN int, moons *newmoon.Table) (MonthRecord, error) {
	month, day, err := parseMonthDay(token)
	if err != nil {
		return MonthRecord{}, err
	}

	jdn := julian.ToJDN(julianYear, month, day)

	delta := jdn - lastJDN
	if delta < MinMonthDays || delta > MaxMonthDays {
		return MonthRecord{}, &errors.MonthLengthError{
			Days:    delta,
			LastJDN: lastJDN,
			JDN:     jdn,
			Year:    julianYear,
			Month:   month,
			Day:     day,
		}
	}

	diff, nearest, err := moons.Nearest(jdn)
	if err != nil {
		return MonthRecord{}, err
	}
	if math.Abs(diff) > newmoon.MaxDiff {
		return MonthRecord{}, &errors.NewMoonToleranceError{
			JDN:     jdn,
			Nearest: nearest,
			Diff:    diff,
			Max:     newmoon.MaxDiff,
		}
	}

	return MonthRecord{
		JDN:         jdn,
		JulianYear:  julianYear,
		JulianMonth: month,
		JulianDay:   day,
		MonthNumber: index,
		MonthName:   name,
		MonthDays:   delta,
		NewMoon:     nearest,
		Diff:        diff,
	}, nil
}
