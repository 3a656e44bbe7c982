package table

import "github.com/FocuswithJustin/babcal/core/julian"

// Month names of the first semester. The last entry is the intercalary sixth month.
var FirstSemester = [7]string{"Nisanu", "Aiaru", "Simanu", "Duzu", "Abu", "Ululu", "Ululu₂"}

// Month names of the second semester. The last entry is the intercalary twelfth month.
var SecondSemester = [7]string{"Tashritu", "Arahsamnu", "Kislimu", "Tebetu", "Shabatu", "Addaru", "Addaru₂"}

// Header lists the output column names in record field order.
var Header = []string{
	"jdn", "julian_year", "julian_month", "julian_day",
	"month_number", "month_name", "month_days", "new_moon", "diff",
}

// MonthRecord is one Babylonian month aligned to the Julian calendar.
type MonthRecord struct {
	JDN         int     `json:"jdn"`
	JulianYear  int     `json:"julian_year"` // astronomical: 1 BCE is 0
	JulianMonth int     `json:"julian_month"`
	JulianDay   int     `json:"julian_day"`
	MonthNumber int     `json:"month_number"` // 1-13 within the Babylonian year
	MonthName   string  `json:"month_name"`
	MonthDays   int     `json:"month_days"` // days since the previous month start
	NewMoon     float64 `json:"new_moon"`
	Diff        float64 `json:"diff"` // JDN - NewMoon
}

// State is carried from one line to the next.
type State struct {
	Era     julian.Era
	Year    int // era-relative, always positive
	LastJDN int // first day of the most recent month
}

// DefaultState is the state before the first line of the published table:
// 626 BCE, with the last month of the preceding year starting on JDN 1492841.
func DefaultState() State {
	return State{Era: julian.BCE, Year: 626, LastJDN: 1492841}
}

// JulianYear returns the astronomical year of the state.
func (s State) JulianYear() int {
	return julian.Astronomical(s.Era, s.Year)
}
