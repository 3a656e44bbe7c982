// Package julian converts between proleptic Julian calendar dates and Julian Day Numbers.
//
// Years are astronomical unless stated otherwise: 1 BCE is year 0, 2 BCE is year -1.
// Era-relative years ("626 BCE") are converted with Astronomical and FromAstronomical.
package julian

import (
	"fmt"
	"strings"
)

// Era tags an era-relative year.
type Era int

const (
	// BCE counts years before the common era; year 1 BCE is astronomical year 0.
	BCE Era = iota
	// CE counts years of the common era.
	CE
)

// String returns "BCE" or "CE".
func (e Era) String() string {
	switch e {
	case BCE:
		return "BCE"
	case CE:
		return "CE"
	default:
		return fmt.Sprintf("Era(%d)", int(e))
	}
}

// ParseEra parses "BCE"/"BC" or "CE"/"AD", ignoring case.
func ParseEra(s string) (Era, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BCE", "BC":
		return BCE, nil
	case "CE", "AD":
		return CE, nil
	}
	return 0, fmt.Errorf("unknown era %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (e Era) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Era) UnmarshalText(text []byte) error {
	era, err := ParseEra(string(text))
	if err != nil {
		return err
	}
	*e = era
	return nil
}

// Astronomical converts an era-relative year to an astronomical year.
func Astronomical(era Era, year int) int {
	if era == BCE {
		return 1 - year
	}
	return year
}

// FromAstronomical converts an astronomical year to an era-relative year.
func FromAstronomical(year int) (Era, int) {
	if year <= 0 {
		return BCE, 1 - year
	}
	return CE, year
}

// ToJDN returns the Julian Day Number of a proleptic Julian calendar date.
// The day of month is not validated.
func ToJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	return day + (153*m+2)/5 + 365*y + y/4 - 32083
}

// FromJDN returns the proleptic Julian calendar date of a Julian Day Number.
func FromJDN(jdn int) (year, month, day int) {
	c := jdn + 32082
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153

	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = d - 4800 + m/10
	return year, month, day
}
