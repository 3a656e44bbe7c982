package table

import (
	"github.com/FocuswithJustin/babcal/core/newmoon"
)

// Two consecutive years of the table starting from DefaultState. The second is
// intercalary (Ululu₂).
const (
	line626 = "1 626 4/5 5/4 6/3 7/2 8/1 8/30            9/29 10/28 11/27 12/26 625 1/25 2/23"
	line625 = "2 625 3/24 4/22 5/22 6/20 7/20 8/18 9/17  10/16 11/15 12/14 624 1/13 2/11 3/13"
)

// Month starts of line626 followed by line625.
var fixtureJDNs = []int{
	1492871, 1492900, 1492930, 1492959, 1492989, 1493018,
	1493048, 1493077, 1493107, 1493136, 1493166, 1493195,
	1493225, 1493254, 1493284, 1493313, 1493343, 1493372, 1493402,
	1493431, 1493461, 1493490, 1493520, 1493549, 1493579,
}

// fixtureMoons places a conjunction 1.5 days before every fixture month start.
func fixtureMoons() *newmoon.Table {
	values := make([]float64, len(fixtureJDNs))
	for i, j := range fixtureJDNs {
		values[i] = float64(j) - 1.5
	}
	return newmoon.NewTable(values)
}

func rec(jdn, year, month, day, number int, name string, days int) MonthRecord {
	return MonthRecord{
		JDN:         jdn,
		JulianYear:  year,
		JulianMonth: month,
		JulianDay:   day,
		MonthNumber: number,
		MonthName:   name,
		MonthDays:   days,
		NewMoon:     float64(jdn) - 1.5,
		Diff:        1.5,
	}
}

var want626 = []MonthRecord{
	rec(1492871, -625, 4, 5, 1, "Nisanu", 30),
	rec(1492900, -625, 5, 4, 2, "Aiaru", 29),
	rec(1492930, -625, 6, 3, 3, "Simanu", 30),
	rec(1492959, -625, 7, 2, 4, "Duzu", 29),
	rec(1492989, -625, 8, 1, 5, "Abu", 30),
	rec(1493018, -625, 8, 30, 6, "Ululu", 29),
	rec(1493048, -625, 9, 29, 7, "Tashritu", 30),
	rec(1493077, -625, 10, 28, 8, "Arahsamnu", 29),
	rec(1493107, -625, 11, 27, 9, "Kislimu", 30),
	rec(1493136, -625, 12, 26, 10, "Tebetu", 29),
	rec(1493166, -624, 1, 25, 11, "Shabatu", 30),
	rec(1493195, -624, 2, 23, 12, "Addaru", 29),
}

var want625 = []MonthRecord{
	rec(1493225, -624, 3, 24, 1, "Nisanu", 30),
	rec(1493254, -624, 4, 22, 2, "Aiaru", 29),
	rec(1493284, -624, 5, 22, 3, "Simanu", 30),
	rec(1493313, -624, 6, 20, 4, "Duzu", 29),
	rec(1493343, -624, 7, 20, 5, "Abu", 30),
	rec(1493372, -624, 8, 18, 6, "Ululu", 29),
	rec(1493402, -624, 9, 17, 7, "Ululu₂", 30),
	rec(1493431, -624, 10, 16, 8, "Tashritu", 29),
	rec(1493461, -624, 11, 15, 9, "Arahsamnu", 30),
	rec(1493490, -624, 12, 14, 10, "Kislimu", 29),
	rec(1493520, -623, 1, 13, 11, "Tebetu", 30),
	rec(1493549, -623, 2, 11, 12, "Shabatu", 29),
	rec(1493579, -623, 3, 13, 13, "Addaru", 30),
}
