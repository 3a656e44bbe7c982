package table

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/babcal/core/errors"
)

// monthDay is a Julian month/day token such as "4/5".
type monthDay struct {
	Month int `parser:"@Int \"/\""`
	Day   int `parser:"@Int"`
}

var monthDayLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Slash", Pattern: `/`},
})

var monthDayParser = participle.MustBuild[monthDay](
	participle.Lexer(monthDayLexer),
)

func parseMonthDay(token string) (month, day int, err error) {
	md, err := monthDayParser.ParseString("", token)
	if err != nil {
		return 0, 0, &errors.MonthFormatError{Token: token, Err: err}
	}
	return md.Month, md.Day, nil
}

// isYearLabel reports whether a token is a year label rather than a month/day.
func isYearLabel(token string) bool {
	return !strings.Contains(token, "/")
}
