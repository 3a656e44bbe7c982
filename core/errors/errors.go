// Package errors provides the error taxonomy for table parsing and its supporting I/O.
//
// Every parse failure is fatal. Each error type unwraps to a sentinel so callers
// can classify failures with errors.Is.
package errors

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for table parsing
var (
	// ErrMonthFormat indicates a month/day token that is not two integers
	ErrMonthFormat = errors.New("malformed month/day")
	// ErrMonthLength indicates a month length outside 28-31 days
	ErrMonthLength = errors.New("implausible month length")
	// ErrYearFormat indicates a year label that is not an integer
	ErrYearFormat = errors.New("malformed year")
	// ErrYearDiscontinuity indicates a year that does not follow the tracked year
	ErrYearDiscontinuity = errors.New("year discontinuity")
	// ErrNewMoonTolerance indicates a month start too far from any reference new moon
	ErrNewMoonTolerance = errors.New("new moon out of tolerance")
	// ErrNoReferenceData indicates an empty new-moon reference table
	ErrNoReferenceData = errors.New("no reference data")
	// ErrSemesterOverflow indicates more months in a semester than month names
	ErrSemesterOverflow = errors.New("too many months in semester")
)

// Sentinel errors for supporting infrastructure
var (
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported indicates an unsupported operation or format
	ErrUnsupported = errors.New("unsupported")
)

// MonthFormatError reports a month/day token that could not be parsed.
type MonthFormatError struct {
	Token string
	Err   error // Underlying error, if any
}

func (e *MonthFormatError) Error() string {
	return fmt.Sprintf("could not convert month to numeric month and day: %q", e.Token)
}

func (e *MonthFormatError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMonthFormat, e.Err}
	}
	return []error{ErrMonthFormat}
}

// MonthLengthError reports a gap between consecutive month starts outside 28-31 days.
type MonthLengthError struct {
	Days    int // Computed delta
	LastJDN int
	JDN     int
	Year    int // Astronomical year of the offending date
	Month   int
	Day     int
}

func (e *MonthLengthError) Error() string {
	return fmt.Sprintf("too many days (%d) between %d and %d (%d-%d-%d)",
		e.Days, e.LastJDN, e.JDN, e.Year, e.Month, e.Day)
}

func (e *MonthLengthError) Unwrap() error { return ErrMonthLength }

// YearFormatError reports a year label that is not an integer.
type YearFormatError struct {
	Label string
	Err   error
}

func (e *YearFormatError) Error() string {
	return fmt.Sprintf("could not convert year %q to numeric year", e.Label)
}

func (e *YearFormatError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrYearFormat, e.Err}
	}
	return []error{ErrYearFormat}
}

// YearDiscontinuityError reports a year that is neither the tracked year nor,
// where allowed, the one after it. Years are astronomical.
type YearDiscontinuityError struct {
	Got       int
	Want      int
	AllowNext bool // Whether Want+1 was also acceptable
}

func (e *YearDiscontinuityError) Error() string {
	if e.AllowNext {
		return fmt.Sprintf("unexpected year: %d. It should be %d or %d", e.Got, e.Want, e.Want+1)
	}
	return fmt.Sprintf("unexpected year: %d. It should be %d", e.Got, e.Want)
}

func (e *YearDiscontinuityError) Unwrap() error { return ErrYearDiscontinuity }

// NewMoonToleranceError reports a month start too far from the nearest reference new moon.
type NewMoonToleranceError struct {
	JDN     int
	Nearest float64
	Diff    float64
	Max     float64
}

func (e *NewMoonToleranceError) Error() string {
	return fmt.Sprintf("difference (%s) too great between visible new moon (%d) and nearest conjunction (%s)",
		ftoa(e.Diff), e.JDN, ftoa(e.Nearest))
}

func (e *NewMoonToleranceError) Unwrap() error { return ErrNewMoonTolerance }

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// NoReferenceDataError reports a lookup against an empty new-moon table.
type NoReferenceDataError struct {
	Source string // Table origin, if known
}

func (e *NoReferenceDataError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("new moon table %s is empty", e.Source)
	}
	return "new moon table is empty"
}

func (e *NoReferenceDataError) Unwrap() error { return ErrNoReferenceData }

// SemesterOverflowError reports more month tokens than the semester has names for.
type SemesterOverflowError struct {
	Position int // Zero-based position within the name table
	Names    int
}

func (e *SemesterOverflowError) Error() string {
	return fmt.Sprintf("month at position %d exceeds the %d month names of the semester", e.Position+1, e.Names)
}

func (e *SemesterOverflowError) Unwrap() error { return ErrSemesterOverflow }

// LineError attaches the offending input line to a parse failure.
type LineError struct {
	Number int    // 1-based line number
	Text   string // Raw line text
	Err    error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Number, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string // Field name that failed validation
	Value   string // Value that failed validation (may be redacted)
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error in a supporting file (reference table, config)
type ParseError struct {
	Format  string // Format being parsed (e.g., "new moon table", "config")
	Path    string // File path, if applicable
	Line    int    // 1-based line number, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	where := e.Path
	if e.Line > 0 {
		if where != "" {
			where = fmt.Sprintf("%s:%d", where, e.Line)
		} else {
			where = fmt.Sprintf("line %d", e.Line)
		}
	}
	if where != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, where, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// UnsupportedError represents an unsupported feature or format
type UnsupportedError struct {
	Feature string // Feature or format that is unsupported
	Reason  string // Why it's not supported
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// NewValidation creates a ValidationError
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{
		Feature: feature,
		Reason:  reason,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
