package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for due dates.
const DateLayout = "2006-01-02"

// ParseDate converts a date string to a time.Time truncated to the day.
// The string must be a calendar date in YYYY-MM-DD form; a trailing time
// component after 'T' is tolerated and discarded. Invalid input returns
// an error wrapping ErrValidation.
func ParseDate(s string) (time.Time, error) {
	datePart, _, _ := strings.Cut(s, "T")
	t, err := time.Parse(DateLayout, datePart)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected format: YYYY-MM-DD", ErrValidation, s)
	}
	return t, nil
}

// ValidDate reports whether s would be accepted by ParseDate.
// Exposed so front ends can pre-validate input before mutating anything.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// NormalizeDate resolves a date string to its canonical YYYY-MM-DD form.
func NormalizeDate(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}
