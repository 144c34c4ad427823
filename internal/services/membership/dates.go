package membership

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire format for all date-only values
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a date string cannot be parsed
var ErrInvalidDate = errors.New("invalid date")

// ErrPlanNotFound is returned when a referenced plan does not exist
var ErrPlanNotFound = errors.New("plan not found")

// ParseDate parses a YYYY-MM-DD string into a UTC date
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

// DateOf truncates a timestamp to its calendar date in UTC
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from one date to another.
// The result is negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}
