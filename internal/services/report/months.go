package report

import (
	"fmt"
	"time"

	"github.com/gymdesk/backend/internal/services/membership"
)

// MonthLayout is the wire format for month parameters
const MonthLayout = "2006-01"

// ParseMonth parses a YYYY-MM string into a calendar year and month
func ParseMonth(value string) (int, time.Month, error) {
	t, err := time.ParseInLocation(MonthLayout, value, time.UTC)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", membership.ErrInvalidDate, value)
	}
	return t.Year(), t.Month(), nil
}

// FormatMonth renders a year and month as YYYY-MM
func FormatMonth(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format(MonthLayout)
}

// MonthRange returns the closed [first day, last day] interval of a calendar
// month. Reports aggregate over calendar months, never rolling 30-day windows.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// PrevMonth returns the calendar month preceding the given one
func PrevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return t.Year(), t.Month()
}
