package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/backend/internal/services/membership"
)

func TestParseMonth(t *testing.T) {
	year, month, err := ParseMonth("2025-01")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.January, month)

	_, _, err = ParseMonth("January 2025")
	assert.ErrorIs(t, err, membership.ErrInvalidDate)

	_, _, err = ParseMonth("2025-13")
	assert.ErrorIs(t, err, membership.ErrInvalidDate)
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2025, time.January)
	assert.Equal(t, date("2025-01-01"), start)
	assert.Equal(t, date("2025-01-31"), end)

	// Leap year February
	start, end = MonthRange(2024, time.February)
	assert.Equal(t, date("2024-02-01"), start)
	assert.Equal(t, date("2024-02-29"), end)

	start, end = MonthRange(2025, time.February)
	assert.Equal(t, date("2025-02-01"), start)
	assert.Equal(t, date("2025-02-28"), end)
}

func TestPrevMonth(t *testing.T) {
	year, month := PrevMonth(2025, time.March)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.February, month)

	// January rolls back into the previous year
	year, month = PrevMonth(2025, time.January)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.December, month)
}

func TestFormatMonth(t *testing.T) {
	assert.Equal(t, "2025-07", FormatMonth(2025, time.July))
}
