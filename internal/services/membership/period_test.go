package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputePeriodFreshStart(t *testing.T) {
	p := ComputePeriod(date("2025-01-01"), 30, nil)

	assert.Equal(t, date("2025-01-01"), p.Start)
	assert.Equal(t, date("2025-01-30"), p.End)
	assert.Equal(t, 30, p.Days())
}

func TestComputePeriodCoversExactlyDurationDays(t *testing.T) {
	for _, duration := range []int{1, 7, 14, 30, 90, 180, 365} {
		p := ComputePeriod(date("2025-03-15"), duration, nil)
		assert.Equal(t, duration, p.Days(), "duration %d", duration)
	}
}

func TestComputePeriodStacksOnRenewalBeforeExpiry(t *testing.T) {
	expiration := date("2025-01-31")

	// Paying on the 15th, two weeks before expiry, must not waste paid days:
	// the new period starts the day after the current expiration.
	p := ComputePeriod(date("2025-01-15"), 30, &expiration)

	assert.Equal(t, date("2025-02-01"), p.Start)
	assert.Equal(t, date("2025-03-02"), p.End)
}

func TestComputePeriodStacksWhenPayingOnExpirationDay(t *testing.T) {
	expiration := date("2025-01-31")

	p := ComputePeriod(date("2025-01-31"), 30, &expiration)

	assert.Equal(t, date("2025-02-01"), p.Start)
}

func TestComputePeriodRestartsAfterLapse(t *testing.T) {
	expiration := date("2024-12-01")

	p := ComputePeriod(date("2025-01-10"), 7, &expiration)

	assert.Equal(t, date("2025-01-10"), p.Start)
	assert.Equal(t, date("2025-01-16"), p.End)
}

func TestComputePeriodIgnoresTimeComponent(t *testing.T) {
	paidAt := time.Date(2025, 6, 10, 23, 45, 12, 0, time.UTC)

	p := ComputePeriod(paidAt, 1, nil)

	assert.Equal(t, date("2025-06-10"), p.Start)
	assert.Equal(t, date("2025-06-10"), p.End)
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, date("2025-02-28"), parsed)

	_, err = ParseDate("28/02/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 0, DaysBetween(date("2025-01-01"), date("2025-01-01")))
	assert.Equal(t, 31, DaysBetween(date("2025-01-01"), date("2025-02-01")))
	assert.Equal(t, -1, DaysBetween(date("2025-01-02"), date("2025-01-01")))
	// Leap day
	assert.Equal(t, 2, DaysBetween(date("2024-02-28"), date("2024-03-01")))
}
