package membership

import (
	"time"
)

// Period is the inclusive coverage interval a single payment purchases
type Period struct {
	Start time.Time `json:"period_start"`
	End   time.Time `json:"period_end"`
}

// Days returns the number of days the period covers, endpoints inclusive
func (p Period) Days() int {
	return DaysBetween(p.Start, p.End) + 1
}

// ComputePeriod calculates the coverage interval for a payment.
//
// A renewal made while the membership is still active starts the day after the
// current expiration, so paid days are never wasted. A first payment or a
// renewal after the membership has lapsed starts on the payment date itself.
// The end date is inclusive: a 30-day plan bought on day 1 covers days 1-30.
func ComputePeriod(paymentDate time.Time, durationDays int, priorExpiration *time.Time) Period {
	start := DateOf(paymentDate)
	if priorExpiration != nil {
		expiration := DateOf(*priorExpiration)
		if !expiration.Before(start) {
			start = expiration.AddDate(0, 0, 1)
		}
	}
	return Period{
		Start: start,
		End:   start.AddDate(0, 0, durationDays-1),
	}
}
