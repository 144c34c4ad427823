package report

import (
	"sort"
	"time"

	"github.com/gymdesk/backend/internal/models"
	"github.com/gymdesk/backend/internal/services/membership"
)

// PlanRevenue is the revenue collected for one plan within a month
type PlanRevenue struct {
	PlanName     string  `json:"plan_name"`
	TotalRevenue float64 `json:"total_revenue"`
	PaymentCount int     `json:"payment_count"`
}

// DailyRevenuePoint is one day of a month's revenue trend
type DailyRevenuePoint struct {
	Date         string  `json:"date"`
	Revenue      float64 `json:"revenue"`
	PaymentCount int     `json:"payment_count"`
}

// RevenueReport is the monthly revenue breakdown
type RevenueReport struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalPayments   int     `json:"total_payments"`
	RevenueByMethod struct {
		Cash     float64 `json:"cash"`
		Transfer float64 `json:"transfer"`
	} `json:"revenue_by_method"`
	RevenueByPlan []PlanRevenue       `json:"revenue_by_plan"`
	DailyRevenue  []DailyRevenuePoint `json:"daily_revenue"`
}

// BuildRevenueReport aggregates a month's payments into the revenue breakdown.
// Payments must have their Plan preloaded.
func BuildRevenueReport(payments []models.Payment) *RevenueReport {
	r := &RevenueReport{
		TotalRevenue:  SumAmounts(payments),
		TotalPayments: len(payments),
		RevenueByPlan: []PlanRevenue{},
		DailyRevenue:  []DailyRevenuePoint{},
	}

	byPlan := make(map[string]*PlanRevenue)
	byDay := make(map[string]*DailyRevenuePoint)
	for _, p := range payments {
		switch p.Method {
		case models.PaymentMethodCash:
			r.RevenueByMethod.Cash += p.Amount
		case models.PaymentMethodTransfer:
			r.RevenueByMethod.Transfer += p.Amount
		}

		planName := p.Plan.Name
		if planName == "" {
			planName = "Unknown"
		}
		pr, ok := byPlan[planName]
		if !ok {
			pr = &PlanRevenue{PlanName: planName}
			byPlan[planName] = pr
		}
		pr.TotalRevenue += p.Amount
		pr.PaymentCount++

		day := p.PaymentDate.Format(membership.DateLayout)
		dp, ok := byDay[day]
		if !ok {
			dp = &DailyRevenuePoint{Date: day}
			byDay[day] = dp
		}
		dp.Revenue += p.Amount
		dp.PaymentCount++
	}

	for _, pr := range byPlan {
		r.RevenueByPlan = append(r.RevenueByPlan, *pr)
	}
	sort.Slice(r.RevenueByPlan, func(i, j int) bool {
		return r.RevenueByPlan[i].TotalRevenue > r.RevenueByPlan[j].TotalRevenue
	})

	for _, dp := range byDay {
		r.DailyRevenue = append(r.DailyRevenue, *dp)
	}
	sort.Slice(r.DailyRevenue, func(i, j int) bool {
		return r.DailyRevenue[i].Date < r.DailyRevenue[j].Date
	})

	return r
}

// FillDailyRevenue produces one point per calendar day of the month, with
// zero revenue for days without payments, for charting.
func FillDailyRevenue(year int, month time.Month, payments []models.Payment) []DailyRevenuePoint {
	totals := make(map[string]*DailyRevenuePoint)
	for _, p := range payments {
		day := p.PaymentDate.Format(membership.DateLayout)
		dp, ok := totals[day]
		if !ok {
			dp = &DailyRevenuePoint{Date: day}
			totals[day] = dp
		}
		dp.Revenue += p.Amount
		dp.PaymentCount++
	}

	start, end := MonthRange(year, month)
	points := make([]DailyRevenuePoint, 0, end.Day())
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := d.Format(membership.DateLayout)
		if dp, ok := totals[day]; ok {
			points = append(points, *dp)
		} else {
			points = append(points, DailyRevenuePoint{Date: day})
		}
	}
	return points
}
