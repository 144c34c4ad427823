package report

import (
	"github.com/google/uuid"

	"github.com/gymdesk/backend/internal/models"
)

// DashboardStats is the aggregate view shown on the dashboard for one month
type DashboardStats struct {
	TotalRevenue            float64 `json:"total_revenue"`
	ProjectedRevenue        float64 `json:"projected_revenue"`
	ActiveClients           int     `json:"active_clients"`
	NewClientsThisMonth     int     `json:"new_clients_this_month"`
	ChurnedClients          int     `json:"churned_clients"`
	RevenueGrowthPercentage float64 `json:"revenue_growth_percentage"`
	ClientGrowthPercentage  float64 `json:"client_growth_percentage"`
}

// DashboardInput carries the month-bounded rows a dashboard computation needs.
// Keeping the computation separate from the queries makes it testable with a
// fixed data set.
type DashboardInput struct {
	CurrentPayments  []models.Payment
	PreviousPayments []models.Payment
	ActiveClients    []models.Client // with Plan preloaded, for projection
	NewClients       int
	PrevNewClients   int
	LapsedClients    []models.Client // frozen/inactive with expiration before month start
	PaidClientIDs    map[uuid.UUID]struct{}
}

// MonthlyEquivalent normalizes a plan's price to a monthly recurring figure.
// Daily passes do not project to recurring revenue and count as zero; any
// non-canonical duration falls back to its daily rate times 30.
func MonthlyEquivalent(price float64, durationDays int) float64 {
	if durationDays <= 0 {
		return 0
	}
	switch durationDays {
	case 1:
		return 0
	case 7:
		return price * 4
	case 30:
		return price
	case 365:
		return price / 12
	default:
		return price / float64(durationDays) * 30
	}
}

// Growth returns the percentage change from previous to current. A first
// period with revenue after an empty one reads as 100%, not infinity; two
// empty periods read as zero.
func Growth(current, previous float64) float64 {
	if previous > 0 {
		return (current - previous) / previous * 100
	}
	if current > 0 {
		return 100
	}
	return 0
}

// SumAmounts totals the amounts of a set of payments
func SumAmounts(payments []models.Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

// ProjectedRevenue sums the monthly equivalent of every active client's plan.
// Clients without a plan contribute nothing.
func ProjectedRevenue(clients []models.Client) float64 {
	var total float64
	for _, c := range clients {
		if c.Plan == nil {
			continue
		}
		total += MonthlyEquivalent(c.Plan.Price, c.Plan.DurationDays)
	}
	return total
}

// CountChurned counts lapsed clients who made no payment during the month.
// A client who pays late but within the month is not churned, even if their
// membership was technically expired when the month began.
func CountChurned(lapsed []models.Client, paidClientIDs map[uuid.UUID]struct{}) int {
	count := 0
	for _, c := range lapsed {
		if _, paid := paidClientIDs[c.ID]; !paid {
			count++
		}
	}
	return count
}

// BuildDashboardStats assembles the dashboard figures from month-bounded rows
func BuildDashboardStats(in DashboardInput) *DashboardStats {
	currentRevenue := SumAmounts(in.CurrentPayments)
	previousRevenue := SumAmounts(in.PreviousPayments)

	return &DashboardStats{
		TotalRevenue:            currentRevenue,
		ProjectedRevenue:        ProjectedRevenue(in.ActiveClients),
		ActiveClients:           len(in.ActiveClients),
		NewClientsThisMonth:     in.NewClients,
		ChurnedClients:          CountChurned(in.LapsedClients, in.PaidClientIDs),
		RevenueGrowthPercentage: Growth(currentRevenue, previousRevenue),
		ClientGrowthPercentage:  Growth(float64(in.NewClients), float64(in.PrevNewClients)),
	}
}
