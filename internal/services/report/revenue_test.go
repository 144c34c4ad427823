package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/backend/internal/models"
)

func paymentOn(day string, amount float64, method models.PaymentMethod, planName string) models.Payment {
	return models.Payment{
		Amount:      amount,
		Method:      method,
		PaymentDate: date(day),
		Plan:        models.Plan{Name: planName},
	}
}

func TestBuildRevenueReport(t *testing.T) {
	payments := []models.Payment{
		paymentOn("2025-01-05", 500, models.PaymentMethodCash, "Monthly"),
		paymentOn("2025-01-05", 150, models.PaymentMethodTransfer, "Weekly"),
		paymentOn("2025-01-20", 500, models.PaymentMethodCash, "Monthly"),
	}

	r := BuildRevenueReport(payments)

	assert.InDelta(t, 1150.0, r.TotalRevenue, 0.001)
	assert.Equal(t, 3, r.TotalPayments)
	assert.InDelta(t, 1000.0, r.RevenueByMethod.Cash, 0.001)
	assert.InDelta(t, 150.0, r.RevenueByMethod.Transfer, 0.001)

	require.Len(t, r.RevenueByPlan, 2)
	assert.Equal(t, "Monthly", r.RevenueByPlan[0].PlanName)
	assert.InDelta(t, 1000.0, r.RevenueByPlan[0].TotalRevenue, 0.001)
	assert.Equal(t, 2, r.RevenueByPlan[0].PaymentCount)
	assert.Equal(t, "Weekly", r.RevenueByPlan[1].PlanName)

	require.Len(t, r.DailyRevenue, 2)
	assert.Equal(t, "2025-01-05", r.DailyRevenue[0].Date)
	assert.InDelta(t, 650.0, r.DailyRevenue[0].Revenue, 0.001)
}

func TestBuildRevenueReportEmptyMonth(t *testing.T) {
	r := BuildRevenueReport(nil)

	assert.Equal(t, 0.0, r.TotalRevenue)
	assert.Equal(t, 0, r.TotalPayments)
	assert.NotNil(t, r.RevenueByPlan)
	assert.NotNil(t, r.DailyRevenue)
}

func TestFillDailyRevenueCoversWholeMonth(t *testing.T) {
	payments := []models.Payment{
		paymentOn("2025-02-10", 500, models.PaymentMethodCash, "Monthly"),
	}

	points := FillDailyRevenue(2025, time.February, payments)

	require.Len(t, points, 28)
	assert.Equal(t, "2025-02-01", points[0].Date)
	assert.Equal(t, "2025-02-28", points[27].Date)
	assert.InDelta(t, 500.0, points[9].Revenue, 0.001)
	assert.Equal(t, 1, points[9].PaymentCount)
	assert.Equal(t, 0.0, points[0].Revenue)
}
