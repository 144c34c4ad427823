package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gymdesk/backend/internal/models"
	"github.com/gymdesk/backend/internal/services/membership"
)

func date(value string) time.Time {
	t, err := time.ParseInLocation(membership.DateLayout, value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestMonthlyEquivalent(t *testing.T) {
	tests := []struct {
		price    float64
		duration int
		want     float64
	}{
		{500, 30, 500},  // monthly plan passes through
		{150, 7, 600},   // weekly times four
		{4800, 365, 400}, // annual divided by twelve
		{50, 1, 0},      // daily passes are not recurring
		{1350, 90, 450}, // non-canonical falls back to daily rate times 30
		{100, 0, 0},
		{100, -5, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, MonthlyEquivalent(tt.price, tt.duration), 0.001,
			"price %.2f duration %d", tt.price, tt.duration)
	}
}

func TestGrowth(t *testing.T) {
	assert.Equal(t, 0.0, Growth(0, 0))
	assert.Equal(t, 100.0, Growth(100, 0))
	assert.Equal(t, 50.0, Growth(150, 100))
	assert.Equal(t, -50.0, Growth(50, 100))
	assert.Equal(t, 0.0, Growth(100, 100))
}

func TestProjectedRevenueSkipsClientsWithoutPlan(t *testing.T) {
	monthly := &models.Plan{Name: "Monthly", DurationDays: 30, Price: 500}
	weekly := &models.Plan{Name: "Weekly", DurationDays: 7, Price: 150}

	clients := []models.Client{
		{Status: models.ClientStatusActive, Plan: monthly},
		{Status: models.ClientStatusActive, Plan: weekly},
		{Status: models.ClientStatusActive}, // never assigned a plan
	}

	assert.InDelta(t, 1100.0, ProjectedRevenue(clients), 0.001)
}

func TestCountChurned(t *testing.T) {
	gone := models.Client{Base: models.Base{ID: uuid.New()}}
	cameBack := models.Client{Base: models.Base{ID: uuid.New()}}
	expired := date("2025-01-05")
	gone.ExpirationDate = &expired
	cameBack.ExpirationDate = &expired

	paid := map[uuid.UUID]struct{}{cameBack.ID: {}}

	// Both lapsed before the month, but one paid during it and is retained.
	assert.Equal(t, 1, CountChurned([]models.Client{gone, cameBack}, paid))
	assert.Equal(t, 2, CountChurned([]models.Client{gone, cameBack}, nil))
	assert.Equal(t, 0, CountChurned(nil, paid))
}

func TestBuildDashboardStats(t *testing.T) {
	monthly := &models.Plan{Name: "Monthly", DurationDays: 30, Price: 500}
	churnedID := uuid.New()

	stats := BuildDashboardStats(DashboardInput{
		CurrentPayments: []models.Payment{
			{Amount: 500},
			{Amount: 150},
		},
		PreviousPayments: []models.Payment{
			{Amount: 500},
		},
		ActiveClients: []models.Client{
			{Status: models.ClientStatusActive, Plan: monthly},
			{Status: models.ClientStatusActive, Plan: monthly},
		},
		NewClients:     3,
		PrevNewClients: 2,
		LapsedClients:  []models.Client{{Base: models.Base{ID: churnedID}}},
		PaidClientIDs:  map[uuid.UUID]struct{}{},
	})

	assert.InDelta(t, 650.0, stats.TotalRevenue, 0.001)
	assert.InDelta(t, 1000.0, stats.ProjectedRevenue, 0.001)
	assert.Equal(t, 2, stats.ActiveClients)
	assert.Equal(t, 3, stats.NewClientsThisMonth)
	assert.Equal(t, 1, stats.ChurnedClients)
	assert.InDelta(t, 30.0, stats.RevenueGrowthPercentage, 0.001)
	assert.InDelta(t, 50.0, stats.ClientGrowthPercentage, 0.001)
}
