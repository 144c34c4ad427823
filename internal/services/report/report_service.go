package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gymdesk/backend/internal/models"
	"github.com/gymdesk/backend/internal/services/membership"
)

// AvailableMonth is a month that has activity, for report month pickers
type AvailableMonth struct {
	Value string `json:"value"` // YYYY-MM
	Label string `json:"label"` // e.g. "January 2025"
}

// TodayStats summarizes a single business day
type TodayStats struct {
	Date             string  `json:"date"`
	Revenue          float64 `json:"revenue"`
	PaymentCount     int     `json:"payment_count"`
	NewRegistrations int     `json:"new_registrations"`
}

// ReportService computes monthly reports from payment and client records
type ReportService struct {
	db *gorm.DB
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

func (s *ReportService) monthPayments(year int, month time.Month, preloadPlan bool) ([]models.Payment, error) {
	start, end := MonthRange(year, month)
	query := s.db.Where("payment_date >= ? AND payment_date <= ?", start, end)
	if preloadPlan {
		query = query.Preload("Plan")
	}
	var payments []models.Payment
	if err := query.Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch payments for %s: %w", FormatMonth(year, month), err)
	}
	return payments, nil
}

// DashboardStats computes the dashboard aggregates for a calendar month
func (s *ReportService) DashboardStats(year int, month time.Month) (*DashboardStats, error) {
	start, _ := MonthRange(year, month)
	prevYear, prevMonth := PrevMonth(year, month)
	prevStart, prevEnd := MonthRange(prevYear, prevMonth)

	currentPayments, err := s.monthPayments(year, month, false)
	if err != nil {
		return nil, err
	}
	previousPayments, err := s.monthPayments(prevYear, prevMonth, false)
	if err != nil {
		return nil, err
	}

	var activeClients []models.Client
	if err := s.db.Preload("Plan").
		Where("status = ?", models.ClientStatusActive).
		Find(&activeClients).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch active clients: %w", err)
	}

	var newClients int64
	if err := s.db.Model(&models.Client{}).
		Where("registration_date >= ? AND registration_date < ?", start, start.AddDate(0, 1, 0)).
		Count(&newClients).Error; err != nil {
		return nil, fmt.Errorf("failed to count new clients: %w", err)
	}
	var prevNewClients int64
	if err := s.db.Model(&models.Client{}).
		Where("registration_date >= ? AND registration_date <= ?", prevStart, prevEnd).
		Count(&prevNewClients).Error; err != nil {
		return nil, fmt.Errorf("failed to count previous new clients: %w", err)
	}

	var lapsedClients []models.Client
	if err := s.db.
		Where("status IN ?", []models.ClientStatus{models.ClientStatusFrozen, models.ClientStatusInactive}).
		Where("expiration_date IS NOT NULL AND expiration_date < ?", start).
		Find(&lapsedClients).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch lapsed clients: %w", err)
	}

	paidClientIDs := make(map[uuid.UUID]struct{}, len(currentPayments))
	for _, p := range currentPayments {
		if p.ClientID != nil {
			paidClientIDs[*p.ClientID] = struct{}{}
		}
	}

	return BuildDashboardStats(DashboardInput{
		CurrentPayments:  currentPayments,
		PreviousPayments: previousPayments,
		ActiveClients:    activeClients,
		NewClients:       int(newClients),
		PrevNewClients:   int(prevNewClients),
		LapsedClients:    lapsedClients,
		PaidClientIDs:    paidClientIDs,
	}), nil
}

// RevenueReport computes the revenue breakdown for a calendar month
func (s *ReportService) RevenueReport(year int, month time.Month) (*RevenueReport, error) {
	payments, err := s.monthPayments(year, month, true)
	if err != nil {
		return nil, err
	}
	return BuildRevenueReport(payments), nil
}

// DailyRevenue returns the per-day revenue trend for a calendar month,
// including zero entries for days without payments
func (s *ReportService) DailyRevenue(year int, month time.Month) ([]DailyRevenuePoint, error) {
	payments, err := s.monthPayments(year, month, false)
	if err != nil {
		return nil, err
	}
	return FillDailyRevenue(year, month, payments), nil
}

// AvailableMonths lists the months that saw payments or registrations, newest
// first, capped at two years for the picker
func (s *ReportService) AvailableMonths() ([]AvailableMonth, error) {
	var payments []models.Payment
	if err := s.db.Select("payment_date").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch payment dates: %w", err)
	}
	var clients []models.Client
	if err := s.db.Select("registration_date").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch registration dates: %w", err)
	}

	seen := make(map[string]struct{})
	var months []AvailableMonth
	add := func(t time.Time) {
		value := t.UTC().Format(MonthLayout)
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		months = append(months, AvailableMonth{
			Value: value,
			Label: t.UTC().Format("January 2006"),
		})
	}
	for _, p := range payments {
		add(p.PaymentDate)
	}
	for _, c := range clients {
		add(c.RegistrationDate)
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].Value > months[j].Value
	})
	if len(months) > 24 {
		months = months[:24]
	}
	return months, nil
}

// TodayStats summarizes revenue, payments and registrations for one day
func (s *ReportService) TodayStats(today time.Time) (*TodayStats, error) {
	day := membership.DateOf(today)
	next := day.AddDate(0, 0, 1)

	var payments []models.Payment
	if err := s.db.
		Where("payment_date >= ? AND payment_date < ?", day, next).
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch today's payments: %w", err)
	}

	var registrations int64
	if err := s.db.Model(&models.Client{}).
		Where("registration_date >= ? AND registration_date < ?", day, next).
		Count(&registrations).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's registrations: %w", err)
	}

	return &TodayStats{
		Date:             day.Format(membership.DateLayout),
		Revenue:          SumAmounts(payments),
		PaymentCount:     len(payments),
		NewRegistrations: int(registrations),
	}, nil
}
