package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gymdesk/backend/internal/config"
	"github.com/gymdesk/backend/internal/services/report"
)

// ReportHandler handles reporting requests
type ReportHandler struct {
	reportService *report.ReportService
	business      config.BusinessConfig
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *report.ReportService, business config.BusinessConfig) *ReportHandler {
	return &ReportHandler{reportService: reportService, business: business}
}

// monthParam reads the optional month query parameter, defaulting to the
// current business month
func (h *ReportHandler) monthParam(c *gin.Context) (int, time.Month, bool) {
	value := c.Query("month")
	if value == "" {
		now := h.businessNow()
		return now.Year(), now.Month(), true
	}

	year, month, err := report.ParseMonth(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected YYYY-MM"})
		return 0, 0, false
	}
	return year, month, true
}

// businessNow shifts the clock so the report day matches the gym's local day
func (h *ReportHandler) businessNow() time.Time {
	return time.Now().UTC().Add(time.Duration(h.business.TimezoneOffsetHours) * time.Hour)
}

// Dashboard returns the monthly dashboard aggregates
func (h *ReportHandler) Dashboard(c *gin.Context) {
	year, month, ok := h.monthParam(c)
	if !ok {
		return
	}

	stats, err := h.reportService.DashboardStats(year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Revenue returns the monthly revenue breakdown
func (h *ReportHandler) Revenue(c *gin.Context) {
	year, month, ok := h.monthParam(c)
	if !ok {
		return
	}

	result, err := h.reportService.RevenueReport(year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenue report"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// DailyRevenue returns the per-day revenue trend for a month
func (h *ReportHandler) DailyRevenue(c *gin.Context) {
	year, month, ok := h.monthParam(c)
	if !ok {
		return
	}

	points, err := h.reportService.DailyRevenue(year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute daily revenue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":         report.FormatMonth(year, month),
		"daily_revenue": points,
	})
}

// AvailableMonths lists months with activity for the report month picker
func (h *ReportHandler) AvailableMonths(c *gin.Context) {
	months, err := h.reportService.AvailableMonths()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch available months"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"months": months})
}

// Today summarizes the current business day
func (h *ReportHandler) Today(c *gin.Context) {
	stats, err := h.reportService.TodayStats(h.businessNow())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute today's stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
