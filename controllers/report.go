// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"github.com/odairorso/Contratoloca-aocarro/config"
	"github.com/odairorso/Contratoloca-aocarro/models"
	"github.com/odairorso/Contratoloca-aocarro/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportController handles all reporting functions
type ReportController struct{}

// AnalyticsSummary represents the Analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue   float64          `json:"currentMonthRevenue"`
	MonthGrowth           float64          `json:"monthGrowth"`
	CurrentQuarterRevenue float64          `json:"currentQuarterRevenue"`
	QuarterGrowth         float64          `json:"quarterGrowth"`
	CurrentYearRevenue    float64          `json:"currentYearRevenue"`
	YearGrowth            float64          `json:"yearGrowth"`
	TopVehicles           []VehicleSummary `json:"topVehicles"`
	TopClients            []ClientSummary  `json:"topClients"`
	QuickStats            QuickStatistics  `json:"quickStats"`
}

type VehicleSummary struct {
	Plate   string  `json:"plate"`
	Model   string  `json:"model"`
	Rentals int     `json:"rentals"`
	Revenue float64 `json:"revenue"`
}

type ClientSummary struct {
	Name    string  `json:"name"`
	Rentals int     `json:"rentals"`
	Spent   float64 `json:"spent"`
}

type QuickStatistics struct {
	TotalClients     int     `json:"totalClients"`
	TotalContracts   int     `json:"totalContracts"`
	AvgRentalDays    float64 `json:"avgRentalDays"`
	AvgContractValue float64 `json:"avgContractValue"`
}

// GetReportAnalytics returns the complete analytics summary
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	companyID, exists := c.Get("companyId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Company ID not found in context")
		return
	}

	companyUUID, err := uuid.Parse(companyID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid company ID format")
		return
	}

	// Get current time
	now := time.Now()
	currentYear, currentMonth, _ := now.Date()
	currentLocation := now.Location()

	// Calculate date ranges; every window is half-open [start, end)
	firstOfMonth := time.Date(currentYear, currentMonth, 1, 0, 0, 0, 0, currentLocation)
	firstOfNextMonth := firstOfMonth.AddDate(0, 1, 0)
	firstOfYear := time.Date(currentYear, 1, 1, 0, 0, 0, 0, currentLocation)

	// Get revenue reports
	currentMonthRevenue, err := rc.getRevenue(companyUUID, firstOfMonth, firstOfNextMonth)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get monthly revenue")
		return
	}

	lastMonthRevenue, err := rc.getRevenue(companyUUID,
		firstOfMonth.AddDate(0, -1, 0),
		firstOfMonth)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last month revenue")
		return
	}

	quarterStart := rc.getQuarterStart(now)
	currentQuarterRevenue, err := rc.getRevenue(companyUUID,
		quarterStart,
		quarterStart.AddDate(0, 3, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get quarterly revenue")
		return
	}

	lastQuarterRevenue, err := rc.getRevenue(companyUUID,
		quarterStart.AddDate(0, -3, 0),
		quarterStart)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last quarter revenue")
		return
	}

	currentYearRevenue, err := rc.getRevenue(companyUUID,
		firstOfYear,
		firstOfYear.AddDate(1, 0, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get yearly revenue")
		return
	}

	lastYearRevenue, err := rc.getRevenue(companyUUID,
		firstOfYear.AddDate(-1, 0, 0),
		firstOfYear)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get last year revenue")
		return
	}

	// Calculate growth percentages
	monthGrowth := rc.calculateGrowthPercentage(currentMonthRevenue, lastMonthRevenue)
	quarterGrowth := rc.calculateGrowthPercentage(currentQuarterRevenue, lastQuarterRevenue)
	yearGrowth := rc.calculateGrowthPercentage(currentYearRevenue, lastYearRevenue)

	// Get top vehicles
	topVehicles, err := rc.getTopVehicles(companyUUID, firstOfMonth, firstOfNextMonth, 4)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get top vehicles")
		return
	}

	// Get top clients
	topClients, err := rc.getTopClients(companyUUID, firstOfMonth, firstOfNextMonth, 4)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get top clients")
		return
	}

	// Get quick statistics
	quickStats, err := rc.getQuickStatistics(companyUUID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get quick statistics")
		return
	}

	summary := AnalyticsSummary{
		CurrentMonthRevenue:   currentMonthRevenue,
		MonthGrowth:           monthGrowth,
		CurrentQuarterRevenue: currentQuarterRevenue,
		QuarterGrowth:         quarterGrowth,
		CurrentYearRevenue:    currentYearRevenue,
		YearGrowth:            yearGrowth,
		TopVehicles:           topVehicles,
		TopClients:            topClients,
		QuickStats:            quickStats,
	}

	c.JSON(http.StatusOK, summary)
}

// Helper functions for reports

func (rc *ReportController) getRevenue(companyID uuid.UUID, start, end time.Time) (float64, error) {
	var total float64
	err := config.DB.Model(&models.Contract{}).
		Where("company_id = ? AND created_at >= ? AND created_at < ?", companyID, start, end).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

func (rc *ReportController) getQuarterStart(date time.Time) time.Time {
	quarter := (int(date.Month())-1)/3 + 1
	startMonth := time.Month((quarter-1)*3 + 1)
	return time.Date(date.Year(), startMonth, 1, 0, 0, 0, 0, date.Location())
}

func (rc *ReportController) calculateGrowthPercentage(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return ((current - previous) / previous) * 100
}

func (rc *ReportController) getTopVehicles(companyID uuid.UUID, start, end time.Time, limit int) ([]VehicleSummary, error) {
	var vehicles []VehicleSummary

	err := config.DB.Table("contracts").
		Select("vehicles.plate, vehicles.brand || ' ' || vehicles.model as model, COUNT(contracts.id) as rentals, SUM(contracts.total) as revenue").
		Joins("JOIN vehicles ON vehicles.id = contracts.vehicle_id").
		Where("contracts.company_id = ? AND contracts.created_at >= ? AND contracts.created_at < ? AND contracts.deleted_at IS NULL AND vehicles.deleted_at IS NULL", companyID, start, end).
		Group("vehicles.plate, vehicles.brand, vehicles.model").
		Order("revenue DESC").
		Limit(limit).
		Scan(&vehicles).Error

	return vehicles, err
}

func (rc *ReportController) getTopClients(companyID uuid.UUID, start, end time.Time, limit int) ([]ClientSummary, error) {
	var clients []ClientSummary

	err := config.DB.Table("contracts").
		Select("clients.name, COUNT(contracts.id) as rentals, SUM(contracts.total) as spent").
		Joins("JOIN clients ON clients.id = contracts.client_id").
		Where("contracts.company_id = ? AND contracts.created_at >= ? AND contracts.created_at < ? AND contracts.deleted_at IS NULL AND clients.deleted_at IS NULL", companyID, start, end).
		Group("clients.name").
		Order("spent DESC").
		Limit(limit).
		Scan(&clients).Error

	return clients, err
}

func (rc *ReportController) getQuickStatistics(companyID uuid.UUID) (QuickStatistics, error) {
	var stats QuickStatistics

	// Total Clients
	var totalClients int64
	if err := config.DB.Model(&models.Client{}).
		Where("company_id = ?", companyID).
		Count(&totalClients).Error; err != nil {
		return stats, err
	}
	stats.TotalClients = int(totalClients)

	// Total Contracts
	var totalContracts int64
	if err := config.DB.Model(&models.Contract{}).
		Where("company_id = ?", companyID).
		Count(&totalContracts).Error; err != nil {
		return stats, err
	}
	stats.TotalContracts = int(totalContracts)

	// Average Rental Duration
	var avgDays float64
	if err := config.DB.Model(&models.Contract{}).
		Where("company_id = ? AND contract_type <> ? AND days > 0", companyID, models.ContractTypeGarage).
		Select("COALESCE(AVG(days), 0)").
		Scan(&avgDays).Error; err != nil {
		return stats, err
	}
	stats.AvgRentalDays = avgDays

	// Average Contract Value
	var totalRevenue float64
	if err := config.DB.Model(&models.Contract{}).
		Where("company_id = ?", companyID).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return stats, err
	}

	if stats.TotalContracts > 0 {
		stats.AvgContractValue = totalRevenue / float64(stats.TotalContracts)
	}

	return stats, nil
}
