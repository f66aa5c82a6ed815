// controllers/dashboard.go
package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/odairorso/Contratoloca-aocarro/config"
	"github.com/odairorso/Contratoloca-aocarro/models"
	"github.com/odairorso/Contratoloca-aocarro/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpcomingReturn is one rental due back within the next week
type UpcomingReturn struct {
	ContractID   uuid.UUID `json:"contractId"`
	Number       string    `json:"number"`
	ClientName   string    `json:"clientName"`
	VehicleModel string    `json:"vehicleModel"`
	Plate        string    `json:"plate"`
	EndDate      string    `json:"endDate"`
	DueLabel     string    `json:"dueLabel"`
}

// GetDashboardOverview returns the headline numbers for the admin landing
// page: entity counts, current-month revenue, rentals in progress and the
// returns expected over the next seven days.
func GetDashboardOverview(c *gin.Context) {
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

	db := config.DB
	now := time.Now()
	today := utils.BeginningOfDay(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var totalClients, totalVehicles, totalContracts int64
	db.Model(&models.Client{}).Where("company_id = ?", companyUUID).Count(&totalClients)
	db.Model(&models.Vehicle{}).Where("company_id = ?", companyUUID).Count(&totalVehicles)
	db.Model(&models.Contract{}).Where("company_id = ?", companyUUID).Count(&totalContracts)

	var monthlyRevenue float64
	db.Model(&models.Contract{}).
		Where("company_id = ? AND created_at >= ?", companyUUID, monthStart).
		Select("COALESCE(SUM(total), 0)").
		Scan(&monthlyRevenue)

	var activeRentals int64
	db.Model(&models.Contract{}).
		Where("company_id = ? AND contract_type <> ?", companyUUID, models.ContractTypeGarage).
		Where("start_date <= ? AND end_date >= ?", now, today).
		Count(&activeRentals)

	var ending []models.Contract
	db.Where("company_id = ? AND contract_type <> ?", companyUUID, models.ContractTypeGarage).
		Where("end_date >= ? AND end_date < ?", today, today.AddDate(0, 0, 7)).
		Order("end_date").
		Find(&ending)

	upcomingReturns := []UpcomingReturn{}
	for _, contract := range ending {
		if contract.EndDate == nil {
			continue
		}

		upcomingReturns = append(upcomingReturns, UpcomingReturn{
			ContractID:   contract.ID,
			Number:       contract.Number,
			ClientName:   contract.ClientData.String("nome"),
			VehicleModel: contract.ServiceData.String("modelo"),
			Plate:        contract.ServiceData.String("placa"),
			EndDate:      utils.FormatDateBR(*contract.EndDate),
			DueLabel:     dueLabel(today, utils.BeginningOfDay(*contract.EndDate)),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalClients":    totalClients,
		"totalVehicles":   totalVehicles,
		"totalContracts":  totalContracts,
		"monthlyRevenue":  monthlyRevenue,
		"activeRentals":   activeRentals,
		"upcomingReturns": upcomingReturns,
	})
}

// dueLabel names how far a return date is from today in whole calendar days.
// Both arguments are midnights; rounding the duration keeps the count exact
// across DST transitions, where a calendar day is not 24 hours long.
func dueLabel(today, due time.Time) string {
	daysUntil := int(due.Sub(today).Round(24*time.Hour) / (24 * time.Hour))
	switch daysUntil {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	}
	return strconv.Itoa(daysUntil) + " days"
}
