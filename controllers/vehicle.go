package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/odairorso/Contratoloca-aocarro/config"
	"github.com/odairorso/Contratoloca-aocarro/models"
	"github.com/odairorso/Contratoloca-aocarro/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateVehicleInput defines the expected JSON structure for creating a vehicle
type CreateVehicleInput struct {
	Brand       string  `json:"brand" binding:"required"`
	Model       string  `json:"model" binding:"required"`
	Year        int     `json:"year" binding:"required"`
	Plate       string  `json:"plate" binding:"required"`
	Renavam     string  `json:"renavam"`
	Color       string  `json:"color"`
	DailyRate   float64 `json:"dailyRate" binding:"required,min=0"`
	MarketValue float64 `json:"marketValue" binding:"min=0"`
}

// UpdateVehicleInput defines the expected JSON structure for updating a vehicle
type UpdateVehicleInput struct {
	Brand       *string  `json:"brand"`
	Model       *string  `json:"model"`
	Year        *int     `json:"year"`
	Plate       *string  `json:"plate"`
	Renavam     *string  `json:"renavam"`
	Color       *string  `json:"color"`
	DailyRate   *float64 `json:"dailyRate" binding:"omitempty,min=0"`
	MarketValue *float64 `json:"marketValue" binding:"omitempty,min=0"`
	IsActive    *bool    `json:"isActive"`
}

// CreateVehicle adds a vehicle to the company fleet
func CreateVehicle(c *gin.Context) {
	companyID, exists := c.Get("companyId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Company ID not found in context")
		return
	}
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	companyUUID, err := uuid.Parse(companyID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid company ID format")
		return
	}

	var input CreateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePlate(input.Plate) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid license plate format")
		return
	}

	// The license plate is the vehicle's natural key within a company
	var existingVehicle models.Vehicle
	if err := config.DB.Where("company_id = ? AND plate = ?", companyUUID, input.Plate).
		First(&existingVehicle).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Vehicle with this plate already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	vehicle := models.Vehicle{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		CreatedByUserID: uuid.Must(uuid.Parse(userID.(string))),
		Brand:           input.Brand,
		ModelName:       input.Model,
		Year:            input.Year,
		Plate:           input.Plate,
		Renavam:         input.Renavam,
		Color:           input.Color,
		DailyRate:       input.DailyRate,
		MarketValue:     input.MarketValue,
		IsActive:        true,
	}

	if err := config.DB.Create(&vehicle).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create vehicle")
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// GetVehicles retrieves the fleet, optionally filtered by a case-insensitive
// partial match on brand or model. A caller-supplied request token is echoed
// back in X-Request-Token so the UI can discard superseded search responses.
func GetVehicles(c *gin.Context) {
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

	if token := c.Query("token"); token != "" {
		c.Header("X-Request-Token", token)
	}

	query := config.DB.Where("company_id = ?", companyUUID)
	if q := c.Query("q"); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(brand) LIKE ? OR LOWER(model) LIKE ?", pattern, pattern)
	}

	var vehicles []models.Vehicle
	if err := query.Find(&vehicles).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vehicles")
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// GetVehicle retrieves a specific vehicle by ID
func GetVehicle(c *gin.Context) {
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

	vehicleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle ID format")
		return
	}

	var vehicle models.Vehicle
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, vehicleUUID).
		First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Vehicle not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// UpdateVehicle updates an existing vehicle
func UpdateVehicle(c *gin.Context) {
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

	vehicleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle ID format")
		return
	}

	var input UpdateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Retrieve existing vehicle
	var vehicle models.Vehicle
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, vehicleUUID).
		First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Vehicle not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Brand != nil {
		vehicle.Brand = *input.Brand
	}
	if input.Model != nil {
		vehicle.ModelName = *input.Model
	}
	if input.Year != nil {
		vehicle.Year = *input.Year
	}
	if input.Plate != nil {
		if !utils.ValidatePlate(*input.Plate) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid license plate format")
			return
		}

		// Check if the plate is being changed to another vehicle's
		if vehicle.Plate != *input.Plate {
			var existingVehicle models.Vehicle
			if err := config.DB.Where("company_id = ? AND plate = ?", companyUUID, *input.Plate).
				First(&existingVehicle).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another vehicle with this plate already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		vehicle.Plate = *input.Plate
	}
	if input.Renavam != nil {
		vehicle.Renavam = *input.Renavam
	}
	if input.Color != nil {
		vehicle.Color = *input.Color
	}
	if input.DailyRate != nil {
		vehicle.DailyRate = *input.DailyRate
	}
	if input.MarketValue != nil {
		vehicle.MarketValue = *input.MarketValue
	}
	if input.IsActive != nil {
		vehicle.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&vehicle).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update vehicle")
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle soft deletes a vehicle
func DeleteVehicle(c *gin.Context) {
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

	vehicleUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle ID format")
		return
	}

	result := config.DB.Where("company_id = ? AND id = ?", companyUUID, vehicleUUID).
		Delete(&models.Vehicle{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete vehicle")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Vehicle not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}
