// controllers/contract.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/odairorso/Contratoloca-aocarro/config"
	"github.com/odairorso/Contratoloca-aocarro/models"
	"github.com/odairorso/Contratoloca-aocarro/services"
	"github.com/odairorso/Contratoloca-aocarro/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GenerateContractInput defines the expected JSON structure for generating a
// contract. The client and service blocks are free-form snapshots; clientId
// and vehicleId optionally link back to stored records and pre-fill any
// snapshot field left empty.
type GenerateContractInput struct {
	ContractType string                   `json:"contractType" binding:"required,oneof=garagem locadora venda"`
	ClientID     *uuid.UUID               `json:"clientId"`
	VehicleID    *uuid.UUID               `json:"vehicleId"`
	Client       services.ClientSnapshot  `json:"client"`
	Service      services.ServiceSnapshot `json:"service"`
}

// GenerateContract renders a contract document and persists it. The document
// is returned even when the save fails; the save error rides along instead of
// rolling back the generation.
func GenerateContract(c *gin.Context) {
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

	var input GenerateContractInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Resolve linked records and pre-fill missing snapshot fields
	if input.ClientID != nil {
		var client models.Client
		if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, *input.ClientID).
			First(&client).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Client not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		fillClientSnapshot(&input.Client, &client)
	}

	if input.VehicleID != nil {
		var vehicle models.Vehicle
		if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, *input.VehicleID).
			First(&vehicle).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "Vehicle not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		fillServiceSnapshot(&input.Service, &vehicle)
	}

	svc := services.NewContractService(config.DB)
	result, err := svc.Generate(companyUUID, uuid.Must(uuid.Parse(userID.(string))), services.GenerateInput{
		ContractType: input.ContractType,
		Client:       input.Client,
		Service:      input.Service,
		ClientID:     input.ClientID,
		VehicleID:    input.VehicleID,
	}, time.Now())
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if result.SaveErr != nil {
		// Generation and persistence are decoupled: show the document anyway
		c.JSON(http.StatusOK, gin.H{
			"document":  result.Document,
			"days":      result.Days,
			"total":     result.Total,
			"saveError": "Failed to save contract: " + result.SaveErr.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"contract": result.Contract,
		"document": result.Document,
		"days":     result.Days,
		"total":    result.Total,
	})
}

func fillClientSnapshot(snapshot *services.ClientSnapshot, client *models.Client) {
	if snapshot.Name == "" {
		snapshot.Name = client.Name
	}
	if snapshot.CpfCnpj == "" {
		snapshot.CpfCnpj = client.CpfCnpj
	}
	if snapshot.RG == "" {
		snapshot.RG = client.RG
	}
	if snapshot.Address == "" {
		snapshot.Address = client.Address
	}
	if snapshot.Neighborhood == "" {
		snapshot.Neighborhood = client.Neighborhood
	}
	if snapshot.Phone == "" {
		snapshot.Phone = client.Phone
	}
	if snapshot.Email == "" {
		snapshot.Email = client.Email
	}
}

func fillServiceSnapshot(snapshot *services.ServiceSnapshot, vehicle *models.Vehicle) {
	if snapshot.Model == "" {
		snapshot.Model = vehicle.Brand + " " + vehicle.ModelName
	}
	if snapshot.Year == "" && vehicle.Year != 0 {
		snapshot.Year = strconv.Itoa(vehicle.Year)
	}
	if snapshot.Plate == "" {
		snapshot.Plate = vehicle.Plate
	}
	if snapshot.Renavam == "" {
		snapshot.Renavam = vehicle.Renavam
	}
	if snapshot.Color == "" {
		snapshot.Color = vehicle.Color
	}
	if snapshot.DailyRate == "" && vehicle.DailyRate != 0 {
		snapshot.DailyRate = utils.FormatBRL(decimal.NewFromFloat(vehicle.DailyRate))
	}
	if snapshot.MarketValue == "" && vehicle.MarketValue != 0 {
		snapshot.MarketValue = utils.FormatBRL(decimal.NewFromFloat(vehicle.MarketValue))
	}
}

// GetContracts retrieves all contracts for the company
func GetContracts(c *gin.Context) {
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

	var contracts []models.Contract
	if err := config.DB.Where("company_id = ?", companyUUID).
		Order("created_at DESC").
		Find(&contracts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve contracts")
		return
	}

	c.JSON(http.StatusOK, contracts)
}

// GetContract retrieves a specific contract by ID
func GetContract(c *gin.Context) {
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

	contractUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contract ID format")
		return
	}

	var contract models.Contract
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, contractUUID).
		First(&contract).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Contract not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, contract)
}

// GetContractPDF renders a stored contract as a downloadable PDF
func GetContractPDF(c *gin.Context) {
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

	contractUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contract ID format")
		return
	}

	var contract models.Contract
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, contractUUID).
		First(&contract).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Contract not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	pdf, err := services.GenerateContractPDF(&contract)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+contract.Number+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// DeleteContract soft deletes a contract
func DeleteContract(c *gin.Context) {
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

	contractUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contract ID format")
		return
	}

	result := config.DB.Where("company_id = ? AND id = ?", companyUUID, contractUUID).
		Delete(&models.Contract{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete contract")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Contract not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contract deleted successfully"})
}
