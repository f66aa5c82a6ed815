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

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Name         string `json:"name" binding:"required"`
	CpfCnpj      string `json:"cpfCnpj" binding:"required"`
	RG           string `json:"rg"`
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	Name         *string `json:"name"`
	CpfCnpj      *string `json:"cpfCnpj"`
	RG           *string `json:"rg"`
	Address      *string `json:"address"`
	Neighborhood *string `json:"neighborhood"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	IsActive     *bool   `json:"isActive"`
}

// CreateClient creates a new client for the company
func CreateClient(c *gin.Context) {
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

	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate the tax identifier format
	if !utils.ValidateCpfCnpj(input.CpfCnpj) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid CPF/CNPJ format")
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// The tax identifier is the client's natural key within a company
	var existingClient models.Client
	if err := config.DB.Where("company_id = ? AND cpf_cnpj = ?", companyUUID, input.CpfCnpj).
		First(&existingClient).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Client with this CPF/CNPJ already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	// Create new client
	client := models.Client{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		CreatedByUserID: uuid.Must(uuid.Parse(userID.(string))),
		Name:            input.Name,
		CpfCnpj:         input.CpfCnpj,
		RG:              input.RG,
		Address:         input.Address,
		Neighborhood:    input.Neighborhood,
		Phone:           input.Phone,
		Email:           input.Email,
		IsActive:        true,
	}

	if err := config.DB.Create(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients retrieves the company's clients, optionally filtered by a
// case-insensitive partial match on name or CPF/CNPJ. A caller-supplied
// request token is echoed back in X-Request-Token so the UI can discard
// responses superseded by a newer search.
func GetClients(c *gin.Context) {
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
		query = query.Where("LOWER(name) LIKE ? OR LOWER(cpf_cnpj) LIKE ?", pattern, pattern)
	}

	var clients []models.Client
	if err := query.Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// HistoryClient is one deduplicated client derived from contract snapshots
type HistoryClient struct {
	ContractID uuid.UUID    `json:"contractId"`
	Client     models.JSONB `json:"client"`
}

// GetClientsFromHistory derives the client list from historical contract
// snapshots, keeping the first record seen per CPF/CNPJ. This mirrors how the
// legacy system listed clients before a dedicated table existed.
func GetClientsFromHistory(c *gin.Context) {
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
	if err := config.DB.Select("id", "client_data").
		Where("company_id = ?", companyUUID).
		Order("created_at").
		Find(&contracts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve contracts")
		return
	}

	seen := make(map[string]bool)
	history := []HistoryClient{}
	for _, contract := range contracts {
		cpf := contract.ClientData.String("cpf")
		if seen[cpf] {
			continue
		}
		seen[cpf] = true
		history = append(history, HistoryClient{
			ContractID: contract.ID,
			Client:     contract.ClientData,
		})
	}

	c.JSON(http.StatusOK, history)
}

// GetClient retrieves a specific client by ID
func GetClient(c *gin.Context) {
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

	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var client models.Client
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, clientUUID).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, client)
}

// UpdateClient updates an existing client
func UpdateClient(c *gin.Context) {
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

	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Retrieve existing client
	var client models.Client
	if err := config.DB.Where("company_id = ? AND id = ?", companyUUID, clientUUID).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.CpfCnpj != nil {
		if !utils.ValidateCpfCnpj(*input.CpfCnpj) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid CPF/CNPJ format")
			return
		}

		// Check if the tax identifier is being changed to another client's
		if client.CpfCnpj != *input.CpfCnpj {
			var existingClient models.Client
			if err := config.DB.Where("company_id = ? AND cpf_cnpj = ?", companyUUID, *input.CpfCnpj).
				First(&existingClient).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another client with this CPF/CNPJ already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		client.CpfCnpj = *input.CpfCnpj
	}
	if input.RG != nil {
		client.RG = *input.RG
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.Neighborhood != nil {
		client.Neighborhood = *input.Neighborhood
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		client.Phone = *input.Phone
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.IsActive != nil {
		client.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient soft deletes a client
func DeleteClient(c *gin.Context) {
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

	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return
	}

	result := config.DB.Where("company_id = ? AND id = ?", companyUUID, clientUUID).
		Delete(&models.Client{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
