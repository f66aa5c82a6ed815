// services/contract_service.go
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/odairorso/Contratoloca-aocarro/models"
	"github.com/odairorso/Contratoloca-aocarro/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrClientNameRequired gates generation: no document without a lessee name.
	ErrClientNameRequired = errors.New("client name is required")
	// ErrInvalidPeriod rejects rental periods whose end precedes the start.
	ErrInvalidPeriod = errors.New("invalid rental period: end date precedes start date")
)

type ContractService struct {
	db *gorm.DB
}

func NewContractService(db *gorm.DB) *ContractService {
	return &ContractService{db: db}
}

// GenerateInput carries everything a contract materializes: the type flag,
// the two snapshots and the optional links back to the source records.
type GenerateInput struct {
	ContractType string
	Client       ClientSnapshot
	Service      ServiceSnapshot
	ClientID     *uuid.UUID
	VehicleID    *uuid.UUID
}

// GenerateResult is the outcome of one generation. Document is always set on
// success; SaveErr reports a failed persist without withholding the document.
type GenerateResult struct {
	Contract *models.Contract
	Document string
	Days     int
	Total    string
	SaveErr  error
}

// Generate validates the input, renders the document and persists the
// contract record. Rendering and persistence are deliberately decoupled: a
// storage failure is reported through SaveErr while the rendered document is
// still returned to the caller.
func (s *ContractService) Generate(companyID, userID uuid.UUID, in GenerateInput, now time.Time) (*GenerateResult, error) {
	if strings.TrimSpace(in.Client.Name) == "" {
		return nil, ErrClientNameRequired
	}

	start := utils.ParseDate(in.Service.StartDate)
	end := utils.ParseDate(in.Service.EndDate)
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return nil, ErrInvalidPeriod
	}

	document, days, total, err := RenderContract(in.ContractType, in.Client, in.Service, now)
	if err != nil {
		return nil, err
	}

	contract := &models.Contract{
		CompanyID:       companyID,
		CreatedByUserID: userID,
		Number:          "CTR-" + now.Format("20060102") + "-" + utils.GenerateRandomString(6),
		ContractType:    in.ContractType,
		ClientID:        in.ClientID,
		VehicleID:       in.VehicleID,
		ClientData:      ToJSONB(in.Client),
		ServiceData:     ToJSONB(in.Service),
		Days:            days,
		Notes:           in.Service.Notes,
		ContractText:    document,
	}
	if !start.IsZero() {
		contract.StartDate = &start
	}
	if !end.IsZero() {
		contract.EndDate = &end
	}
	contract.DailyRate, _ = utils.ParseAmount(in.Service.DailyRate).Float64()
	contract.Deposit, _ = utils.ParseAmount(in.Service.Deposit).Float64()
	contract.Total, _ = utils.ParseAmount(in.Service.DailyRate).
		Mul(decimal.NewFromInt(int64(days))).Float64()
	if in.ContractType == models.ContractTypeGarage {
		contract.Total, _ = utils.ParseAmount(in.Service.Value).Float64()
	}

	result := &GenerateResult{
		Contract: contract,
		Document: document,
		Days:     days,
		Total:    total,
	}

	if err := s.db.Create(contract).Error; err != nil {
		result.SaveErr = err
	}
	return result, nil
}
