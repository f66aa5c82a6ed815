package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// ContractTypeGarage is the garage/service-order variant.
	ContractTypeGarage = "garagem"
	// ContractTypeRental is the full vehicle rental variant.
	ContractTypeRental = "locadora"
	// ContractTypeSale is accepted as an alias and rendered with the rental
	// skeleton, matching the behavior of the legacy generator.
	ContractTypeSale = "venda"
)

// Contract is a point-in-time materialization of one client, one vehicle and
// a rental period rendered into a legal document. The client and service
// blocks are stored as copy-by-value snapshots; editing the source records
// never rewrites an issued contract.
type Contract struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	CompanyID       uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index"`

	Number       string `gorm:"uniqueIndex;not null" json:"number"`
	ContractType string `gorm:"type:varchar(20);not null" json:"contractType"`

	ClientID  *uuid.UUID `gorm:"type:uuid;index" json:"clientId,omitempty"`
	VehicleID *uuid.UUID `gorm:"type:uuid;index" json:"vehicleId,omitempty"`

	// Snapshots keep the field names of the historical schema (nome, cpf,
	// placa, ...) so contracts issued by the legacy system stay readable.
	ClientData  JSONB `gorm:"type:jsonb" json:"clientData"`
	ServiceData JSONB `gorm:"type:jsonb" json:"serviceData"`

	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Days      int        `json:"days"`
	DailyRate float64    `gorm:"type:decimal(10,2);default:0.0" json:"dailyRate"`
	Deposit   float64    `gorm:"type:decimal(10,2);default:0.0" json:"deposit"`
	Total     float64    `gorm:"type:decimal(10,2);default:0.0" json:"total"`
	Notes     string     `json:"notes"`

	ContractText string `gorm:"type:text" json:"contractText"`

	gorm.Model
}

func (ct *Contract) BeforeCreate(tx *gorm.DB) (err error) {
	if ct.ID == uuid.Nil {
		ct.ID = uuid.New()
	}
	return
}

// JSONB stores a loosely-typed record snapshot as a jsonb column.
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	case nil:
		*j = nil
		return nil
	default:
		return errors.New("unsupported type for JSONB scan")
	}
}

// String reads a snapshot field as a string, tolerating missing keys and
// numeric values left behind by older record shapes.
func (j JSONB) String(key string) string {
	switch v := j[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		b, _ := json.Marshal(v)
		return string(b)
	default:
		return ""
	}
}
