package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	CompanyID       uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_company_cpf_cnpj,priority:1;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index"`

	Name         string `gorm:"not null" json:"name"`
	CpfCnpj      string `gorm:"uniqueIndex:idx_company_cpf_cnpj,priority:2;not null" json:"cpfCnpj"`
	RG           string `json:"rg"` // RG or state registration for companies
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`

	Contracts []Contract `gorm:"foreignKey:ClientID" json:"contracts,omitempty"`

	gorm.Model
}

func (cl *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if cl.ID == uuid.Nil {
		cl.ID = uuid.New()
	}
	return
}
