package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vehicle struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	CompanyID       uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_company_plate,priority:1;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index"`

	Brand       string  `gorm:"not null" json:"brand"`
	ModelName   string  `gorm:"column:model;not null" json:"model"`
	Year        int     `json:"year"`
	Plate       string  `gorm:"uniqueIndex:idx_company_plate,priority:2;not null" json:"plate"`
	Renavam     string  `json:"renavam"`
	Color       string  `json:"color"`
	DailyRate   float64 `gorm:"type:decimal(10,2);not null" json:"dailyRate"`
	MarketValue float64 `gorm:"type:decimal(10,2);default:0.0" json:"marketValue"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`

	Contracts []Contract `gorm:"foreignKey:VehicleID" json:"contracts,omitempty"`

	// gorm.Model is not embedded here: the vehicle's commercial model name
	// already occupies the Model field name.
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
