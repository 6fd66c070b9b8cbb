package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PolicyType is the coverage class of a sold policy.
type PolicyType string

const (
	PolicyTypeFirstParty PolicyType = "1st Party"
	PolicyTypeThirdParty PolicyType = "3rd Party"
)

// Valid reports whether the policy type is one of the known classes.
func (p PolicyType) Valid() bool {
	return p == PolicyTypeFirstParty || p == PolicyTypeThirdParty
}

// Well-known vehicle types. VehicleType stays a free string because
// commercial policies carry arbitrary subtypes ("Truck", "Tempo", ...).
const (
	VehicleTypeCar  = "Car"
	VehicleTypeBike = "Bike"
)

// Policy represents a sold insurance policy recorded by the agent.
type Policy struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	ClientName  string          `json:"clientName" gorm:"size:255;not null;index"`
	Phone       string          `json:"phone" gorm:"size:32;not null"`
	VehicleNo   string          `json:"vehicleNo" gorm:"size:32;not null;index"`
	VehicleType string          `json:"vehicleType" gorm:"size:64;not null"`
	PolicyType  PolicyType      `json:"policyType" gorm:"type:varchar(20);not null;default:'1st Party'"`
	StartDate   DateOnly        `json:"startDate" gorm:"type:date;not null;index"`
	EndDate     DateOnly        `json:"endDate" gorm:"type:date;not null;index"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null"`
	Discount    decimal.Decimal `json:"discount" gorm:"type:decimal(20,2);not null;default:0"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Policy) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
