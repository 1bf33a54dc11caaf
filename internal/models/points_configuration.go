package models

import (
	"time"
)

// PointsConfiguration is the earning rule of one company: a sale of
// RequiredAmount or more converts to points at SaleAmount/RequiredAmount *
// PointsToEarn. Exactly one active rule per company. Ledger entries copy the
// rule values at award time, so updating the rule never rewrites history.
type PointsConfiguration struct {
	ID             uint      `gorm:"primaryKey" json:"points_configuration_id"`
	CompanyID      uint      `gorm:"uniqueIndex;not null" json:"company_id"`
	RequiredAmount float64   `gorm:"not null" json:"required_amount"`
	PointsToEarn   float64   `gorm:"not null" json:"points_to_earn"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
}

func (PointsConfiguration) TableName() string {
	return "points_configurations"
}
