package models

import (
	"time"
)

// PromotionConfiguration is one promotion of a company, unlocked once a
// client's balance reaches RequiredPoints.
type PromotionConfiguration struct {
	ID             uint      `gorm:"primaryKey" json:"promotion_configuration_id"`
	CompanyID      uint      `gorm:"not null;index" json:"company_id"`
	Description    string    `gorm:"size:256;not null" json:"description"`
	RequiredPoints float64   `gorm:"not null" json:"required_points"`
	CreatedAt      time.Time `json:"created_at"`

	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
}

func (PromotionConfiguration) TableName() string {
	return "promotion_configurations"
}
