package models

import (
	"time"
)

// Points is one immutable ledger entry for an awarding event. SaleKey is the
// merchant-supplied idempotency key, unique within a company; the composite
// unique index is the authoritative duplicate guard under concurrent awards.
// RequiredAmount and PointsToEarn are frozen copies of the earning rule at
// award time, never a live reference to the configuration row.
type Points struct {
	ID             uint      `gorm:"primaryKey" json:"points_id"`
	CompanyID      uint      `gorm:"not null;uniqueIndex:idx_company_sale_key" json:"company_id"`
	ClientID       uint      `gorm:"not null;index" json:"client_id"`
	SaleKey        string    `gorm:"size:64;not null;uniqueIndex:idx_company_sale_key" json:"sale_key"`
	SaleAmount     float64   `gorm:"not null" json:"sale_amount"`
	RequiredAmount float64   `gorm:"not null" json:"required_amount"`
	PointsToEarn   float64   `gorm:"not null" json:"points_to_earn"`
	EarnedPoints   float64   `gorm:"not null" json:"earned_points"`
	Date           time.Time `gorm:"not null" json:"date"`

	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
	Client  Client  `gorm:"foreignKey:ClientID" json:"-"`
}

func (Points) TableName() string {
	return "points"
}
