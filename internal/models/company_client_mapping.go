package models

import (
	"time"
)

// CompanyClientMapping is the relationship row for one (company, client) pair.
// Points is a materialized cache of the ledger sum for the pair, maintained in
// the same transaction as every ledger insert; it is never recomputed by
// summation on the hot path.
type CompanyClientMapping struct {
	ID        uint      `gorm:"primaryKey" json:"company_client_mapping_id"`
	CompanyID uint      `gorm:"not null;uniqueIndex:idx_company_client" json:"company_id"`
	ClientID  uint      `gorm:"not null;uniqueIndex:idx_company_client" json:"client_id"`
	Points    float64   `gorm:"not null;default:0" json:"points"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
	Client  Client  `gorm:"foreignKey:ClientID" json:"-"`
}

func (CompanyClientMapping) TableName() string {
	return "company_client_mappings"
}
