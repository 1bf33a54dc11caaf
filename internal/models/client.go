package models

import (
	"time"
)

// Client is a shopper identified by phone number. Clients are shared across
// companies; the per-company relationship lives in CompanyClientMapping.
type Client struct {
	ID                 uint      `gorm:"primaryKey" json:"client_id"`
	Phone              string    `gorm:"size:32;uniqueIndex;not null" json:"phone"`
	CanReceivePromoSms bool      `gorm:"not null;default:true" json:"can_receive_promo_sms"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Client) TableName() string {
	return "clients"
}
