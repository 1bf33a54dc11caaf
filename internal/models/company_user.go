package models

import (
	"time"
)

// CompanyUser is a merchant staff account. New accounts start inactive and are
// enabled through the activation key sent at registration.
type CompanyUser struct {
	ID                 uint      `gorm:"primaryKey" json:"company_user_id"`
	CompanyID          uint      `gorm:"not null;index" json:"company_id"`
	Name               string    `gorm:"size:128;not null" json:"name"`
	Email              string    `gorm:"size:128;uniqueIndex;not null" json:"email"`
	PasswordHash       string    `gorm:"size:128;not null" json:"-"`
	Active             bool      `gorm:"not null;default:false" json:"active"`
	ActivationKey      string    `gorm:"size:64;index" json:"-"`
	Language           string    `gorm:"size:2" json:"language"`
	MustChangePassword bool      `gorm:"not null;default:false" json:"must_change_password"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
}

func (CompanyUser) TableName() string {
	return "company_users"
}
