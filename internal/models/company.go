package models

import (
	"time"
)

type Company struct {
	ID           uint      `gorm:"primaryKey" json:"company_id"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	UrlImageLogo string    `gorm:"size:256" json:"url_image_logo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Company) TableName() string {
	return "companies"
}
