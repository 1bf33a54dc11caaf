package repository

import (
	"monedero/internal/models"

	"gorm.io/gorm"
)

type CompanyUserRepository struct {
	db *gorm.DB
}

func NewCompanyUserRepository(db *gorm.DB) *CompanyUserRepository {
	return &CompanyUserRepository{db: db}
}

func (r *CompanyUserRepository) WithTx(tx *gorm.DB) *CompanyUserRepository {
	return &CompanyUserRepository{db: tx}
}

func (r *CompanyUserRepository) Insert(u *models.CompanyUser) error {
	return r.db.Create(u).Error
}

func (r *CompanyUserRepository) GetByEmail(email string) (*models.CompanyUser, error) {
	var u models.CompanyUser
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *CompanyUserRepository) GetByActivationKey(key string) (*models.CompanyUser, error) {
	var u models.CompanyUser
	if err := r.db.Where("activation_key = ?", key).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *CompanyUserRepository) Activate(userID uint) error {
	return r.db.Model(&models.CompanyUser{}).Where("id = ?", userID).
		Update("active", true).Error
}
