package repository

import (
	"errors"

	"monedero/internal/models"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *ClientRepository) WithTx(tx *gorm.DB) *ClientRepository {
	return &ClientRepository{db: tx}
}

func (r *ClientRepository) GetByPhone(phone string) (*models.Client, error) {
	var c models.Client
	if err := r.db.Where("phone = ?", phone).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FindOrCreateByPhone returns the client for phone, creating it on first
// sighting. New clients default to promo-SMS-eligible. A concurrent insert of
// the same phone is absorbed by re-reading the winner's row.
func (r *ClientRepository) FindOrCreateByPhone(phone string) (*models.Client, error) {
	c, err := r.GetByPhone(phone)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	c = &models.Client{Phone: phone, CanReceivePromoSms: true}
	if err := r.db.Create(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.GetByPhone(phone)
		}
		return nil, err
	}
	return c, nil
}

func (r *ClientRepository) UpdateCanReceivePromoSms(clientID uint, canReceive bool) error {
	return r.db.Model(&models.Client{}).Where("id = ?", clientID).
		Update("can_receive_promo_sms", canReceive).Error
}

// GetByCompanyID lists all clients that have a relationship with the company,
// together with their current balance.
func (r *ClientRepository) GetByCompanyID(companyID uint) ([]models.CompanyClientMapping, error) {
	var mappings []models.CompanyClientMapping
	err := r.db.Preload("Client").
		Where("company_id = ?", companyID).
		Order("id").
		Find(&mappings).Error
	return mappings, err
}
