package repository

import (
	"errors"

	"monedero/internal/models"

	"gorm.io/gorm"
)

type CompanyClientMappingRepository struct {
	db *gorm.DB
}

func NewCompanyClientMappingRepository(db *gorm.DB) *CompanyClientMappingRepository {
	return &CompanyClientMappingRepository{db: db}
}

func (r *CompanyClientMappingRepository) WithTx(tx *gorm.DB) *CompanyClientMappingRepository {
	return &CompanyClientMappingRepository{db: tx}
}

func (r *CompanyClientMappingRepository) Insert(m *models.CompanyClientMapping) error {
	return r.db.Create(m).Error
}

func (r *CompanyClientMappingRepository) GetByCompanyIDClientID(companyID, clientID uint) (*models.CompanyClientMapping, error) {
	var m models.CompanyClientMapping
	err := r.db.Where("company_id = ? AND client_id = ?", companyID, clientID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindOrCreate returns the mapping for the pair, creating it with balance 0 on
// the first interaction between the client and the company. A concurrent
// insert of the same pair is absorbed by re-reading the winner's row.
func (r *CompanyClientMappingRepository) FindOrCreate(companyID, clientID uint) (*models.CompanyClientMapping, error) {
	m, err := r.GetByCompanyIDClientID(companyID, clientID)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	m = &models.CompanyClientMapping{CompanyID: companyID, ClientID: clientID, Points: 0}
	if err := r.db.Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.GetByCompanyIDClientID(companyID, clientID)
		}
		return nil, err
	}
	return m, nil
}

// AddPoints increments the cached balance in place. Must run inside the same
// transaction as the matching ledger insert.
func (r *CompanyClientMappingRepository) AddPoints(mappingID uint, earned float64) error {
	return r.db.Model(&models.CompanyClientMapping{}).
		Where("id = ?", mappingID).
		UpdateColumn("points", gorm.Expr("points + ?", earned)).Error
}
