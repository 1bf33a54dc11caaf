package repository

import (
	"monedero/internal/models"

	"gorm.io/gorm"
)

type PromotionConfigurationRepository struct {
	db *gorm.DB
}

func NewPromotionConfigurationRepository(db *gorm.DB) *PromotionConfigurationRepository {
	return &PromotionConfigurationRepository{db: db}
}

func (r *PromotionConfigurationRepository) WithTx(tx *gorm.DB) *PromotionConfigurationRepository {
	return &PromotionConfigurationRepository{db: tx}
}

func (r *PromotionConfigurationRepository) Insert(pc *models.PromotionConfiguration) error {
	return r.db.Create(pc).Error
}

// GetByCompanyID returns the full catalog for a company in insertion order.
func (r *PromotionConfigurationRepository) GetByCompanyID(companyID uint) ([]models.PromotionConfiguration, error) {
	var promotions []models.PromotionConfiguration
	err := r.db.Where("company_id = ?", companyID).Order("id").Find(&promotions).Error
	return promotions, err
}

// Delete removes one promotion, scoped to its owning company, and reports how
// many rows were affected so the caller can tell a real delete from a miss.
func (r *PromotionConfigurationRepository) Delete(companyID, promotionConfigurationID uint) (int64, error) {
	res := r.db.Where("company_id = ?", companyID).
		Delete(&models.PromotionConfiguration{}, promotionConfigurationID)
	return res.RowsAffected, res.Error
}
