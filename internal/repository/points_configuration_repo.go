package repository

import (
	"monedero/internal/models"

	"gorm.io/gorm"
)

type PointsConfigurationRepository struct {
	db *gorm.DB
}

func NewPointsConfigurationRepository(db *gorm.DB) *PointsConfigurationRepository {
	return &PointsConfigurationRepository{db: db}
}

func (r *PointsConfigurationRepository) WithTx(tx *gorm.DB) *PointsConfigurationRepository {
	return &PointsConfigurationRepository{db: tx}
}

func (r *PointsConfigurationRepository) Insert(pc *models.PointsConfiguration) error {
	return r.db.Create(pc).Error
}

func (r *PointsConfigurationRepository) GetByCompanyID(companyID uint) (*models.PointsConfiguration, error) {
	var pc models.PointsConfiguration
	if err := r.db.Where("company_id = ?", companyID).First(&pc).Error; err != nil {
		return nil, err
	}
	return &pc, nil
}

// Update changes the rule values for future awards only; already-recorded
// ledger entries keep the values frozen at their award time.
func (r *PointsConfigurationRepository) Update(companyID uint, requiredAmount, pointsToEarn float64) error {
	return r.db.Model(&models.PointsConfiguration{}).
		Where("company_id = ?", companyID).
		Updates(map[string]interface{}{
			"required_amount": requiredAmount,
			"points_to_earn":  pointsToEarn,
		}).Error
}
