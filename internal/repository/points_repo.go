package repository

import (
	"monedero/internal/models"

	"gorm.io/gorm"
)

// PointsRepository is append-only: ledger entries are inserted and queried,
// never updated or deleted.
type PointsRepository struct {
	db *gorm.DB
}

func NewPointsRepository(db *gorm.DB) *PointsRepository {
	return &PointsRepository{db: db}
}

func (r *PointsRepository) WithTx(tx *gorm.DB) *PointsRepository {
	return &PointsRepository{db: tx}
}

func (r *PointsRepository) Insert(p *models.Points) error {
	return r.db.Create(p).Error
}

func (r *PointsRepository) GetByCompanyIDSaleKey(companyID uint, saleKey string) (*models.Points, error) {
	var p models.Points
	err := r.db.Where("company_id = ? AND sale_key = ?", companyID, saleKey).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SumEarnedPoints recomputes the ledger sum for one (company, client) pair.
// Not used on the awarding path; it exists so the cached mapping balance can
// be verified against the ledger.
func (r *PointsRepository) SumEarnedPoints(companyID, clientID uint) (float64, error) {
	var sum float64
	err := r.db.Model(&models.Points{}).
		Where("company_id = ? AND client_id = ?", companyID, clientID).
		Select("COALESCE(SUM(earned_points), 0)").
		Scan(&sum).Error
	return sum, err
}
