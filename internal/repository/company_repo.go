package repository

import (
	"monedero/internal/models"

	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) WithTx(tx *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: tx}
}

func (r *CompanyRepository) Insert(c *models.Company) error {
	return r.db.Create(c).Error
}

func (r *CompanyRepository) GetByID(companyID uint) (*models.Company, error) {
	var c models.Company
	if err := r.db.First(&c, companyID).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) UpdateUrlImageLogo(companyID uint, url string) error {
	return r.db.Model(&models.Company{}).Where("id = ?", companyID).
		Update("url_image_logo", url).Error
}

// GetPointsInCompanyByClientID returns the client's balance at every company
// it has a relationship with, in relationship order.
func (r *CompanyRepository) GetPointsInCompanyByClientID(clientID uint) ([]models.PointsInCompany, error) {
	var rows []models.PointsInCompany
	err := r.db.Model(&models.CompanyClientMapping{}).
		Select("company_client_mappings.company_id, companies.name, companies.url_image_logo, company_client_mappings.points").
		Joins("JOIN companies ON companies.id = company_client_mappings.company_id").
		Where("company_client_mappings.client_id = ?", clientID).
		Order("company_client_mappings.id").
		Scan(&rows).Error
	return rows, err
}
