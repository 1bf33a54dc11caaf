package service

import (
	"errors"

	"monedero/internal/models"
	"monedero/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PointsConfigurationService reads and updates a company's earning rule.
// Updates apply to future awards only; ledger entries keep their frozen copy.
type PointsConfigurationService struct {
	configRepo *repository.PointsConfigurationRepository
	log        *logrus.Logger
}

func NewPointsConfigurationService(configRepo *repository.PointsConfigurationRepository, log *logrus.Logger) *PointsConfigurationService {
	return &PointsConfigurationService{configRepo: configRepo, log: log}
}

func (s *PointsConfigurationService) GetByCompanyID(companyID uint) (*models.PointsConfiguration, error) {
	config, err := s.configRepo.GetByCompanyID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.WithField("company_id", companyID).Error("no points configuration for company")
			return nil, configurationError(ReasonMissingConfiguration, "points configuration doesn't exist")
		}
		return nil, storageError("points configuration lookup failed", err)
	}
	return config, nil
}

func (s *PointsConfigurationService) Update(companyID uint, requiredAmount, pointsToEarn float64) error {
	if requiredAmount <= 0 {
		return validationError(ReasonInvalidEarningRule, "required amount must be greater than zero")
	}
	if pointsToEarn < 0 {
		return validationError(ReasonInvalidEarningRule, "points to earn must not be negative")
	}
	if _, err := s.GetByCompanyID(companyID); err != nil {
		return err
	}
	if err := s.configRepo.Update(companyID, requiredAmount, pointsToEarn); err != nil {
		return storageError("could not update points configuration", err)
	}
	return nil
}
