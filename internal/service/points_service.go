package service

import (
	"errors"
	"time"

	"monedero/internal/models"
	"monedero/internal/repository"
	"monedero/pkg/phone"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PointsService is the awarding engine: it validates the request, converts
// the sale amount to points through the company's earning rule and records
// the ledger entry plus balance update in one transaction.
type PointsService struct {
	db          *gorm.DB
	clientRepo  *repository.ClientRepository
	mappingRepo *repository.CompanyClientMappingRepository
	pointsRepo  *repository.PointsRepository
	configRepo  *repository.PointsConfigurationRepository
	validator   phone.Validator
	log         *logrus.Logger
}

func NewPointsService(
	db *gorm.DB,
	clientRepo *repository.ClientRepository,
	mappingRepo *repository.CompanyClientMappingRepository,
	pointsRepo *repository.PointsRepository,
	configRepo *repository.PointsConfigurationRepository,
	validator phone.Validator,
	log *logrus.Logger,
) *PointsService {
	return &PointsService{
		db:          db,
		clientRepo:  clientRepo,
		mappingRepo: mappingRepo,
		pointsRepo:  pointsRepo,
		configRepo:  configRepo,
		validator:   validator,
		log:         log,
	}
}

// AwardPoints records one sale and returns the points it earned. A sale below
// the required amount earns zero points but is still recorded and reported as
// success. A sale key already seen for the company is rejected with
// ReasonDuplicateSaleKey and leaves the ledger untouched; the composite
// unique index on (company_id, sale_key) enforces this under concurrency, the
// pre-check only rejects early.
func (s *PointsService) AwardPoints(companyID uint, phoneNumber, saleKey string, saleAmount float64) (float64, error) {
	if err := s.validator.Validate(phoneNumber); err != nil {
		return 0, validationError(ReasonInvalidPhone, "invalid phone number")
	}
	if saleKey == "" {
		return 0, validationError(ReasonEmptySaleKey, "sale key must not be empty")
	}
	if _, err := s.pointsRepo.GetByCompanyIDSaleKey(companyID, saleKey); err == nil {
		return 0, validationError(ReasonDuplicateSaleKey, "sale key already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, storageError("sale key lookup failed", err)
	}
	config, err := s.configRepo.GetByCompanyID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.WithField("company_id", companyID).Error("no points configuration for company")
			return 0, configurationError(ReasonMissingConfiguration, "points configuration doesn't exist")
		}
		return 0, storageError("points configuration lookup failed", err)
	}

	var earned float64
	err = s.db.Transaction(func(tx *gorm.DB) error {
		client, err := s.clientRepo.WithTx(tx).FindOrCreateByPhone(phoneNumber)
		if err != nil {
			return err
		}
		mapping, err := s.mappingRepo.WithTx(tx).FindOrCreate(companyID, client.ID)
		if err != nil {
			return err
		}
		earned = calculateEarnedPoints(saleAmount, config.RequiredAmount, config.PointsToEarn)
		entry := &models.Points{
			CompanyID:      companyID,
			ClientID:       client.ID,
			SaleKey:        saleKey,
			SaleAmount:     saleAmount,
			RequiredAmount: config.RequiredAmount,
			PointsToEarn:   config.PointsToEarn,
			EarnedPoints:   earned,
			Date:           time.Now(),
		}
		if err := s.pointsRepo.WithTx(tx).Insert(entry); err != nil {
			return err
		}
		return s.mappingRepo.WithTx(tx).AddPoints(mapping.ID, earned)
	})
	if err != nil {
		// A concurrent award with the same sale key slips past the pre-check
		// and surfaces here as a unique-constraint violation.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, s.resolveAwardConflict(companyID, saleKey, err)
		}
		s.log.WithFields(logrus.Fields{
			"company_id": companyID,
			"sale_key":   saleKey,
		}).WithError(err).Error("award transaction failed")
		return 0, storageError("could not award points", err)
	}
	return earned, nil
}

// resolveAwardConflict classifies a unique-constraint failure from the award
// transaction. Three indexes can raise it: the sale-key guard, the client
// phone index and the mapping pair index. Only the first means the sale was
// already recorded; the other two mean a concurrent first-sighting insert won
// and the whole award rolled back, so the caller must be told to retry, never
// that the sale exists.
func (s *PointsService) resolveAwardConflict(companyID uint, saleKey string, cause error) error {
	if _, err := s.pointsRepo.GetByCompanyIDSaleKey(companyID, saleKey); err == nil {
		return validationError(ReasonDuplicateSaleKey, "sale key already registered")
	}
	s.log.WithFields(logrus.Fields{
		"company_id": companyID,
		"sale_key":   saleKey,
	}).WithError(cause).Error("award lost a row conflict and rolled back")
	return storageError("could not award points", cause)
}

// calculateEarnedPoints converts a sale amount through the earning rule. The
// product is truncated toward zero, matching the recorded ledger history.
func calculateEarnedPoints(saleAmount, requiredAmount, pointsToEarn float64) float64 {
	if saleAmount < requiredAmount {
		return 0
	}
	return float64(int64(saleAmount / requiredAmount * pointsToEarn))
}
