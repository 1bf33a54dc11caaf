package service

import (
	"errors"

	"monedero/internal/models"
	"monedero/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AvailablePromotions is the eligibility result. NoneAvailable distinguishes
// "valid client, nothing unlocked yet" from an error.
type AvailablePromotions struct {
	Promotions    []models.PromotionConfiguration
	NoneAvailable bool
}

// PromotionService manages the promotion catalog and evaluates which
// promotions a client's balance has unlocked.
type PromotionService struct {
	promotionRepo *repository.PromotionConfigurationRepository
	mappingRepo   *repository.CompanyClientMappingRepository
	clientRepo    *repository.ClientRepository
	log           *logrus.Logger
}

func NewPromotionService(
	promotionRepo *repository.PromotionConfigurationRepository,
	mappingRepo *repository.CompanyClientMappingRepository,
	clientRepo *repository.ClientRepository,
	log *logrus.Logger,
) *PromotionService {
	return &PromotionService{
		promotionRepo: promotionRepo,
		mappingRepo:   mappingRepo,
		clientRepo:    clientRepo,
		log:           log,
	}
}

func (s *PromotionService) Insert(pc *models.PromotionConfiguration) (uint, error) {
	if err := s.promotionRepo.Insert(pc); err != nil {
		s.log.WithError(err).Error("promotion insert failed")
		return 0, storageError("could not add promotion", err)
	}
	return pc.ID, nil
}

func (s *PromotionService) GetByCompanyID(companyID uint) ([]models.PromotionConfiguration, error) {
	promotions, err := s.promotionRepo.GetByCompanyID(companyID)
	if err != nil {
		return nil, storageError("could not load promotions", err)
	}
	return promotions, nil
}

// GetAvailableByPhone returns the promotions the client's balance at the
// company has unlocked, in catalog order. An unknown phone and a known phone
// with no relationship to the company are indistinguishable to the caller:
// both fail with ReasonPhoneNotFound.
func (s *PromotionService) GetAvailableByPhone(companyID uint, phoneNumber string) (*AvailablePromotions, error) {
	client, err := s.clientRepo.GetByPhone(phoneNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationError(ReasonPhoneNotFound, "phone number does not exist")
		}
		return nil, storageError("client lookup failed", err)
	}
	mapping, err := s.mappingRepo.GetByCompanyIDClientID(companyID, client.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationError(ReasonPhoneNotFound, "phone number does not exist")
		}
		return nil, storageError("mapping lookup failed", err)
	}
	catalog, err := s.promotionRepo.GetByCompanyID(companyID)
	if err != nil {
		return nil, storageError("could not load promotions", err)
	}
	available := make([]models.PromotionConfiguration, 0, len(catalog))
	for _, promotion := range catalog {
		if promotion.RequiredPoints <= mapping.Points {
			available = append(available, promotion)
		}
	}
	return &AvailablePromotions{
		Promotions:    available,
		NoneAvailable: len(available) == 0,
	}, nil
}

// Delete removes one of the company's promotions. Deleting an id that does
// not exist, or that belongs to another company, is a reported failure, not a
// silent no-op.
func (s *PromotionService) Delete(companyID, promotionConfigurationID uint) error {
	deleted, err := s.promotionRepo.Delete(companyID, promotionConfigurationID)
	if err != nil {
		s.log.WithError(err).Error("promotion delete failed")
		return storageError("could not delete promotion", err)
	}
	if deleted == 0 {
		return validationError(ReasonPromotionNotDeleted, "the promotion could not be deleted")
	}
	return nil
}
