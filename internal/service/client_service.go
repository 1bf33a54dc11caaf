package service

import (
	"errors"

	"monedero/internal/models"
	"monedero/internal/repository"
	"monedero/pkg/phone"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ClientService registers clients with companies and answers client lookups.
type ClientService struct {
	db          *gorm.DB
	clientRepo  *repository.ClientRepository
	mappingRepo *repository.CompanyClientMappingRepository
	validator   phone.Validator
	log         *logrus.Logger
}

func NewClientService(
	db *gorm.DB,
	clientRepo *repository.ClientRepository,
	mappingRepo *repository.CompanyClientMappingRepository,
	validator phone.Validator,
	log *logrus.Logger,
) *ClientService {
	return &ClientService{
		db:          db,
		clientRepo:  clientRepo,
		mappingRepo: mappingRepo,
		validator:   validator,
		log:         log,
	}
}

// Register links a phone number to a company. The client row may already
// exist from another company; only the mapping must be new.
func (s *ClientService) Register(companyID uint, phoneNumber string) (uint, error) {
	if err := s.validator.Validate(phoneNumber); err != nil {
		return 0, validationError(ReasonInvalidPhone, "invalid phone number")
	}
	existing, err := s.clientRepo.GetByPhone(phoneNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, storageError("client lookup failed", err)
	}
	if existing != nil {
		if _, err := s.mappingRepo.GetByCompanyIDClientID(companyID, existing.ID); err == nil {
			return 0, validationError(ReasonClientAlreadyExists, "the client already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, storageError("mapping lookup failed", err)
		}
	}

	var clientID uint
	err = s.db.Transaction(func(tx *gorm.DB) error {
		client, err := s.clientRepo.WithTx(tx).FindOrCreateByPhone(phoneNumber)
		if err != nil {
			return err
		}
		clientID = client.ID
		return s.mappingRepo.WithTx(tx).Insert(&models.CompanyClientMapping{
			CompanyID: companyID,
			ClientID:  client.ID,
			Points:    0,
		})
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, s.resolveRegisterConflict(companyID, phoneNumber, err)
		}
		s.log.WithField("company_id", companyID).WithError(err).Error("client registration failed")
		return 0, storageError("could not register client", err)
	}
	return clientID, nil
}

// resolveRegisterConflict classifies a unique-constraint failure from the
// registration transaction. The client already exists only if the mapping row
// is really there; a lost race on the client phone index rolls everything
// back and must be reported as a retryable failure.
func (s *ClientService) resolveRegisterConflict(companyID uint, phoneNumber string, cause error) error {
	if client, err := s.clientRepo.GetByPhone(phoneNumber); err == nil {
		if _, err := s.mappingRepo.GetByCompanyIDClientID(companyID, client.ID); err == nil {
			return validationError(ReasonClientAlreadyExists, "the client already exists")
		}
	}
	s.log.WithField("company_id", companyID).WithError(cause).Error("client registration lost a row conflict and rolled back")
	return storageError("could not register client", cause)
}

// GetByCompanyID lists the company's clients with their balances.
func (s *ClientService) GetByCompanyID(companyID uint) ([]models.CompanyClientMapping, error) {
	mappings, err := s.clientRepo.GetByCompanyID(companyID)
	if err != nil {
		return nil, storageError("could not load clients", err)
	}
	return mappings, nil
}

// GetByCompanyIDPhone returns one client's balance at the company.
func (s *ClientService) GetByCompanyIDPhone(companyID uint, phoneNumber string) (*models.CompanyClientMapping, error) {
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
	return mapping, nil
}
