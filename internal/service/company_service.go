package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"monedero/internal/domain"
	"monedero/internal/models"
	"monedero/internal/repository"
	"monedero/pkg/cloudinary"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CompanyRegistration is the onboarding request for a new merchant.
type CompanyRegistration struct {
	CompanyName          string
	UserName             string
	Email                string
	Password             string
	PasswordConfirmation string
	Language             string
}

// CompanyService owns merchant onboarding and company-level queries.
// Registration creates the company, its default earning rule, a starter
// promotion and the first (inactive) staff account in one transaction.
type CompanyService struct {
	db              *gorm.DB
	companyRepo     *repository.CompanyRepository
	companyUserRepo *repository.CompanyUserRepository
	configRepo      *repository.PointsConfigurationRepository
	promotionRepo   *repository.PromotionConfigurationRepository
	clientRepo      *repository.ClientRepository
	cloud           cloudinary.Client
	validate        *validator.Validate
	log             *logrus.Logger
}

func NewCompanyService(
	db *gorm.DB,
	companyRepo *repository.CompanyRepository,
	companyUserRepo *repository.CompanyUserRepository,
	configRepo *repository.PointsConfigurationRepository,
	promotionRepo *repository.PromotionConfigurationRepository,
	clientRepo *repository.ClientRepository,
	cloud cloudinary.Client,
	log *logrus.Logger,
) *CompanyService {
	return &CompanyService{
		db:              db,
		companyRepo:     companyRepo,
		companyUserRepo: companyUserRepo,
		configRepo:      configRepo,
		promotionRepo:   promotionRepo,
		clientRepo:      clientRepo,
		cloud:           cloud,
		validate:        validator.New(),
		log:             log,
	}
}

// Register onboards a company. The returned activation key enables the staff
// account; delivering it by email is a boundary concern outside this service.
func (s *CompanyService) Register(reg CompanyRegistration) (uint, string, error) {
	if err := s.validateRegistration(reg); err != nil {
		return 0, "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, "", storageError("password hashing failed", err)
	}
	activationKey := newActivationKey()
	language := reg.Language
	if len(language) > 2 {
		language = language[:2]
	}

	var companyID uint
	err = s.db.Transaction(func(tx *gorm.DB) error {
		company := &models.Company{Name: reg.CompanyName}
		if err := s.companyRepo.WithTx(tx).Insert(company); err != nil {
			return err
		}
		companyID = company.ID
		if err := s.configRepo.WithTx(tx).Insert(&models.PointsConfiguration{
			CompanyID:      company.ID,
			RequiredAmount: domain.DefaultRequiredAmount,
			PointsToEarn:   domain.DefaultPointsToEarn,
		}); err != nil {
			return err
		}
		if err := s.promotionRepo.WithTx(tx).Insert(&models.PromotionConfiguration{
			CompanyID:      company.ID,
			Description:    domain.DefaultPromotionDescription,
			RequiredPoints: domain.DefaultPromotionThreshold,
		}); err != nil {
			return err
		}
		return s.companyUserRepo.WithTx(tx).Insert(&models.CompanyUser{
			CompanyID:     company.ID,
			Name:          reg.UserName,
			Email:         reg.Email,
			PasswordHash:  string(hash),
			Active:        false,
			ActivationKey: activationKey,
			Language:      language,
		})
	})
	if err != nil {
		s.log.WithError(err).Error("company registration failed")
		return 0, "", storageError("could not register company", err)
	}
	return companyID, activationKey, nil
}

// GetByCompanyID returns the company with a cache-busted logo URL so clients
// always see the latest upload.
func (s *CompanyService) GetByCompanyID(companyID uint) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.WithField("company_id", companyID).Error("no company has this id")
			return nil, validationError(ReasonCompanyNotFound, "company does not exist")
		}
		return nil, storageError("company lookup failed", err)
	}
	if company.UrlImageLogo != "" {
		company.UrlImageLogo = fmt.Sprintf("%s?%d", company.UrlImageLogo, time.Now().UnixMilli())
	}
	return company, nil
}

// GetPointsInCompanyByPhone lists the client's balance at every company.
func (s *CompanyService) GetPointsInCompanyByPhone(phoneNumber string) ([]models.PointsInCompany, error) {
	client, err := s.clientRepo.GetByPhone(phoneNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationError(ReasonPhoneNotFound, "phone number does not exist")
		}
		return nil, storageError("client lookup failed", err)
	}
	rows, err := s.companyRepo.GetPointsInCompanyByClientID(client.ID)
	if err != nil {
		return nil, storageError("points in company lookup failed", err)
	}
	return rows, nil
}

// UpdateLogo uploads a new logo and stores its delivery URL.
func (s *CompanyService) UpdateLogo(ctx context.Context, companyID uint, file io.Reader, contentType string) (string, error) {
	if _, ok := domain.AllowedLogoContentTypes[strings.ToLower(contentType)]; !ok {
		return "", validationError(ReasonInvalidLogoFile, "logo must be jpeg, png or gif")
	}
	if _, err := s.companyRepo.GetByID(companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", validationError(ReasonCompanyNotFound, "company does not exist")
		}
		return "", storageError("company lookup failed", err)
	}
	url, err := s.cloud.UploadLogo(ctx, file, fmt.Sprintf("company_%d", companyID))
	if err != nil {
		s.log.WithField("company_id", companyID).WithError(err).Error("logo upload failed")
		return "", storageError("could not upload logo", err)
	}
	if err := s.companyRepo.UpdateUrlImageLogo(companyID, url); err != nil {
		return "", storageError("could not store logo url", err)
	}
	return url, nil
}

func (s *CompanyService) validateRegistration(reg CompanyRegistration) error {
	if strings.TrimSpace(reg.CompanyName) == "" {
		return validationError(ReasonCompanyNameEmpty, "company name is empty")
	}
	if len(reg.Password) < 6 {
		return validationError(ReasonPasswordTooShort, "password must have at least 6 characters")
	}
	if reg.Password != reg.PasswordConfirmation {
		return validationError(ReasonPasswordMismatch, "password and confirmation are different")
	}
	if strings.TrimSpace(reg.Email) == "" {
		return validationError(ReasonEmailEmpty, "email is empty")
	}
	if err := s.validate.Var(reg.Email, "email"); err != nil {
		return validationError(ReasonEmailInvalid, "email is invalid")
	}
	if _, err := s.companyUserRepo.GetByEmail(reg.Email); err == nil {
		return validationError(ReasonEmailExists, "email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return storageError("email lookup failed", err)
	}
	return nil
}

func newActivationKey() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
