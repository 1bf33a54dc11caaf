package service

import (
	"errors"

	"monedero/config"
	"monedero/internal/auth"
	"monedero/internal/models"
	"monedero/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService authenticates company users (merchant staff). Accounts start
// inactive and must be activated with the key issued at registration.
type AuthService struct {
	cfg             *config.Config
	companyUserRepo *repository.CompanyUserRepository
	log             *logrus.Logger
}

func NewAuthService(cfg *config.Config, companyUserRepo *repository.CompanyUserRepository, log *logrus.Logger) *AuthService {
	return &AuthService{cfg: cfg, companyUserRepo: companyUserRepo, log: log}
}

func (s *AuthService) Login(email, password string) (*models.CompanyUser, string, error) {
	user, err := s.companyUserRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", validationError(ReasonInvalidCredentials, "invalid email or password")
		}
		return nil, "", storageError("user lookup failed", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", validationError(ReasonInvalidCredentials, "invalid email or password")
	}
	if !user.Active {
		return nil, "", validationError(ReasonUserNotActive, "account has not been activated")
	}
	token, err := auth.GenerateAccessToken(&s.cfg.JWT, user.ID, user.CompanyID, user.Email)
	if err != nil {
		return nil, "", storageError("token generation failed", err)
	}
	return user, token, nil
}

// Activate enables the account matching the activation key.
func (s *AuthService) Activate(activationKey string) error {
	if activationKey == "" {
		return validationError(ReasonInvalidActivationKey, "activation key is invalid")
	}
	user, err := s.companyUserRepo.GetByActivationKey(activationKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return validationError(ReasonInvalidActivationKey, "activation key is invalid")
		}
		return storageError("activation lookup failed", err)
	}
	if err := s.companyUserRepo.Activate(user.ID); err != nil {
		return storageError("could not activate user", err)
	}
	s.log.WithField("company_user_id", user.ID).Info("company user activated")
	return nil
}
