package service

import (
	"context"
	"errors"
	"fmt"

	"monedero/internal/domain"
	"monedero/internal/repository"
	"monedero/pkg/sms"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const appDownloadURL = "https://goo.gl/JRssA6"

// NotificationService sends the promo SMS that advertises the mobile app to a
// client, then clears the client's promo-SMS eligibility so each client is
// messaged at most once.
type NotificationService struct {
	companyRepo *repository.CompanyRepository
	clientRepo  *repository.ClientRepository
	mappingRepo *repository.CompanyClientMappingRepository
	sender      sms.Sender
	log         *logrus.Logger
}

func NewNotificationService(
	companyRepo *repository.CompanyRepository,
	clientRepo *repository.ClientRepository,
	mappingRepo *repository.CompanyClientMappingRepository,
	sender sms.Sender,
	log *logrus.Logger,
) *NotificationService {
	return &NotificationService{
		companyRepo: companyRepo,
		clientRepo:  clientRepo,
		mappingRepo: mappingRepo,
		sender:      sender,
		log:         log,
	}
}

// SendAppAdMessage sends the promo SMS for one (company, client) pair and
// returns the message text that was sent.
func (s *NotificationService) SendAppAdMessage(ctx context.Context, companyID uint, phoneNumber string) (string, error) {
	company, err := s.companyRepo.GetByID(companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.WithField("company_id", companyID).Error("no company has this id")
			return "", validationError(ReasonCompanyNotFound, "company does not exist")
		}
		return "", storageError("company lookup failed", err)
	}
	client, err := s.clientRepo.GetByPhone(phoneNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", validationError(ReasonPhoneNotFound, "phone number does not exist")
		}
		return "", storageError("client lookup failed", err)
	}
	mapping, err := s.mappingRepo.GetByCompanyIDClientID(companyID, client.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", validationError(ReasonPhoneNotFound, "phone number does not exist")
		}
		return "", storageError("mapping lookup failed", err)
	}
	message := BuildAppAdMessage(company.Name, mapping.Points)
	if err := s.sender.Send(ctx, phoneNumber, message); err != nil {
		s.log.WithField("phone", phoneNumber).WithError(err).Error("promo sms send failed")
		return "", &Error{Kind: KindStorage, Reason: ReasonSMSNotSent, Message: "the message was not sent", Err: err}
	}
	s.log.WithField("phone", phoneNumber).Info("promo sms sent")
	if err := s.clientRepo.UpdateCanReceivePromoSms(client.ID, false); err != nil {
		return "", storageError("could not update promo sms flag", err)
	}
	return message, nil
}

// BuildAppAdMessage formats the promo SMS, trimming the company name so the
// whole message fits one 160-character segment. Point totals are rendered
// with at most one decimal and no trailing zeros.
func BuildAppAdMessage(companyName string, points float64) string {
	formatted := decimal.NewFromFloat(points).Round(1).String()
	withoutName := fmt.Sprintf("You have %s points at %s. Get the app: %s", formatted, "", appDownloadURL)
	maxNameLength := domain.SMSMaxLength - len(withoutName)
	name := companyName
	if maxNameLength <= 0 {
		name = ""
	} else if len(name) > maxNameLength {
		name = name[:maxNameLength]
	}
	return fmt.Sprintf("You have %s points at %s. Get the app: %s", formatted, name, appDownloadURL)
}
