package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"monedero/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []string
	to   []string
	err  error
}

func (s *fakeSender) Send(ctx context.Context, to, message string) error {
	if s.err != nil {
		return s.err
	}
	s.to = append(s.to, to)
	s.sent = append(s.sent, message)
	return nil
}

func (f *fixture) notificationService(sender *fakeSender) *NotificationService {
	return NewNotificationService(f.companyRepo, f.clientRepo, f.mappingRepo, sender, testLogger())
}

func TestSendAppAdMessage(t *testing.T) {
	f := newFixture(t)
	companyID := f.createCompany(t, 100, 1)
	clientID := f.enrollClient(t, companyID, testPhone, 1250.5)
	sender := &fakeSender{}
	svc := f.notificationService(sender)

	message, err := svc.SendAppAdMessage(context.Background(), companyID, testPhone)
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, message, sender.sent[0])
	assert.Equal(t, testPhone, sender.to[0])
	assert.Contains(t, message, "1250.5")
	assert.Contains(t, message, "Test Company")

	// Each client is messaged at most once.
	client, err := f.clientRepo.GetByPhone(testPhone)
	require.NoError(t, err)
	assert.Equal(t, clientID, client.ID)
	assert.False(t, client.CanReceivePromoSms)
}

func TestSendAppAdMessage_UnknownPhone(t *testing.T) {
	f := newFixture(t)
	companyID := f.createCompany(t, 100, 1)
	svc := f.notificationService(&fakeSender{})

	_, err := svc.SendAppAdMessage(context.Background(), companyID, "+12025550100")
	require.Error(t, err)
	assert.Equal(t, ReasonPhoneNotFound, ReasonOf(err))
}

func TestSendAppAdMessage_SenderFailure(t *testing.T) {
	f := newFixture(t)
	companyID := f.createCompany(t, 100, 1)
	f.enrollClient(t, companyID, testPhone, 100)
	svc := f.notificationService(&fakeSender{err: errors.New("gateway down")})

	_, err := svc.SendAppAdMessage(context.Background(), companyID, testPhone)
	require.Error(t, err)
	assert.Equal(t, ReasonSMSNotSent, ReasonOf(err))

	// Delivery failed, so the client stays eligible.
	client, getErr := f.clientRepo.GetByPhone(testPhone)
	require.NoError(t, getErr)
	assert.True(t, client.CanReceivePromoSms)
}

func TestBuildAppAdMessage(t *testing.T) {
	message := BuildAppAdMessage("Cafe Central", 1200)
	assert.Contains(t, message, "1200 points")
	assert.Contains(t, message, "Cafe Central")
	assert.LessOrEqual(t, len(message), domain.SMSMaxLength)

	// Fractions render with one decimal, no trailing zeros.
	assert.Contains(t, BuildAppAdMessage("Cafe", 2.50), "2.5 points")

	long := BuildAppAdMessage(strings.Repeat("x", 400), 99)
	assert.LessOrEqual(t, len(long), domain.SMSMaxLength)
}
