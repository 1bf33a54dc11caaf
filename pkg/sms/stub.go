package sms

import (
	"context"

	"github.com/sirupsen/logrus"
)

// StubSender logs instead of sending. Used in development and in any
// environment without gateway credentials.
type StubSender struct {
	log *logrus.Logger
}

func NewStubSender(log *logrus.Logger) *StubSender {
	return &StubSender{log: log}
}

func (s *StubSender) Send(ctx context.Context, to, message string) error {
	s.log.WithFields(logrus.Fields{
		"to":  to,
		"len": len(message),
	}).Info("sms stub: message not sent")
	return nil
}
