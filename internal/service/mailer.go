package service

import (
	"context"

	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/logger"
)

// Mailer delivers one-time codes to their owners
type Mailer interface {
	SendOTP(ctx context.Context, email, code string, purpose models.OTPPurpose) error
}

// LogMailer writes codes to the log instead of sending mail. It is meant for development and
// for deployments that deliver codes out of band.
type LogMailer struct {
	// RevealCode logs the plain code; leave false in production
	RevealCode bool
}

// SendOTP logs the delivery
func (m LogMailer) SendOTP(ctx context.Context, email, code string, purpose models.OTPPurpose) error {
	fields := map[string]interface{}{
		"to":      email,
		"purpose": purpose,
	}
	if m.RevealCode {
		fields["code"] = code
	}
	logger.WithContext(ctx).WithFields(fields).Info("one-time code issued")
	return nil
}
