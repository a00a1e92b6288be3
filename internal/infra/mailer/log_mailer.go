package mailer

import (
	"context"

	"marketplace-orders/internal/usecase/shared"

	"go.uber.org/zap"
)

// LogMailer writes outgoing mail to the log instead of an SMTP relay.
type LogMailer struct {
	from   string
	logger *zap.Logger
}

func NewLogMailer(from string, logger *zap.Logger) *LogMailer {
	return &LogMailer{from: from, logger: logger}
}

func (m *LogMailer) Send(_ context.Context, mail shared.Mail) error {
	m.logger.Info("mail sent",
		zap.String("from", m.from),
		zap.String("to", mail.To),
		zap.String("subject", mail.Subject),
		zap.String("body", mail.Body),
	)
	return nil
}
