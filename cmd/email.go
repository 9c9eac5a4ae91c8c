package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spirit-symposium/event-registration/api"
	"github.com/spirit-symposium/event-registration/email"
)

var _ email.Sender = &EmailLogger{}

// email.Sender that logs out the email contents for local dev
type EmailLogger struct {
	logger *slog.Logger
}

func (el *EmailLogger) SendEmail(ctx context.Context, e email.Email) error {
	el.logger.Info("email that would be sent",
		slog.String("to", fmt.Sprint(e.ToAddresses)),
		slog.String("subject", e.Subject),
	)

	return nil
}

func createEmailSender(logger *slog.Logger, env api.Environment) (email.Sender, error) {
	if env == api.LOCAL {
		return &EmailLogger{logger: logger}, nil
	}

	return email.NewSMTPSender(email.SMTPConfig{
		Host:     getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		Port:     getEnvOrDefault("SMTP_PORT", "587"),
		Username: getEnvOrDefault("SMTP_USERNAME", ""),
		Password: getEnvOrDefault("SMTP_PASSWORD", ""),
	}), nil
}
