package registration

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/spirit-symposium/event-registration/email"
)

//go:embed templates
var templates embed.FS

// SendConfirmationEmail mails the registrant their code and event list.
// Callers treat failure as best-effort: a lost email never unwinds a
// persisted registration.
func SendConfirmationEmail(ctx context.Context, sender email.Sender, fromAddress string, reg Registration) error {
	htmlBody, err := renderTemplate("templates/registration-confirmation.tmpl", reg)
	if err != nil {
		return err
	}

	textBody, err := renderTemplate("templates/registration-confirmation-textonly.tmpl", reg)
	if err != nil {
		return err
	}

	return sender.SendEmail(ctx, email.Email{
		FromAddress: fromAddress,
		ToAddresses: []string{reg.Email},
		Subject:     fmt.Sprintf("SPIRIT 2k26 registration confirmed - %s", reg.RegistrationID),
		HTMLBody:    htmlBody,
		TextBody:    textBody,
	})
}

func renderTemplate(name string, reg Registration) (string, error) {
	tmpl, err := template.ParseFS(templates, name)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{
		"Registration": reg,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}

	return buf.String(), nil
}
