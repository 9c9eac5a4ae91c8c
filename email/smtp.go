package email

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

var _ Sender = &SMTPSender{}

// SMTPSender delivers mail through a plain SMTP relay. Auth is skipped
// when no username is configured, which is what local relays expect.
type SMTPSender struct {
	config SMTPConfig
}

func NewSMTPSender(config SMTPConfig) *SMTPSender {
	return &SMTPSender{config: config}
}

func (s *SMTPSender) SendEmail(ctx context.Context, e Email) error {
	var auth smtp.Auth
	if s.config.Username != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	addr := net.JoinHostPort(s.config.Host, s.config.Port)

	// net/smtp has no context support; honor the deadline best we can
	// by checking before the blocking call.
	if deadline, ok := ctx.Deadline(); ok && time.Now().After(deadline) {
		return ctx.Err()
	}

	return smtp.SendMail(addr, auth, e.FromAddress, e.ToAddresses, encodeMessage(e))
}

// encodeMessage builds a multipart/alternative MIME message with the
// text part first so simple clients fall back to it.
func encodeMessage(e Email) []byte {
	boundary := fmt.Sprintf("boundary_%d", time.Now().UnixNano())

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", e.FromAddress)
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(e.ToAddresses, ", "))
	fmt.Fprintf(&buf, "Subject: %s\r\n", e.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	fmt.Fprintf(&buf, "--%s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n", boundary, e.TextBody)
	fmt.Fprintf(&buf, "--%s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n", boundary, e.HTMLBody)
	fmt.Fprintf(&buf, "--%s--\r\n", boundary)

	return buf.Bytes()
}
