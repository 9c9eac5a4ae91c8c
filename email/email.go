// Package email defines the outbound mail contract and an SMTP-backed
// implementation of it.
package email

import "context"

type Email struct {
	FromAddress string
	ToAddresses []string
	Subject     string
	HTMLBody    string
	TextBody    string
}

type Sender interface {
	SendEmail(ctx context.Context, e Email) error
}
