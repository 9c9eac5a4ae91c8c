package api

import (
	"context"
	"log/slog"

	"github.com/spirit-symposium/event-registration/admin"
	"github.com/spirit-symposium/event-registration/email"
	"github.com/spirit-symposium/event-registration/registration"
)

var noopLogger = slog.New(slog.DiscardHandler)

type mockDB struct {
	CreateRegistrationFunc      func(ctx context.Context, reg *registration.Registration) error
	GetRegistrationsByEmailFunc func(ctx context.Context, email string) ([]registration.Registration, error)
	GetRegistrationByCodeFunc   func(ctx context.Context, code string) (registration.Registration, error)
	ListRegistrationsFunc       func(ctx context.Context, eventFilter string) ([]registration.Registration, error)
	DeleteRegistrationFunc      func(ctx context.Context, id string, eventFilter string) (registration.DeleteOutcome, error)
	NextSequenceFunc            func(ctx context.Context) (int64, error)
	CreateAdminFunc             func(ctx context.Context, a *admin.Admin) error
	GetAdminByCredentialsFunc   func(ctx context.Context, username, password string) (admin.Admin, error)
	PingFunc                    func(ctx context.Context) error
}

func (m *mockDB) CreateRegistration(ctx context.Context, reg *registration.Registration) error {
	if m.CreateRegistrationFunc != nil {
		return m.CreateRegistrationFunc(ctx, reg)
	}
	return nil
}

func (m *mockDB) GetRegistrationsByEmail(ctx context.Context, emailAddr string) ([]registration.Registration, error) {
	if m.GetRegistrationsByEmailFunc != nil {
		return m.GetRegistrationsByEmailFunc(ctx, emailAddr)
	}
	return nil, nil
}

func (m *mockDB) GetRegistrationByCode(ctx context.Context, code string) (registration.Registration, error) {
	return m.GetRegistrationByCodeFunc(ctx, code)
}

func (m *mockDB) ListRegistrations(ctx context.Context, eventFilter string) ([]registration.Registration, error) {
	return m.ListRegistrationsFunc(ctx, eventFilter)
}

func (m *mockDB) DeleteRegistration(ctx context.Context, id string, eventFilter string) (registration.DeleteOutcome, error) {
	return m.DeleteRegistrationFunc(ctx, id, eventFilter)
}

func (m *mockDB) NextSequence(ctx context.Context) (int64, error) {
	if m.NextSequenceFunc != nil {
		return m.NextSequenceFunc(ctx)
	}
	return 1, nil
}

func (m *mockDB) CreateAdmin(ctx context.Context, a *admin.Admin) error {
	return m.CreateAdminFunc(ctx, a)
}

func (m *mockDB) GetAdminByCredentials(ctx context.Context, username, password string) (admin.Admin, error) {
	if m.GetAdminByCredentialsFunc != nil {
		return m.GetAdminByCredentialsFunc(ctx, username, password)
	}
	return admin.Admin{}, admin.NewAdminNotFoundError(username)
}

func (m *mockDB) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

type mockEmailSender struct {
	SendEmailFunc func(ctx context.Context, e email.Email) error
}

func (m *mockEmailSender) SendEmail(ctx context.Context, e email.Email) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(ctx, e)
	}
	return nil
}

func testAPI(db *mockDB) *API {
	return NewAPI(db, noopLogger, Config{
		Tokens:      admin.NewTokenIssuer("test-secret"),
		EmailSender: &mockEmailSender{},
		FromAddress: "SPIRIT 2k26 <noreply@spirit2k26.in>",
		SuperAdmin:  admin.SuperAdminConfig{Username: "admin2k26", Password: "admin@2k26"},
		CodeFormat:  registration.CodeFormat{Prefix: "SP26-", Width: 4},
		Env:         LOCAL,
	})
}
