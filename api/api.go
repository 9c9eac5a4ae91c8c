package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/spirit-symposium/event-registration/admin"
	"github.com/spirit-symposium/event-registration/email"
	"github.com/spirit-symposium/event-registration/registration"
)

type Environment string

const (
	LOCAL Environment = "local"
	PROD  Environment = "prod"
)

// DB is everything the handlers need from storage.
type DB interface {
	registration.Repository
	registration.SequenceAllocator
	admin.Repository
	Ping(ctx context.Context) error
}

type API struct {
	db          DB
	logger      *slog.Logger
	validate    *validator.Validate
	tokens      *admin.TokenIssuer
	emailSender email.Sender
	fromAddress string
	super       admin.SuperAdminConfig
	codeFormat  registration.CodeFormat
	env         Environment
	corsOrigin  string
}

type Config struct {
	Tokens      *admin.TokenIssuer
	EmailSender email.Sender
	FromAddress string
	SuperAdmin  admin.SuperAdminConfig
	CodeFormat  registration.CodeFormat
	Env         Environment
	CORSOrigin  string
}

func NewAPI(db DB, logger *slog.Logger, cfg Config) *API {
	return &API{
		db:          db,
		logger:      logger,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		tokens:      cfg.Tokens,
		emailSender: cfg.EmailSender,
		fromAddress: cfg.FromAddress,
		super:       cfg.SuperAdmin,
		codeFormat:  cfg.CodeFormat,
		env:         cfg.Env,
		corsOrigin:  cfg.CORSOrigin,
	}
}

// Routes wires every endpoint and the middleware chain.
func (a *API) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", a.health)
	mux.HandleFunc("GET /api/events", a.listEvents)

	mux.HandleFunc("POST /api/register", a.register)
	mux.HandleFunc("GET /api/registrations/{code}/invitation", a.invitationCard)

	mux.HandleFunc("POST /api/admin/login", a.adminLogin)
	mux.HandleFunc("POST /api/admin/register", a.adminRegister)
	mux.HandleFunc("GET /api/admin/registrations", a.listRegistrations)
	mux.HandleFunc("DELETE /api/admin/registrations/{id}", a.deleteRegistration)
	mux.HandleFunc("GET /api/admin/registrations/export", a.exportRegistrations)
	mux.HandleFunc("GET /api/admin/stats", a.stats)

	return useMiddlewares(mux,
		a.maxBodyMiddleware(),
		a.loggingMiddleware(),
		a.requestIdMiddleware(),
		a.corsMiddleware(),
	)
}
