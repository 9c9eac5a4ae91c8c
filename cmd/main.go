package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spirit-symposium/event-registration/admin"
	"github.com/spirit-symposium/event-registration/api"
	"github.com/spirit-symposium/event-registration/mongo"
	"github.com/spirit-symposium/event-registration/registration"
)

func main() {
	// Missing .env is fine, real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	env := api.Environment(getEnvOrDefault("ENV", string(api.LOCAL)))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connector := mongo.NewConnector(getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"))
	client, err := connector.Ensure(ctx)
	if err != nil {
		return fmt.Errorf("connecting to mongo: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = connector.Disconnect(ctx)
	}()

	db := mongo.NewDB(client.Database(getEnvOrDefault("MONGODB_DATABASE", "symposium")))
	if err := db.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensuring indexes: %w", err)
	}

	emailSender, err := createEmailSender(logger, env)
	if err != nil {
		return fmt.Errorf("creating email sender: %w", err)
	}

	codeWidth, err := strconv.Atoi(getEnvOrDefault("REGISTRATION_CODE_WIDTH", "4"))
	if err != nil {
		return fmt.Errorf("parsing REGISTRATION_CODE_WIDTH: %w", err)
	}

	eventAPI := api.NewAPI(db, logger, api.Config{
		Tokens:      admin.NewTokenIssuer(getEnvOrDefault("JWT_SECRET", "dev-secret-change-me")),
		EmailSender: emailSender,
		FromAddress: getEnvOrDefault("SMTP_FROM", "SPIRIT 2k26 <noreply@spirit2k26.in>"),
		SuperAdmin: admin.SuperAdminConfig{
			Username: getEnvOrDefault("SUPER_ADMIN_USERNAME", "admin2k26"),
			Password: getEnvOrDefault("SUPER_ADMIN_PASSWORD", "admin@2k26"),
		},
		CodeFormat: registration.CodeFormat{
			Prefix: getEnvOrDefault("REGISTRATION_CODE_PREFIX", "SP26-"),
			Width:  codeWidth,
		},
		Env:        env,
		CORSOrigin: getEnvOrDefault("CORS_ALLOWED_ORIGIN", "https://spirit2k26.in"),
	})

	addr := net.JoinHostPort(getEnvOrDefault("HOST", "0.0.0.0"), getEnvOrDefault("PORT", "8080"))
	s := &http.Server{
		Handler:           eventAPI.Routes(),
		Addr:              addr,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	logger.Info("Server listening", "addr", addr, "env", env)
	return s.ListenAndServe()
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return defaultVal
}
