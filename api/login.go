package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/spirit-symposium/event-registration/admin"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

func (a *API) adminLogin(w http.ResponseWriter, r *http.Request) {
	logger := getLoggerFromCtx(r.Context())

	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Warn("Malformed login body", "error", err)
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := a.validate.Struct(body); err != nil {
		a.writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	role, err := admin.Authenticate(r.Context(), body.Username, body.Password, a.db, a.super)
	if err != nil {
		var adminErr *admin.Error
		if errors.As(err, &adminErr) && adminErr.Reason == admin.REASON_INVALID_CREDENTIALS {
			logger.Warn("Login rejected", "username", body.Username)
			a.writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		logger.Error("Failed to authenticate", "error", err)
		a.writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	token, err := a.tokens.Issue(body.Username, role)
	if err != nil {
		logger.Error("Failed to issue token", "error", err)
		a.writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	a.writeJSON(w, http.StatusOK, loginResponse{Success: true, Token: token, Role: role.String()})
}

type adminRegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (a *API) adminRegister(w http.ResponseWriter, r *http.Request) {
	logger := getLoggerFromCtx(r.Context())

	var body adminRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Warn("Malformed admin register body", "error", err)
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := a.validate.Struct(body); err != nil {
		logger.Warn("Admin register failed validation", "error", err)
		a.writeError(w, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	err := a.db.CreateAdmin(r.Context(), &admin.Admin{
		Username: body.Username,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		var adminErr *admin.Error
		if errors.As(err, &adminErr) && adminErr.Reason == admin.REASON_USERNAME_ALREADY_EXISTS {
			a.writeError(w, http.StatusBadRequest, "Username already exists")
			return
		}

		logger.Error("Failed to create admin", "error", err)
		a.writeError(w, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
