package api

import (
	"errors"
	"net/http"

	"github.com/spirit-symposium/event-registration/admin"
	"github.com/spirit-symposium/event-registration/registration"
)

func (a *API) listRegistrations(w http.ResponseWriter, r *http.Request) {
	logger := getLoggerFromCtx(r.Context())

	role := admin.ParseRole(r.URL.Query().Get("role"))

	regs, err := a.db.ListRegistrations(r.Context(), role.EventFilter())
	if err != nil {
		logger.Error("Failed to list registrations", "error", err, "role", role.String())
		a.writeError(w, http.StatusInternalServerError, "Failed to fetch registrations")
		return
	}

	a.writeJSON(w, http.StatusOK, regs)
}

func (a *API) deleteRegistration(w http.ResponseWriter, r *http.Request) {
	logger := getLoggerFromCtx(r.Context())

	id := r.PathValue("id")
	role := admin.ParseRole(r.URL.Query().Get("role"))

	outcome, err := a.db.DeleteRegistration(r.Context(), id, role.EventFilter())
	if err != nil {
		var regErr *registration.Error
		if errors.As(err, &regErr) && regErr.Reason == registration.REASON_INVALID_REGISTRATION_ID {
			logger.Warn("Delete with malformed id", "id", id)
			a.writeError(w, http.StatusBadRequest, "Invalid registration id")
			return
		}

		logger.Error("Failed to delete registration", "error", err, "id", id, "role", role.String())
		a.writeError(w, http.StatusInternalServerError, "Failed to delete registration")
		return
	}

	logger.Info("Registration deleted", "id", id, "role", role.String(), "outcome", outcome)
	a.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
