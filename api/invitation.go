package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/spirit-symposium/event-registration/invitation"
	"github.com/spirit-symposium/event-registration/registration"
)

func (a *API) invitationCard(w http.ResponseWriter, r *http.Request) {
	logger := getLoggerFromCtx(r.Context())

	code := r.PathValue("code")

	reg, err := a.db.GetRegistrationByCode(r.Context(), code)
	if err != nil {
		var regErr *registration.Error
		if errors.As(err, &regErr) && regErr.Reason == registration.REASON_REGISTRATION_NOT_FOUND {
			a.writeError(w, http.StatusNotFound, "Registration not found")
			return
		}

		logger.Error("Failed to fetch registration for invitation", "error", err, "code", code)
		a.writeError(w, http.StatusInternalServerError, "Failed to fetch registration")
		return
	}

	var buf bytes.Buffer
	if err := invitation.Write(&buf, reg); err != nil {
		logger.Error("Failed to render invitation", "error", err, "code", code)
		a.writeError(w, http.StatusInternalServerError, "Failed to render invitation")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("invitation-%s.pdf", code)))
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("Failed to write invitation body", "error", err)
	}
}
