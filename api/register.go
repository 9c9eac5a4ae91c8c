package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/spirit-symposium/event-registration/registration"
)

type registerRequest struct {
	RegType           string   `json:"regType" validate:"required,oneof=Individual Team"`
	TeamName          string   `json:"teamName" validate:"required_if=RegType Team"`
	TeamMembers       string   `json:"teamMembers"`
	MemberNames       []string `json:"memberNames"`
	Name              string   `json:"name" validate:"required"`
	College           string   `json:"college" validate:"required"`
	Department        string   `json:"department" validate:"required"`
	Year              string   `json:"year" validate:"required"`
	Gender            string   `json:"gender" validate:"required,oneof=Male Female Other"`
	// Email and phone formats are enforced by the client form; the
	// server only requires presence so legacy payloads keep working.
	Phone             string   `json:"phone" validate:"required"`
	Email             string   `json:"email" validate:"required"`
	Events            []string `json:"events" validate:"required,min=1,max=3"`
	PaymentScreenshot string   `json:"paymentScreenshot"`
}

type registerResponse struct {
	Success      bool                      `json:"success"`
	Registration registration.Registration `json:"registration"`
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	logger := getLoggerFromCtx(r.Context())

	var body registerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Warn("Malformed registration body", "error", err)
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := a.validate.Struct(body); err != nil {
		logger.Warn("Registration failed validation", "error", err)

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			fields := make([]string, 0, len(validationErrs))
			for _, fieldErr := range validationErrs {
				fields = append(fields, fieldErr.Field())
			}
			a.writeErrorWithDetails(w, http.StatusBadRequest, "Validation failed", fields)
			return
		}

		a.writeError(w, http.StatusBadRequest, "Validation failed")
		return
	}

	reg := &registration.Registration{
		RegType:           registration.RegType(body.RegType),
		TeamName:          body.TeamName,
		TeamMembers:       body.TeamMembers,
		MemberNames:       body.MemberNames,
		Name:              body.Name,
		College:           body.College,
		Department:        body.Department,
		Year:              body.Year,
		Gender:            registration.Gender(body.Gender),
		Phone:             body.Phone,
		Email:             body.Email,
		Events:            body.Events,
		PaymentScreenshot: body.PaymentScreenshot,
	}

	err := registration.Submit(r.Context(), reg, a.db, a.db, a.codeFormat)
	if err != nil {
		var regErr *registration.Error
		if errors.As(err, &regErr) {
			switch regErr.Reason {
			case registration.REASON_DUPLICATE_SYMPOSIUM,
				registration.REASON_DUPLICATE_ONLINE_GAME,
				registration.REASON_INVALID_EVENT_SELECTION:
				logger.Warn("Registration rejected", "reason", regErr.Reason, "email", reg.Email)
				a.writeError(w, http.StatusBadRequest, regErr.Message)
				return
			}
		}

		logger.Error("Failed to register", "error", err)
		a.writeErrorWithDetails(w, http.StatusInternalServerError, "Registration failed", err.Error())
		return
	}

	// Confirmation email is best effort, the registration is already
	// persisted and must be reported as a success.
	if err := registration.SendConfirmationEmail(r.Context(), a.emailSender, a.fromAddress, *reg); err != nil {
		logger.Error("Failed to send confirmation email", "error", err, "code", reg.RegistrationID)
	}

	a.writeJSON(w, http.StatusOK, registerResponse{Success: true, Registration: *reg})
}
