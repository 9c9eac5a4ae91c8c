package api

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the envelope the legacy clients parse on failure.
type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func (a *API) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Error("Failed to encode response body", "error", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, statusCode int, message string) {
	a.writeJSON(w, statusCode, errorResponse{Error: message})
}

func (a *API) writeErrorWithDetails(w http.ResponseWriter, statusCode int, message string, details any) {
	a.writeJSON(w, statusCode, errorResponse{Error: message, Details: details})
}
