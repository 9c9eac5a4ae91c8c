package api

import (
	"net/http"

	"github.com/spirit-symposium/event-registration/admin"
	"github.com/spirit-symposium/event-registration/events"
	"github.com/spirit-symposium/event-registration/ptr"
	"github.com/spirit-symposium/event-registration/registration"
)

type statsResponse struct {
	Total       int            `json:"total"`
	Individual  int            `json:"individual"`
	Team        int            `json:"team"`
	ByGender    map[string]int `json:"byGender"`
	ByEvent     map[string]int `json:"byEvent"`
	// Revenue is only reported to the super admin.
	Revenue *int `json:"revenue,omitempty"`
}

func (a *API) stats(w http.ResponseWriter, r *http.Request) {
	logger := getLoggerFromCtx(r.Context())

	role := admin.ParseRole(r.URL.Query().Get("role"))

	regs, err := a.db.ListRegistrations(r.Context(), role.EventFilter())
	if err != nil {
		logger.Error("Failed to compute stats", "error", err, "role", role.String())
		a.writeError(w, http.StatusInternalServerError, "Failed to fetch registrations")
		return
	}

	resp := statsResponse{
		Total:    len(regs),
		ByGender: map[string]int{},
		ByEvent:  map[string]int{},
	}

	revenue := 0
	for _, reg := range regs {
		switch reg.RegType {
		case registration.TEAM:
			resp.Team++
		default:
			resp.Individual++
		}

		resp.ByGender[string(reg.Gender)]++
		for _, name := range reg.Events {
			resp.ByEvent[name]++
			if event, ok := events.ByName(name); ok {
				revenue += event.Fee
			}
		}
	}

	if role.IsAll() {
		resp.Revenue = ptr.Int(revenue)
	}

	a.writeJSON(w, http.StatusOK, resp)
}
