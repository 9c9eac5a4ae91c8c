package api

import (
	"net/http"

	"github.com/spirit-symposium/event-registration/events"
)

func (a *API) listEvents(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, events.Catalog)
}
