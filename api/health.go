package api

import "net/http"

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	if err := a.db.Ping(r.Context()); err != nil {
		getLoggerFromCtx(r.Context()).Error("Health check failed", "error", err)
		a.writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "unhealthy"})
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}
