package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/spirit-symposium/event-registration/admin"
	"github.com/spirit-symposium/event-registration/export"
)

func (a *API) exportRegistrations(w http.ResponseWriter, r *http.Request) {
	logger := getLoggerFromCtx(r.Context())

	role := admin.ParseRole(r.URL.Query().Get("role"))
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "pdf" {
		a.writeError(w, http.StatusBadRequest, "Format must be csv or pdf")
		return
	}

	regs, err := a.db.ListRegistrations(r.Context(), role.EventFilter())
	if err != nil {
		logger.Error("Failed to list registrations for export", "error", err, "role", role.String())
		a.writeError(w, http.StatusInternalServerError, "Failed to fetch registrations")
		return
	}

	filename := fmt.Sprintf("registrations-%s.%s", time.Now().Format("2006-01-02"), format)

	// Render into a buffer first so a mid-render failure can still
	// produce a JSON error instead of a truncated attachment.
	var buf bytes.Buffer
	switch format {
	case "csv":
		err = export.WriteCSV(&buf, regs)
	case "pdf":
		title := "SPIRIT 2k26 Registrations"
		if !role.IsAll() {
			title = fmt.Sprintf("%s (%s)", title, role.String())
		}
		err = export.WritePDF(&buf, title, regs)
	}
	if err != nil {
		logger.Error("Failed to render export", "error", err, "format", format)
		a.writeError(w, http.StatusInternalServerError, "Failed to render export")
		return
	}

	contentType := "text/csv"
	if format == "pdf" {
		contentType = "application/pdf"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("Failed to write export body", "error", err)
	}
}
