package handlers

import (
	"net/http"
	"time"
)

// HealthHandler reports liveness and process uptime.
type HealthHandler struct {
	Started time.Time
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.Started).Seconds()),
	})
}
