package handlers

import (
	"net/http"
	"time"
)

// Health answers the liveness probe at the site root.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":   true,
			"message":   "Portfolio API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
