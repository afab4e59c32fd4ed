package api

import (
	"net/http"

	"github.com/daybook-labs/daybook/internal/api/respond"
)

// CheckHealth handles GET /api/health.
func CheckHealth(w http.ResponseWriter, _ *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "daybook-gateway",
	})
}
