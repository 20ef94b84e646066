package handlers

import (
	"net/http"
)

// StatusOK is the only status the liveness endpoint reports
const StatusOK = "ok"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// Health handles GET /health. It touches no dependencies and cannot fail:
// a response means the process is up and serving.
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
}
