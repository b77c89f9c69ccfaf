package handlers

import (
	"net/http"
	"time"
)

// HealthResponse represents the service health
// swagger:model HealthResponse
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
}

// NewHealthHandler returns an HTTP handler reporting service health and uptime.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service health"
// @Router /api/health [get]
func NewHealthHandler(start time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Uptime:    time.Since(start).Round(time.Second).String(),
		})
	}
}
