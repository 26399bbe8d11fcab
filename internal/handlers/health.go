package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/job-listings/internal/logger"
	"github.com/sbilibin2017/job-listings/internal/models"
)

//go:generate mockgen -source=health.go -destination=mock_health.go -package=handlers

// Pinger checks that the store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler returns an HTTP handler reporting store availability.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, models.HealthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
	}
}
