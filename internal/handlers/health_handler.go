package handlers

import (
	"context"
	"net/http"
	"time"

	"francofolies/internal/db"
	"francofolies/internal/middleware"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

type dbHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status string   `json:"status"`
	DB     dbHealth `json:"db"`
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Check pings the database
// @Tags Health
// @Summary Service health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		middleware.Logger(r.Context()).Warn().Err(err).Msg("Health check: database ping failed")
		reason := "database ping failed"
		if db.IsUnavailable(err) {
			reason = "database unreachable"
		}
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "degraded",
			DB:     dbHealth{Status: "down", Error: reason},
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", DB: dbHealth{Status: "ok"}})
}
