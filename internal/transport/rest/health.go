package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	db  dbPinger
	log *slog.Logger
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: logger.With("handler", "health")}
}

// HealthResponse is the JSON body of /health and /ready.
type HealthResponse struct {
	OK        bool   `json:"ok"`
	Timestamp string `json:"timestamp,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Live always answers 200.
// GET /health
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		OK:        true,
		Timestamp: domain.FormatTimestamp(time.Now()),
	})
}

// Ready pings the database: 200 if reachable, 503 otherwise.
// GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.WarnContext(r.Context(), "database ping failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Error: "database unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		OK:        true,
		Timestamp: domain.FormatTimestamp(time.Now()),
	})
}
