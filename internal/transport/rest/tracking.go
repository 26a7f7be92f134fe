package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
	"github.com/heartmarshall/habitplan-backend/internal/service/tracking"
)

const logNotFound = "Log not found"

type trackingService interface {
	ListLogs(ctx context.Context, input tracking.ListInput) ([]domain.LogEntry, error)
	GetLog(ctx context.Context, id string) (*domain.LogEntry, error)
	CreateLog(ctx context.Context, input tracking.CreateLogInput) (*domain.LogEntry, error)
	DeleteLog(ctx context.Context, id string) error

	ListSessions(ctx context.Context, input tracking.ListInput) ([]domain.PomodoroSession, error)
	CreateSession(ctx context.Context, input tracking.CreateSessionInput) (*domain.PomodoroSession, error)
}

// TrackingHandler serves /logs and /pomodoro.
type TrackingHandler struct {
	tracking trackingService
	log      *slog.Logger
}

// NewTrackingHandler creates a TrackingHandler.
func NewTrackingHandler(svc trackingService, logger *slog.Logger) *TrackingHandler {
	return &TrackingHandler{tracking: svc, log: logger.With("handler", "tracking")}
}

// listInput reads item_id, start, end and limit from the query string.
func listInput(r *http.Request) tracking.ListInput {
	q := r.URL.Query()
	_, hasLimit := q["limit"]
	return tracking.ListInput{
		ItemID: q.Get("item_id"),
		Start:  q.Get("start"),
		End:    q.Get("end"),
		Limit:  domain.ParseListLimit(q.Get("limit"), hasLimit),
	}
}

// ----- Logs -----

// ListLogs returns logs, latest date first.
// GET /logs?item_id=&start=&end=&limit=
func (h *TrackingHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.tracking.ListLogs(r.Context(), listInput(r))
	if err != nil {
		writeServiceError(w, r, h.log, err, logNotFound)
		return
	}
	writeJSON(w, http.StatusOK, mapRecords(logs, toLogRecord))
}

// GetLog returns one log.
// GET /logs/{id}
func (h *TrackingHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	l, err := h.tracking.GetLog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.log, err, logNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toLogRecord(*l))
}

// CreateLog records progress on an item.
// POST /logs
func (h *TrackingHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	p, err := readPayload(r)
	if err != nil {
		writeServiceError(w, r, h.log, err, logNotFound)
		return
	}

	input := tracking.CreateLogInput{
		ItemID: truthyString(p["item_id"]),
		Date:   truthyString(p["date"]),
		Note:   p.strOr("note", ""),
	}
	if p.present("value") {
		input.Value = floatPtr(p["value"])
	}

	l, err := h.tracking.CreateLog(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err, logNotFound)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: l.ID})
}

// DeleteLog removes a log.
// DELETE /logs/{id}
func (h *TrackingHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	if err := h.tracking.DeleteLog(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, h.log, err, logNotFound)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// ----- Pomodoro -----

// ListSessions returns pomodoro sessions, most recently started first.
// GET /pomodoro?item_id=&start=&end=&limit=
func (h *TrackingHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.tracking.ListSessions(r.Context(), listInput(r))
	if err != nil {
		writeServiceError(w, r, h.log, err, "Session not found")
		return
	}
	writeJSON(w, http.StatusOK, mapRecords(sessions, toSessionRecord))
}

// CreateSession records a pomodoro session.
// POST /pomodoro
func (h *TrackingHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	p, err := readPayload(r)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Session not found")
		return
	}

	input := tracking.CreateSessionInput{
		ItemID:    p.strPtr("item_id"),
		Mode:      p.strOr("mode", ""),
		Status:    p.strOr("status", ""),
		StartedAt: p.strPtr("started_at"),
		EndedAt:   p.strPtr("ended_at"),
		Note:      p.strOr("note", ""),
	}
	input.DurationSeconds, _ = p.number("duration_seconds")

	s, err := h.tracking.CreateSession(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Session not found")
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: s.ID})
}

// truthyString renders a non-empty scalar as text. Empty strings, zero,
// false, null and containers read as "".
func truthyString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == 0 {
			return ""
		}
		return domain.StringifyValue(t)
	case bool:
		if t {
			return "true"
		}
	}
	return ""
}
