package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
	"github.com/heartmarshall/habitplan-backend/pkg/ctxutil"
)

type idResponse struct {
	ID string `json:"id"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type countResponse struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}

type updatedResponse struct {
	OK      bool `json:"ok"`
	Updated int  `json:"updated"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps a service error onto the HTTP contract:
// validation -> 400, not found -> 404 with notFound as the message,
// anything else is logged and answered with a bare 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, notFound string) {
	var ve *domain.ValidationError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Summary())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
