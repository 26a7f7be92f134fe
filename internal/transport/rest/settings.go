package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

type settingService interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, values map[string]string) (int, error)
}

// SettingHandler serves the key-value store under /settings.
type SettingHandler struct {
	settings settingService
	log      *slog.Logger
}

// NewSettingHandler creates a SettingHandler.
func NewSettingHandler(settings settingService, logger *slog.Logger) *SettingHandler {
	return &SettingHandler{settings: settings, log: logger.With("handler", "setting")}
}

// Get returns every setting as a flat object.
// GET /settings
func (h *SettingHandler) Get(w http.ResponseWriter, r *http.Request) {
	values, err := h.settings.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err, "Setting not found")
		return
	}
	writeJSON(w, http.StatusOK, values)
}

// Put upserts every key of the body. Values are stored in their string form.
// A body that is valid JSON but not an object is rejected.
// PUT /settings
func (h *SettingHandler) Put(w http.ResponseWriter, r *http.Request) {
	body, err := readJSON(r)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Setting not found")
		return
	}

	obj, ok := body.(map[string]any)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	values := make(map[string]string, len(obj))
	for k, v := range obj {
		values[k] = domain.StringifyValue(v)
	}

	n, err := h.settings.Save(r.Context(), values)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Setting not found")
		return
	}
	writeJSON(w, http.StatusOK, updatedResponse{OK: true, Updated: n})
}
