package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
	itemsvc "github.com/heartmarshall/habitplan-backend/internal/service/item"
)

const itemNotFound = "Item not found"

type itemService interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	CreateItem(ctx context.Context, input itemsvc.CreateItemInput) (*domain.Item, error)
	UpdateItem(ctx context.Context, input itemsvc.UpdateItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
	ListDependencies(ctx context.Context, itemID string) ([]domain.ItemRef, error)
	ReplaceDependencies(ctx context.Context, input itemsvc.ReplaceDependenciesInput) (int, error)
}

// ItemHandler serves /items and the per-item dependency list.
type ItemHandler struct {
	items itemService
	log   *slog.Logger
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(items itemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{items: items, log: logger.With("handler", "item")}
}

// List returns every item.
// GET /items
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.ListItems(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err, itemNotFound)
		return
	}
	writeJSON(w, http.StatusOK, mapRecords(items, toItemRecord))
}

// Get returns one item.
// GET /items/{id}
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.items.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.log, err, itemNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toItemRecord(*item))
}

// Create adds an item.
// POST /items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, err := readPayload(r)
	if err != nil {
		writeServiceError(w, r, h.log, err, itemNotFound)
		return
	}

	input := itemsvc.CreateItemInput{
		Title:        p.strOr("title", ""),
		Kind:         p.strOr("kind", ""),
		Measure:      p.strOr("measure", ""),
		MilestoneID:  p.strPtr("milestone_id"),
		ScheduleType: p.scheduleType(),
	}
	input.Priority, _ = p.integer("priority")
	input.SortOrder, _ = p.integer("sort_order")
	input.ScheduleValue, _ = toNumber(p.scheduleValue())

	item, err := h.items.CreateItem(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err, itemNotFound)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: item.ID})
}

// Update merges the recognized fields of the body into an item.
// PATCH /items/{id}
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, err := readPayload(r)
	if err != nil {
		writeServiceError(w, r, h.log, err, itemNotFound)
		return
	}

	_, err = h.items.UpdateItem(r.Context(), itemsvc.UpdateItemInput{
		ID:            chi.URLParam(r, "id"),
		Title:         p.strPtr("title"),
		Kind:          p.strPtr("kind"),
		Measure:       p.strPtr("measure"),
		MilestoneID:   p.nullable("milestone_id"),
		Priority:      intPtr(p["priority"]),
		ScheduleType:  p.scheduleType(),
		ScheduleValue: floatPtr(p.scheduleValue()),
		SortOrder:     intPtr(p["sort_order"]),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err, itemNotFound)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// Delete removes an item with its logs, sessions and dependency edges.
// DELETE /items/{id}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.items.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, h.log, err, itemNotFound)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// ListDependencies returns the items this item depends on.
// GET /items/{id}/dependencies
func (h *ItemHandler) ListDependencies(w http.ResponseWriter, r *http.Request) {
	refs, err := h.items.ListDependencies(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.log, err, itemNotFound)
		return
	}
	writeJSON(w, http.StatusOK, mapRecords(refs, func(ref domain.ItemRef) itemRefRecord {
		return itemRefRecord{ID: ref.ID, Title: ref.Title}
	}))
}

// ReplaceDependencies overwrites the dependency list of an item.
// PUT /items/{id}/dependencies
func (h *ItemHandler) ReplaceDependencies(w http.ResponseWriter, r *http.Request) {
	p, err := readPayload(r)
	if err != nil {
		writeServiceError(w, r, h.log, err, itemNotFound)
		return
	}

	n, err := h.items.ReplaceDependencies(r.Context(), itemsvc.ReplaceDependenciesInput{
		ItemID:    chi.URLParam(r, "id"),
		DependsOn: p.stringList("dependencies"),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err, itemNotFound)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{OK: true, Count: n})
}
