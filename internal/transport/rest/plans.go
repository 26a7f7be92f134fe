package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
	"github.com/heartmarshall/habitplan-backend/internal/service/planning"
)

const (
	goalNotFound      = "Goal not found"
	milestoneNotFound = "Milestone not found"
)

type planningService interface {
	ListGoals(ctx context.Context, filter domain.GoalFilter) ([]domain.Goal, error)
	GetGoal(ctx context.Context, id string) (*domain.Goal, error)
	CreateGoal(ctx context.Context, input planning.CreateGoalInput) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, input planning.UpdateGoalInput) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, id string) error

	ListMilestones(ctx context.Context, filter domain.MilestoneFilter) ([]domain.Milestone, error)
	GetMilestone(ctx context.Context, id string) (*domain.Milestone, error)
	CreateMilestone(ctx context.Context, input planning.CreateMilestoneInput) (*domain.Milestone, error)
	UpdateMilestone(ctx context.Context, input planning.UpdateMilestoneInput) (*domain.Milestone, error)
	DeleteMilestone(ctx context.Context, id string) error
}

// PlanHandler serves /goals and /milestones.
type PlanHandler struct {
	plans planningService
	log   *slog.Logger
}

// NewPlanHandler creates a PlanHandler.
func NewPlanHandler(plans planningService, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{plans: plans, log: logger.With("handler", "planning")}
}

// ----- Goals -----

// ListGoals returns goals, optionally narrowed by period and status.
// Unknown filter values are ignored.
// GET /goals?period=&status=
func (h *PlanHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var filter domain.GoalFilter
	if p := domain.GoalPeriod(q.Get("period")); p.IsValid() {
		filter.Period = &p
	}
	if s := domain.PlanStatus(q.Get("status")); s.IsValid() {
		filter.Status = &s
	}

	goals, err := h.plans.ListGoals(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, h.log, err, goalNotFound)
		return
	}
	writeJSON(w, http.StatusOK, mapRecords(goals, toGoalRecord))
}

// GetGoal returns one goal.
// GET /goals/{id}
func (h *PlanHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	g, err := h.plans.GetGoal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.log, err, goalNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toGoalRecord(*g))
}

// CreateGoal adds a goal.
// POST /goals
func (h *PlanHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	p, err := readPayload(r)
	if err != nil {
		writeServiceError(w, r, h.log, err, goalNotFound)
		return
	}

	input := planning.CreateGoalInput{
		Title:     p.strOr("title", ""),
		Period:    p.strOr("period", ""),
		Status:    p.strOr("status", ""),
		StartDate: p.strPtr("start_date"),
		EndDate:   p.strPtr("end_date"),
		Notes:     p.strOr("notes", ""),
	}
	input.Priority, _ = p.integer("priority")

	g, err := h.plans.CreateGoal(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err, goalNotFound)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: g.ID})
}

// UpdateGoal merges the recognized fields of the body into a goal.
// PATCH /goals/{id}
func (h *PlanHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	p, err := readPayload(r)
	if err != nil {
		writeServiceError(w, r, h.log, err, goalNotFound)
		return
	}

	_, err = h.plans.UpdateGoal(r.Context(), planning.UpdateGoalInput{
		ID:        chi.URLParam(r, "id"),
		Title:     p.strPtr("title"),
		Period:    p.truthyPtr("period"),
		Status:    p.truthyPtr("status"),
		StartDate: p.nullable("start_date"),
		EndDate:   p.nullable("end_date"),
		Priority:  intPtr(p["priority"]),
		Notes:     p.strPtr("notes"),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err, goalNotFound)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// DeleteGoal removes a goal and its milestones.
// DELETE /goals/{id}
func (h *PlanHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := h.plans.DeleteGoal(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, h.log, err, goalNotFound)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// ----- Milestones -----

// ListMilestones returns milestones, optionally for one goal.
// GET /milestones?goal_id=
func (h *PlanHandler) ListMilestones(w http.ResponseWriter, r *http.Request) {
	ms, err := h.plans.ListMilestones(r.Context(), domain.MilestoneFilter{
		GoalID: r.URL.Query().Get("goal_id"),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err, milestoneNotFound)
		return
	}
	writeJSON(w, http.StatusOK, mapRecords(ms, toMilestoneRecord))
}

// GetMilestone returns one milestone.
// GET /milestones/{id}
func (h *PlanHandler) GetMilestone(w http.ResponseWriter, r *http.Request) {
	m, err := h.plans.GetMilestone(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, h.log, err, milestoneNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toMilestoneRecord(*m))
}

// CreateMilestone adds a milestone to a goal.
// POST /milestones
func (h *PlanHandler) CreateMilestone(w http.ResponseWriter, r *http.Request) {
	p, err := readPayload(r)
	if err != nil {
		writeServiceError(w, r, h.log, err, milestoneNotFound)
		return
	}

	input := planning.CreateMilestoneInput{
		GoalID:    p.strOr("goal_id", ""),
		Title:     p.strOr("title", ""),
		Status:    p.strOr("status", ""),
		StartDate: p.strPtr("start_date"),
		EndDate:   p.strPtr("end_date"),
		Notes:     p.strOr("notes", ""),
	}
	input.Priority, _ = p.integer("priority")

	m, err := h.plans.CreateMilestone(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err, milestoneNotFound)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: m.ID})
}

// UpdateMilestone merges the recognized fields of the body into a milestone.
// goal_id in the body is ignored.
// PATCH /milestones/{id}
func (h *PlanHandler) UpdateMilestone(w http.ResponseWriter, r *http.Request) {
	p, err := readPayload(r)
	if err != nil {
		writeServiceError(w, r, h.log, err, milestoneNotFound)
		return
	}

	_, err = h.plans.UpdateMilestone(r.Context(), planning.UpdateMilestoneInput{
		ID:        chi.URLParam(r, "id"),
		Title:     p.strPtr("title"),
		Status:    p.truthyPtr("status"),
		StartDate: p.nullable("start_date"),
		EndDate:   p.nullable("end_date"),
		Priority:  intPtr(p["priority"]),
		Notes:     p.strPtr("notes"),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err, milestoneNotFound)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// DeleteMilestone unlinks items from a milestone and removes it.
// DELETE /milestones/{id}
func (h *PlanHandler) DeleteMilestone(w http.ResponseWriter, r *http.Request) {
	if err := h.plans.DeleteMilestone(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, h.log, err, milestoneNotFound)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
