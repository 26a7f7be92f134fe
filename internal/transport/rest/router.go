package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Items    *ItemHandler
	Plans    *PlanHandler
	Tracking *TrackingHandler
	Settings *SettingHandler
}

// NewRouter builds the chi router for the API. Paths are relative to the
// API prefix, which is stripped by middleware before routing.
func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	r.Get("/health", h.Health.Live)
	r.Get("/ready", h.Health.Ready)

	r.Route("/items", func(r chi.Router) {
		r.Get("/", h.Items.List)
		r.Post("/", h.Items.Create)
		r.Get("/{id}", h.Items.Get)
		r.Patch("/{id}", h.Items.Update)
		r.Delete("/{id}", h.Items.Delete)
		r.Get("/{id}/dependencies", h.Items.ListDependencies)
		r.Put("/{id}/dependencies", h.Items.ReplaceDependencies)
	})

	r.Route("/goals", func(r chi.Router) {
		r.Get("/", h.Plans.ListGoals)
		r.Post("/", h.Plans.CreateGoal)
		r.Get("/{id}", h.Plans.GetGoal)
		r.Patch("/{id}", h.Plans.UpdateGoal)
		r.Delete("/{id}", h.Plans.DeleteGoal)
	})

	r.Route("/milestones", func(r chi.Router) {
		r.Get("/", h.Plans.ListMilestones)
		r.Post("/", h.Plans.CreateMilestone)
		r.Get("/{id}", h.Plans.GetMilestone)
		r.Patch("/{id}", h.Plans.UpdateMilestone)
		r.Delete("/{id}", h.Plans.DeleteMilestone)
	})

	r.Route("/logs", func(r chi.Router) {
		r.Get("/", h.Tracking.ListLogs)
		r.Post("/", h.Tracking.CreateLog)
		r.Get("/{id}", h.Tracking.GetLog)
		r.Delete("/{id}", h.Tracking.DeleteLog)
	})

	r.Get("/pomodoro", h.Tracking.ListSessions)
	r.Post("/pomodoro", h.Tracking.CreateSession)

	r.Get("/settings", h.Settings.Get)
	r.Put("/settings", h.Settings.Put)

	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}
