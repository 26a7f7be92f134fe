package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/habitplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitplan-backend/internal/adapter/postgres/dependency"
	"github.com/heartmarshall/habitplan-backend/internal/adapter/postgres/goal"
	itemrepo "github.com/heartmarshall/habitplan-backend/internal/adapter/postgres/item"
	"github.com/heartmarshall/habitplan-backend/internal/adapter/postgres/logentry"
	"github.com/heartmarshall/habitplan-backend/internal/adapter/postgres/milestone"
	"github.com/heartmarshall/habitplan-backend/internal/adapter/postgres/pomodoro"
	settingrepo "github.com/heartmarshall/habitplan-backend/internal/adapter/postgres/setting"
	"github.com/heartmarshall/habitplan-backend/internal/config"
	itemsvc "github.com/heartmarshall/habitplan-backend/internal/service/item"
	"github.com/heartmarshall/habitplan-backend/internal/service/planning"
	settingsvc "github.com/heartmarshall/habitplan-backend/internal/service/setting"
	"github.com/heartmarshall/habitplan-backend/internal/service/tracking"
	"github.com/heartmarshall/habitplan-backend/internal/transport/middleware"
	"github.com/heartmarshall/habitplan-backend/internal/transport/rest"
)

// NewHandler wires repositories, services and REST handlers over pool and
// wraps the router in the middleware stack.
func NewHandler(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) http.Handler {
	txm := postgres.NewTxManager(pool)

	// Repositories
	items := itemrepo.New(pool)
	deps := dependency.New(pool)
	goals := goal.New(pool)
	milestones := milestone.New(pool)
	logs := logentry.New(pool)
	sessions := pomodoro.New(pool)
	settings := settingrepo.New(pool)

	// Services
	itemService := itemsvc.NewService(logger, items, deps, logs, sessions, txm)
	planningService := planning.NewService(logger, goals, milestones, items, txm)
	trackingService := tracking.NewService(logger, logs, sessions)
	settingService := settingsvc.NewService(logger, settings, txm)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, logger),
		Items:    rest.NewItemHandler(itemService, logger),
		Plans:    rest.NewPlanHandler(planningService, logger),
		Tracking: rest.NewTrackingHandler(trackingService, logger),
		Settings: rest.NewSettingHandler(settingService, logger),
	})

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.StripPrefix(cfg.API.PathPrefix),
		middleware.BodyLimit(cfg.API.MaxBodyBytes),
	)(router)
}
