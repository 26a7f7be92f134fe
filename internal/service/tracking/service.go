package tracking

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

type logRepo interface {
	List(ctx context.Context, filter domain.RangeFilter) ([]domain.LogEntry, error)
	GetByID(ctx context.Context, id string) (*domain.LogEntry, error)
	Create(ctx context.Context, l *domain.LogEntry) error
	Delete(ctx context.Context, id string) error
}

type sessionRepo interface {
	List(ctx context.Context, filter domain.RangeFilter) ([]domain.PomodoroSession, error)
	Create(ctx context.Context, s *domain.PomodoroSession) error
}

// Service records progress logs and pomodoro sessions.
type Service struct {
	logs     logRepo
	sessions sessionRepo
	log      *slog.Logger
}

// NewService creates a new Tracking service.
func NewService(log *slog.Logger, logs logRepo, sessions sessionRepo) *Service {
	return &Service{
		logs:     logs,
		sessions: sessions,
		log:      log.With("service", "tracking"),
	}
}
