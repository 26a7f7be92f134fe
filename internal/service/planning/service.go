package planning

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

type goalRepo interface {
	List(ctx context.Context, filter domain.GoalFilter) ([]domain.Goal, error)
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	Create(ctx context.Context, g *domain.Goal) error
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

type milestoneRepo interface {
	List(ctx context.Context, filter domain.MilestoneFilter) ([]domain.Milestone, error)
	GetByID(ctx context.Context, id string) (*domain.Milestone, error)
	IDsByGoal(ctx context.Context, goalID string) ([]string, error)
	Create(ctx context.Context, m *domain.Milestone) error
	Update(ctx context.Context, m *domain.Milestone) error
	Delete(ctx context.Context, id string) error
	DeleteByGoal(ctx context.Context, goalID string) (int64, error)
}

type itemLinker interface {
	ClearMilestone(ctx context.Context, milestoneIDs []string) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides goal and milestone operations.
type Service struct {
	goals      goalRepo
	milestones milestoneRepo
	items      itemLinker
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Planning service.
func NewService(
	log *slog.Logger,
	goals goalRepo,
	milestones milestoneRepo,
	items itemLinker,
	tx txManager,
) *Service {
	return &Service{
		goals:      goals,
		milestones: milestones,
		items:      items,
		tx:         tx,
		log:        log.With("service", "planning"),
	}
}
