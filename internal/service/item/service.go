package item

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

type itemRepo interface {
	List(ctx context.Context) ([]domain.Item, error)
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	Create(ctx context.Context, item *domain.Item) error
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id string) error
}

type dependencyRepo interface {
	ListTargets(ctx context.Context, itemID string) ([]domain.ItemRef, error)
	DeleteOutgoing(ctx context.Context, itemID string) (int64, error)
	DeleteTouching(ctx context.Context, itemID string) (int64, error)
	InsertMany(ctx context.Context, itemID string, targets []string, at time.Time) (int64, error)
}

type logRepo interface {
	DeleteByItem(ctx context.Context, itemID string) (int64, error)
}

type sessionRepo interface {
	DeleteByItem(ctx context.Context, itemID string) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides item and dependency-graph operations.
type Service struct {
	items    itemRepo
	deps     dependencyRepo
	logs     logRepo
	sessions sessionRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Item service.
func NewService(
	log *slog.Logger,
	items itemRepo,
	deps dependencyRepo,
	logs logRepo,
	sessions sessionRepo,
	tx txManager,
) *Service {
	return &Service{
		items:    items,
		deps:     deps,
		logs:     logs,
		sessions: sessions,
		tx:       tx,
		log:      log.With("service", "item"),
	}
}
