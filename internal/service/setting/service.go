package setting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

type settingRepo interface {
	All(ctx context.Context) ([]domain.Setting, error)
	Upsert(ctx context.Context, values map[string]string, at time.Time) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the flat key-value settings store.
type Service struct {
	settings settingRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Setting service.
func NewService(log *slog.Logger, settings settingRepo, tx txManager) *Service {
	return &Service{
		settings: settings,
		tx:       tx,
		log:      log.With("service", "setting"),
	}
}

// GetAll returns every setting as a key-value map. It is never nil.
func (s *Service) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := s.settings.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Value
	}
	return out, nil
}

// Save upserts every key of values and returns how many keys were written.
// An empty map is a no-op.
func (s *Service) Save(ctx context.Context, values map[string]string) (int, error) {
	if len(values) == 0 {
		return 0, nil
	}

	at := time.Now().UTC()
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.settings.Upsert(txCtx, values, at); err != nil {
			return fmt.Errorf("upsert settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "settings saved", slog.Int("count", len(values)))

	return len(values), nil
}
