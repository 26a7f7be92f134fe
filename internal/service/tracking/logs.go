package tracking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

// ListLogs returns logs, latest date first. Date bounds are compared
// against the stored date text without expansion.
func (s *Service) ListLogs(ctx context.Context, input ListInput) ([]domain.LogEntry, error) {
	logs, err := s.logs.List(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	return logs, nil
}

// GetLog returns a single log.
func (s *Service) GetLog(ctx context.Context, id string) (*domain.LogEntry, error) {
	l, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}
	return l, nil
}

// CreateLog records a new log. The item is not required to exist.
func (s *Service) CreateLog(ctx context.Context, input CreateLogInput) (*domain.LogEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	value := domain.DefaultLogValue
	if input.Value != nil {
		value = *input.Value
	}

	now := time.Now().UTC()
	l := &domain.LogEntry{
		ID:        uuid.NewString(),
		ItemID:    input.ItemID,
		Date:      input.Date,
		Value:     value,
		Note:      input.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.logs.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create log: %w", err)
	}

	s.log.InfoContext(ctx, "log created",
		slog.String("log_id", l.ID),
		slog.String("item_id", l.ItemID),
		slog.String("date", l.Date),
	)

	return l, nil
}

// DeleteLog removes a log.
func (s *Service) DeleteLog(ctx context.Context, id string) error {
	if err := s.logs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete log: %w", err)
	}

	s.log.InfoContext(ctx, "log deleted", slog.String("log_id", id))

	return nil
}
