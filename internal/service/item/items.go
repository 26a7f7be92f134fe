package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

// ListItems returns every item, by sort order then newest first.
func (s *Service) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// GetItem returns a single item.
func (s *Service) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// CreateItem creates a new item and returns it.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	scheduleType := domain.DefaultScheduleType
	if input.ScheduleType != nil {
		scheduleType = *input.ScheduleType
	}

	now := time.Now().UTC()
	item := &domain.Item{
		ID:            uuid.NewString(),
		Title:         strings.TrimSpace(input.Title),
		Kind:          domain.Normalize(input.Kind, domain.ItemKindTodo),
		Measure:       domain.Normalize(input.Measure, domain.ItemMeasureCheck),
		MilestoneID:   input.MilestoneID,
		Priority:      input.Priority,
		ScheduleType:  scheduleType,
		ScheduleValue: input.ScheduleValue,
		SortOrder:     input.SortOrder,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.log.InfoContext(ctx, "item created",
		slog.String("item_id", item.ID),
		slog.String("kind", item.Kind.String()),
	)

	return item, nil
}

// UpdateItem merges input into the stored item and refreshes updated_at.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Item
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, getErr := s.items.GetByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get item: %w", getErr)
		}

		input.apply(item)
		item.UpdatedAt = time.Now().UTC()

		if updateErr := s.items.Update(txCtx, item); updateErr != nil {
			return fmt.Errorf("update item: %w", updateErr)
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item updated", slog.String("item_id", input.ID))

	return updated, nil
}
