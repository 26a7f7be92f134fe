package planning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

// ListMilestones returns milestones matching filter, highest priority first.
func (s *Service) ListMilestones(ctx context.Context, filter domain.MilestoneFilter) ([]domain.Milestone, error) {
	ms, err := s.milestones.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	return ms, nil
}

// GetMilestone returns a single milestone.
func (s *Service) GetMilestone(ctx context.Context, id string) (*domain.Milestone, error) {
	m, err := s.milestones.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get milestone: %w", err)
	}
	return m, nil
}

// CreateMilestone creates a new milestone under a goal. The goal is not
// required to exist.
func (s *Service) CreateMilestone(ctx context.Context, input CreateMilestoneInput) (*domain.Milestone, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	m := &domain.Milestone{
		ID:        uuid.NewString(),
		GoalID:    input.GoalID,
		Title:     strings.TrimSpace(input.Title),
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Priority:  input.Priority,
		Status:    domain.Normalize(input.Status, domain.PlanStatusActive),
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.milestones.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create milestone: %w", err)
	}

	s.log.InfoContext(ctx, "milestone created",
		slog.String("milestone_id", m.ID),
		slog.String("goal_id", m.GoalID),
	)

	return m, nil
}

// UpdateMilestone merges input into the stored milestone and refreshes updated_at.
func (s *Service) UpdateMilestone(ctx context.Context, input UpdateMilestoneInput) (*domain.Milestone, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Milestone
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		m, getErr := s.milestones.GetByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get milestone: %w", getErr)
		}

		input.apply(m)
		m.UpdatedAt = time.Now().UTC()

		if updateErr := s.milestones.Update(txCtx, m); updateErr != nil {
			return fmt.Errorf("update milestone: %w", updateErr)
		}
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "milestone updated", slog.String("milestone_id", input.ID))

	return updated, nil
}

// DeleteMilestone unlinks items from the milestone, then removes it.
// The unlink is committed even when the milestone does not exist, in which
// case ErrNotFound is returned.
func (s *Service) DeleteMilestone(ctx context.Context, id string) error {
	var (
		unlinked int64
		missing  error
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if unlinked, err = s.items.ClearMilestone(txCtx, []string{id}); err != nil {
			return fmt.Errorf("unlink items: %w", err)
		}
		if err := s.milestones.Delete(txCtx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				missing = err
				return nil
			}
			return fmt.Errorf("delete milestone: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if missing != nil {
		s.log.InfoContext(ctx, "milestone not found, items unlinked",
			slog.String("milestone_id", id),
			slog.Int64("items_unlinked", unlinked),
		)
		return fmt.Errorf("delete milestone: %w", missing)
	}

	s.log.InfoContext(ctx, "milestone deleted",
		slog.String("milestone_id", id),
		slog.Int64("items_unlinked", unlinked),
	)

	return nil
}
