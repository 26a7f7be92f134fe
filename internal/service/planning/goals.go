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

// ListGoals returns goals matching filter, highest priority first.
func (s *Service) ListGoals(ctx context.Context, filter domain.GoalFilter) ([]domain.Goal, error) {
	goals, err := s.goals.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

// GetGoal returns a single goal.
func (s *Service) GetGoal(ctx context.Context, id string) (*domain.Goal, error) {
	g, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return g, nil
}

// CreateGoal creates a new goal and returns it.
func (s *Service) CreateGoal(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	g := &domain.Goal{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(input.Title),
		Period:    domain.Normalize(input.Period, domain.GoalPeriodLongterm),
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Priority:  input.Priority,
		Status:    domain.Normalize(input.Status, domain.PlanStatusActive),
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.goals.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}

	s.log.InfoContext(ctx, "goal created",
		slog.String("goal_id", g.ID),
		slog.String("period", g.Period.String()),
	)

	return g, nil
}

// UpdateGoal merges input into the stored goal and refreshes updated_at.
func (s *Service) UpdateGoal(ctx context.Context, input UpdateGoalInput) (*domain.Goal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Goal
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		g, getErr := s.goals.GetByID(txCtx, input.ID)
		if getErr != nil {
			return fmt.Errorf("get goal: %w", getErr)
		}

		input.apply(g)
		g.UpdatedAt = time.Now().UTC()

		if updateErr := s.goals.Update(txCtx, g); updateErr != nil {
			return fmt.Errorf("update goal: %w", updateErr)
		}
		updated = g
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "goal updated", slog.String("goal_id", input.ID))

	return updated, nil
}

// DeleteGoal removes a goal and its milestones, unlinking any items that
// pointed at those milestones. The milestone cleanup is committed even when
// the goal itself does not exist, in which case ErrNotFound is returned.
func (s *Service) DeleteGoal(ctx context.Context, id string) error {
	var (
		unlinked, milestonesDeleted int64
		missing                     error
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ids, err := s.milestones.IDsByGoal(txCtx, id)
		if err != nil {
			return fmt.Errorf("list goal milestones: %w", err)
		}

		if unlinked, err = s.items.ClearMilestone(txCtx, ids); err != nil {
			return fmt.Errorf("unlink items: %w", err)
		}
		if milestonesDeleted, err = s.milestones.DeleteByGoal(txCtx, id); err != nil {
			return fmt.Errorf("delete goal milestones: %w", err)
		}
		if err := s.goals.Delete(txCtx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				missing = err
				return nil
			}
			return fmt.Errorf("delete goal: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if missing != nil {
		s.log.InfoContext(ctx, "goal not found, orphans cleaned up",
			slog.String("goal_id", id),
			slog.Int64("milestones_deleted", milestonesDeleted),
			slog.Int64("items_unlinked", unlinked),
		)
		return fmt.Errorf("delete goal: %w", missing)
	}

	s.log.InfoContext(ctx, "goal deleted",
		slog.String("goal_id", id),
		slog.Int64("milestones_deleted", milestonesDeleted),
		slog.Int64("items_unlinked", unlinked),
	)

	return nil
}
