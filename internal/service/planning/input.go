package planning

import (
	"strings"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

// CreateGoalInput holds the parameters for creating a goal.
type CreateGoalInput struct {
	Title     string
	Period    string
	Status    string
	StartDate *string
	EndDate   *string
	Priority  int
	Notes     string
}

// Validate checks all fields and collects all errors.
func (i CreateGoalInput) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return domain.NewValidationError("title", "is required")
	}
	return nil
}

// UpdateGoalInput holds the parameters for a partial goal update.
// Period and Status are normalized when non-empty and ignored otherwise.
type UpdateGoalInput struct {
	ID        string
	Title     *string
	Period    *string
	Status    *string
	StartDate domain.NullablePatch
	EndDate   domain.NullablePatch
	Priority  *int
	Notes     *string
}

// Validate checks all fields and collects all errors.
func (i UpdateGoalInput) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return domain.NewValidationError("id", "is required")
	}
	return nil
}

func (i UpdateGoalInput) apply(g *domain.Goal) {
	if i.Title != nil {
		if title := strings.TrimSpace(*i.Title); title != "" {
			g.Title = title
		}
	}
	if i.Period != nil && *i.Period != "" {
		g.Period = domain.Normalize(*i.Period, domain.GoalPeriodLongterm)
	}
	if i.Status != nil && *i.Status != "" {
		g.Status = domain.Normalize(*i.Status, domain.PlanStatusActive)
	}
	g.StartDate = i.StartDate.Apply(g.StartDate)
	g.EndDate = i.EndDate.Apply(g.EndDate)
	if i.Priority != nil {
		g.Priority = *i.Priority
	}
	if i.Notes != nil {
		g.Notes = *i.Notes
	}
}

// CreateMilestoneInput holds the parameters for creating a milestone.
type CreateMilestoneInput struct {
	GoalID    string
	Title     string
	Status    string
	StartDate *string
	EndDate   *string
	Priority  int
	Notes     string
}

// Validate checks all fields and collects all errors.
func (i CreateMilestoneInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.GoalID) == "" {
		errs = append(errs, domain.FieldError{Field: "goal_id", Message: "is required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateMilestoneInput holds the parameters for a partial milestone update.
// The owning goal cannot be changed.
type UpdateMilestoneInput struct {
	ID        string
	Title     *string
	Status    *string
	StartDate domain.NullablePatch
	EndDate   domain.NullablePatch
	Priority  *int
	Notes     *string
}

// Validate checks all fields and collects all errors.
func (i UpdateMilestoneInput) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return domain.NewValidationError("id", "is required")
	}
	return nil
}

func (i UpdateMilestoneInput) apply(m *domain.Milestone) {
	if i.Title != nil {
		if title := strings.TrimSpace(*i.Title); title != "" {
			m.Title = title
		}
	}
	if i.Status != nil && *i.Status != "" {
		m.Status = domain.Normalize(*i.Status, domain.PlanStatusActive)
	}
	m.StartDate = i.StartDate.Apply(m.StartDate)
	m.EndDate = i.EndDate.Apply(m.EndDate)
	if i.Priority != nil {
		m.Priority = *i.Priority
	}
	if i.Notes != nil {
		m.Notes = *i.Notes
	}
}
