package item

import (
	"strings"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

// CreateItemInput holds the parameters for creating an item.
// Kind and Measure are raw values; unknown ones fall back to todo/check.
type CreateItemInput struct {
	Title         string
	Kind          string
	Measure       string
	MilestoneID   *string
	Priority      int
	ScheduleType  *string // nil = "none"
	ScheduleValue float64
	SortOrder     int
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return domain.NewValidationError("title", "is required")
	}
	return nil
}

// UpdateItemInput holds the parameters for a partial item update.
// A nil field keeps the stored value.
type UpdateItemInput struct {
	ID            string
	Title         *string
	Kind          *string
	Measure       *string
	MilestoneID   domain.NullablePatch
	Priority      *int
	ScheduleType  *string
	ScheduleValue *float64
	SortOrder     *int
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return domain.NewValidationError("id", "is required")
	}
	return nil
}

// apply merges the input into item. Blank titles and unknown enum values
// leave the stored value in place.
func (i UpdateItemInput) apply(item *domain.Item) {
	if i.Title != nil {
		if title := strings.TrimSpace(*i.Title); title != "" {
			item.Title = title
		}
	}
	if i.Kind != nil {
		item.Kind = domain.Normalize(*i.Kind, item.Kind)
	}
	if i.Measure != nil {
		item.Measure = domain.Normalize(*i.Measure, item.Measure)
	}
	item.MilestoneID = i.MilestoneID.Apply(item.MilestoneID)
	if i.Priority != nil {
		item.Priority = *i.Priority
	}
	if i.ScheduleType != nil {
		item.ScheduleType = *i.ScheduleType
	}
	if i.ScheduleValue != nil {
		item.ScheduleValue = *i.ScheduleValue
	}
	if i.SortOrder != nil {
		item.SortOrder = *i.SortOrder
	}
}

// ReplaceDependenciesInput holds the full desired set of outgoing edges.
type ReplaceDependenciesInput struct {
	ItemID    string
	DependsOn []string
}

// Validate checks all fields and collects all errors.
func (i ReplaceDependenciesInput) Validate() error {
	if strings.TrimSpace(i.ItemID) == "" {
		return domain.NewValidationError("id", "is required")
	}
	return nil
}
