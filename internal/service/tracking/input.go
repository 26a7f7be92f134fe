package tracking

import (
	"math"
	"strings"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

// CreateLogInput holds the parameters for recording progress on an item.
type CreateLogInput struct {
	ItemID string
	Date   string
	Value  *float64 // nil = domain.DefaultLogValue
	Note   string
}

// Validate checks all fields and collects all errors.
func (i CreateLogInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == "" {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "is required"})
	}
	if i.Date == "" {
		errs = append(errs, domain.FieldError{Field: "date", Message: "is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateSessionInput holds the parameters for recording a pomodoro session.
type CreateSessionInput struct {
	ItemID          *string
	Mode            string
	Status          string
	DurationSeconds float64
	StartedAt       *string // nil = now
	EndedAt         *string // nil = now for finished sessions, else null
	Note            string
}

// Validate checks all fields and collects all errors.
func (i CreateSessionInput) Validate() error {
	d := i.DurationSeconds
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return domain.NewValidationError("duration_seconds", "is required")
	}
	return nil
}

// ListInput selects logs or sessions. A zero Limit means domain.DefaultListLimit;
// any other value is clamped to the allowed range.
type ListInput struct {
	ItemID string
	Start  string
	End    string
	Limit  int
}

func (i ListInput) filter() domain.RangeFilter {
	limit := domain.DefaultListLimit
	if i.Limit != 0 {
		limit = domain.ClampLimit(float64(i.Limit))
	}
	return domain.RangeFilter{
		ItemID: strings.TrimSpace(i.ItemID),
		Start:  i.Start,
		End:    i.End,
		Limit:  limit,
	}
}
