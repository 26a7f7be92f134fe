package rest

import (
	"time"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

type itemRecord struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Kind          string  `json:"kind"`
	Measure       string  `json:"measure"`
	MilestoneID   *string `json:"milestone_id"`
	Priority      int     `json:"priority"`
	ScheduleType  string  `json:"schedule_type"`
	ScheduleValue float64 `json:"schedule_value"`
	SortOrder     int     `json:"sort_order"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
	ArchivedAt    *string `json:"archived_at"`
}

type itemRefRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type goalRecord struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Period    string  `json:"period"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Priority  int     `json:"priority"`
	Status    string  `json:"status"`
	Notes     string  `json:"notes"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type milestoneRecord struct {
	ID        string  `json:"id"`
	GoalID    string  `json:"goal_id"`
	Title     string  `json:"title"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Priority  int     `json:"priority"`
	Status    string  `json:"status"`
	Notes     string  `json:"notes"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type logRecord struct {
	ID        string  `json:"id"`
	ItemID    string  `json:"item_id"`
	Date      string  `json:"date"`
	Value     float64 `json:"value"`
	Note      string  `json:"note"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type sessionRecord struct {
	ID              string  `json:"id"`
	ItemID          *string `json:"item_id"`
	Mode            string  `json:"mode"`
	DurationSeconds float64 `json:"duration_seconds"`
	StartedAt       string  `json:"started_at"`
	EndedAt         *string `json:"ended_at"`
	Status          string  `json:"status"`
	Note            string  `json:"note"`
	CreatedAt       string  `json:"created_at"`
}

func toItemRecord(i domain.Item) itemRecord {
	return itemRecord{
		ID:            i.ID,
		Title:         i.Title,
		Kind:          i.Kind.String(),
		Measure:       i.Measure.String(),
		MilestoneID:   i.MilestoneID,
		Priority:      i.Priority,
		ScheduleType:  i.ScheduleType,
		ScheduleValue: i.ScheduleValue,
		SortOrder:     i.SortOrder,
		CreatedAt:     domain.FormatTimestamp(i.CreatedAt),
		UpdatedAt:     domain.FormatTimestamp(i.UpdatedAt),
		ArchivedAt:    formatOptional(i.ArchivedAt),
	}
}

func toGoalRecord(g domain.Goal) goalRecord {
	return goalRecord{
		ID:        g.ID,
		Title:     g.Title,
		Period:    g.Period.String(),
		StartDate: g.StartDate,
		EndDate:   g.EndDate,
		Priority:  g.Priority,
		Status:    g.Status.String(),
		Notes:     g.Notes,
		CreatedAt: domain.FormatTimestamp(g.CreatedAt),
		UpdatedAt: domain.FormatTimestamp(g.UpdatedAt),
	}
}

func toMilestoneRecord(m domain.Milestone) milestoneRecord {
	return milestoneRecord{
		ID:        m.ID,
		GoalID:    m.GoalID,
		Title:     m.Title,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Priority:  m.Priority,
		Status:    m.Status.String(),
		Notes:     m.Notes,
		CreatedAt: domain.FormatTimestamp(m.CreatedAt),
		UpdatedAt: domain.FormatTimestamp(m.UpdatedAt),
	}
}

func toLogRecord(l domain.LogEntry) logRecord {
	return logRecord{
		ID:        l.ID,
		ItemID:    l.ItemID,
		Date:      l.Date,
		Value:     l.Value,
		Note:      l.Note,
		CreatedAt: domain.FormatTimestamp(l.CreatedAt),
		UpdatedAt: domain.FormatTimestamp(l.UpdatedAt),
	}
}

func toSessionRecord(s domain.PomodoroSession) sessionRecord {
	return sessionRecord{
		ID:              s.ID,
		ItemID:          s.ItemID,
		Mode:            s.Mode.String(),
		DurationSeconds: s.DurationSeconds,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
		Status:          s.Status.String(),
		Note:            s.Note,
		CreatedAt:       domain.FormatTimestamp(s.CreatedAt),
	}
}

// mapRecords converts a slice, never returning nil so empty lists encode as [].
func mapRecords[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := domain.FormatTimestamp(*t)
	return &s
}
