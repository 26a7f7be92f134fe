package domain

import "time"

// DefaultLogValue is recorded when a log is created without a value.
const DefaultLogValue = 1.0

// LogEntry is a single recorded occurrence of an item on a date.
// Date is kept exactly as the client sent it.
type LogEntry struct {
	ID        string
	ItemID    string
	Date      string
	Value     float64
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PomodoroSession is a timed focus or break interval.
// StartedAt and EndedAt are ISO-8601 strings supplied by the client or generated on create.
type PomodoroSession struct {
	ID              string
	ItemID          *string
	Mode            PomodoroMode
	DurationSeconds float64
	StartedAt       string
	EndedAt         *string
	Status          PomodoroStatus
	Note            string
	CreatedAt       time.Time
}
