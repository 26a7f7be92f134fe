package domain

import "time"

// Goal is a planning objective over a period.
type Goal struct {
	ID        string
	Title     string
	Period    GoalPeriod
	StartDate *string
	EndDate   *string
	Priority  int
	Status    PlanStatus
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Milestone is a sub-goal belonging to a Goal. Items may link to it.
type Milestone struct {
	ID        string
	GoalID    string
	Title     string
	StartDate *string
	EndDate   *string
	Priority  int
	Status    PlanStatus
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
