package domain

// enum is satisfied by every closed string set in this package.
type enum interface {
	~string
	IsValid() bool
}

// Normalize returns raw as a member of T when it names one, otherwise fallback.
func Normalize[T enum](raw string, fallback T) T {
	if v := T(raw); v.IsValid() {
		return v
	}
	return fallback
}

// ItemKind distinguishes one-off todos from recurring habits.
type ItemKind string

const (
	ItemKindTodo  ItemKind = "todo"
	ItemKindHabit ItemKind = "habit"
)

func (k ItemKind) String() string { return string(k) }

func (k ItemKind) IsValid() bool {
	switch k {
	case ItemKindTodo, ItemKindHabit:
		return true
	}
	return false
}

// ItemMeasure is how completion of an item is recorded.
type ItemMeasure string

const (
	ItemMeasureCheck ItemMeasure = "check"
	ItemMeasureTime  ItemMeasure = "time"
	ItemMeasureCount ItemMeasure = "count"
)

func (m ItemMeasure) String() string { return string(m) }

func (m ItemMeasure) IsValid() bool {
	switch m {
	case ItemMeasureCheck, ItemMeasureTime, ItemMeasureCount:
		return true
	}
	return false
}

// GoalPeriod is the horizon a goal is planned for.
type GoalPeriod string

const (
	GoalPeriodLongterm GoalPeriod = "longterm"
	GoalPeriodWeekly   GoalPeriod = "weekly"
	GoalPeriodMonthly  GoalPeriod = "monthly"
)

func (p GoalPeriod) String() string { return string(p) }

func (p GoalPeriod) IsValid() bool {
	switch p {
	case GoalPeriodLongterm, GoalPeriodWeekly, GoalPeriodMonthly:
		return true
	}
	return false
}

// PlanStatus is shared by goals and milestones.
type PlanStatus string

const (
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
	PlanStatusArchived  PlanStatus = "archived"
)

func (s PlanStatus) String() string { return string(s) }

func (s PlanStatus) IsValid() bool {
	switch s {
	case PlanStatusActive, PlanStatusCompleted, PlanStatusArchived:
		return true
	}
	return false
}

// PomodoroMode is the kind of timed interval.
type PomodoroMode string

const (
	PomodoroModeFocus      PomodoroMode = "focus"
	PomodoroModeShortBreak PomodoroMode = "short_break"
	PomodoroModeLongBreak  PomodoroMode = "long_break"
)

func (m PomodoroMode) String() string { return string(m) }

func (m PomodoroMode) IsValid() bool {
	switch m {
	case PomodoroModeFocus, PomodoroModeShortBreak, PomodoroModeLongBreak:
		return true
	}
	return false
}

// PomodoroStatus is the lifecycle state of a pomodoro session.
type PomodoroStatus string

const (
	PomodoroStatusRunning   PomodoroStatus = "running"
	PomodoroStatusCompleted PomodoroStatus = "completed"
	PomodoroStatusCanceled  PomodoroStatus = "canceled"
)

func (s PomodoroStatus) String() string { return string(s) }

func (s PomodoroStatus) IsValid() bool {
	switch s {
	case PomodoroStatusRunning, PomodoroStatusCompleted, PomodoroStatusCanceled:
		return true
	}
	return false
}

// IsFinished reports whether the session has an end.
func (s PomodoroStatus) IsFinished() bool {
	return s == PomodoroStatusCompleted || s == PomodoroStatusCanceled
}
