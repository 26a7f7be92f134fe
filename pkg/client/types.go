package client

// Health is the liveness response.
type Health struct {
	OK        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
}

// Item is a todo or habit.
type Item struct {
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

// NewItem is the body of CreateItem. Zero fields are omitted and defaulted by the server.
type NewItem struct {
	Title         string  `json:"title"`
	Kind          string  `json:"kind,omitempty"`
	Measure       string  `json:"measure,omitempty"`
	MilestoneID   *string `json:"milestone_id,omitempty"`
	Priority      int     `json:"priority,omitempty"`
	ScheduleType  string  `json:"schedule_type,omitempty"`
	ScheduleValue float64 `json:"schedule_value,omitempty"`
	SortOrder     int     `json:"sort_order,omitempty"`
}

// ItemRef is one dependency target.
type ItemRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Goal is a planning target.
type Goal struct {
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

// NewGoal is the body of CreateGoal.
type NewGoal struct {
	Title     string  `json:"title"`
	Period    string  `json:"period,omitempty"`
	Status    string  `json:"status,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Priority  int     `json:"priority,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// GoalQuery filters ListGoals. Empty fields are not sent.
type GoalQuery struct {
	Period string
	Status string
}

// Milestone is a step within a goal.
type Milestone struct {
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

// NewMilestone is the body of CreateMilestone.
type NewMilestone struct {
	GoalID    string  `json:"goal_id"`
	Title     string  `json:"title"`
	Status    string  `json:"status,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Priority  int     `json:"priority,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// Log is one recorded occurrence of an item.
type Log struct {
	ID        string  `json:"id"`
	ItemID    string  `json:"item_id"`
	Date      string  `json:"date"`
	Value     float64 `json:"value"`
	Note      string  `json:"note"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// NewLog is the body of CreateLog. A nil Value records 1.
type NewLog struct {
	ItemID string   `json:"item_id"`
	Date   string   `json:"date"`
	Value  *float64 `json:"value,omitempty"`
	Note   string   `json:"note,omitempty"`
}

// PomodoroSession is a timed focus or break interval.
type PomodoroSession struct {
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

// NewPomodoroSession is the body of CreatePomodoroSession.
type NewPomodoroSession struct {
	ItemID          *string `json:"item_id,omitempty"`
	Mode            string  `json:"mode,omitempty"`
	Status          string  `json:"status,omitempty"`
	DurationSeconds float64 `json:"duration_seconds"`
	StartedAt       *string `json:"started_at,omitempty"`
	EndedAt         *string `json:"ended_at,omitempty"`
	Note            string  `json:"note,omitempty"`
}

// RangeQuery filters log and pomodoro listings. A nil Limit uses the server default.
type RangeQuery struct {
	ItemID string
	Start  string
	End    string
	Limit  *int
}

// Patch holds the fields of a partial update exactly as they are sent.
// A nil value clears a nullable field such as milestone_id or start_date.
type Patch map[string]any

type idResponse struct {
	ID string `json:"id"`
}

type countResponse struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}

type updatedResponse struct {
	OK      bool `json:"ok"`
	Updated int  `json:"updated"`
}
