package domain

import (
	"math"
	"strconv"
	"strings"
)

// List limits for logs and pomodoro sessions.
const (
	DefaultListLimit = 100
	MinListLimit     = 1
	MaxListLimit     = 500
)

// GoalFilter narrows a goal listing. Nil fields are not applied.
type GoalFilter struct {
	Period *GoalPeriod
	Status *PlanStatus
}

// MilestoneFilter narrows a milestone listing. An empty GoalID lists all.
type MilestoneFilter struct {
	GoalID string
}

// RangeFilter narrows a log or pomodoro listing. Empty strings are not applied.
type RangeFilter struct {
	ItemID string
	Start  string
	End    string
	Limit  int
}

// ParseListLimit converts the raw "limit" query value. An absent or
// unparsable value yields DefaultListLimit, an empty one parses as zero,
// and the result is clamped to [MinListLimit, MaxListLimit].
func ParseListLimit(raw string, present bool) int {
	if !present {
		return DefaultListLimit
	}

	n := 0.0
	if s := strings.TrimSpace(raw); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return DefaultListLimit
		}
		n = f
	}

	return ClampLimit(n)
}

// ClampLimit truncates n and bounds it to [MinListLimit, MaxListLimit].
func ClampLimit(n float64) int {
	switch {
	case n < MinListLimit:
		return MinListLimit
	case n > MaxListLimit:
		return MaxListLimit
	}
	return int(n)
}

// ExpandDayBound turns a bare YYYY-MM-DD bound into the first (or, for an
// end bound, last) millisecond of that UTC day. Other values pass through.
func ExpandDayBound(value string, end bool) string {
	if len(value) != 10 {
		return value
	}
	if end {
		return value + "T23:59:59.999Z"
	}
	return value + "T00:00:00.000Z"
}
