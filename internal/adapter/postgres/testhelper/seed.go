package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.NewString()[:8]
}

// SeedItem inserts a todo item, optionally linked to a milestone.
func SeedItem(t *testing.T, pool *pgxpool.Pool, milestoneID *string) domain.Item {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.Item{
		ID:           uuid.NewString(),
		Title:        "item " + uniqueSuffix(),
		Kind:         domain.ItemKindTodo,
		Measure:      domain.ItemMeasureCheck,
		MilestoneID:  milestoneID,
		ScheduleType: domain.DefaultScheduleType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO items (id, title, kind, measure, milestone_id, schedule_type, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.Title, string(item.Kind), string(item.Measure), item.MilestoneID, item.ScheduleType, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}

	return item
}

// SeedGoal inserts an active long-term goal.
func SeedGoal(t *testing.T, pool *pgxpool.Pool) domain.Goal {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	goal := domain.Goal{
		ID:        uuid.NewString(),
		Title:     "goal " + uniqueSuffix(),
		Period:    domain.GoalPeriodLongterm,
		Status:    domain.PlanStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO goals (id, title, period, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		goal.ID, goal.Title, string(goal.Period), string(goal.Status), goal.CreatedAt, goal.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGoal: %v", err)
	}

	return goal
}

// SeedMilestone inserts an active milestone under goalID.
func SeedMilestone(t *testing.T, pool *pgxpool.Pool, goalID string) domain.Milestone {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.Milestone{
		ID:        uuid.NewString(),
		GoalID:    goalID,
		Title:     "milestone " + uniqueSuffix(),
		Status:    domain.PlanStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO milestones (id, goal_id, title, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.GoalID, m.Title, string(m.Status), m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMilestone: %v", err)
	}

	return m
}

// CountRows returns the number of rows in table matching column = value.
func CountRows(t *testing.T, pool *pgxpool.Pool, table, column, value string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM `+table+` WHERE `+column+` = $1`, value,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
