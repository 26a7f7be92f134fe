// Package milestone implements the Milestone repository using PostgreSQL.
package milestone

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/habitplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

const table = "milestones"

var columns = []string{
	"id", "goal_id", "title", "start_date", "end_date",
	"priority", "status", "notes", "created_at", "updated_at",
}

type row struct {
	ID        string    `db:"id"`
	GoalID    string    `db:"goal_id"`
	Title     string    `db:"title"`
	StartDate *string   `db:"start_date"`
	EndDate   *string   `db:"end_date"`
	Priority  int       `db:"priority"`
	Status    string    `db:"status"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Repo provides milestone persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new milestone repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns milestones, optionally of a single goal, highest priority first.
func (r *Repo) List(ctx context.Context, filter domain.MilestoneFilter) ([]domain.Milestone, error) {
	qb := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("priority DESC", "created_at DESC")
	if filter.GoalID != "" {
		qb = qb.Where(sq.Eq{"goal_id": filter.GoalID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list milestones: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}

	out := make([]domain.Milestone, len(rows))
	for i, rw := range rows {
		out[i] = toDomain(rw)
	}
	return out, nil
}

// GetByID returns a milestone by primary key.
// Returns domain.ErrNotFound if the milestone does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get milestone: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "milestone", id)
	}

	m := toDomain(rw)
	return &m, nil
}

// IDsByGoal returns the ids of every milestone under goalID.
func (r *Repo) IDsByGoal(ctx context.Context, goalID string) ([]string, error) {
	var ids []string
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids,
		`SELECT id FROM milestones WHERE goal_id = $1`, goalID)
	if err != nil {
		return nil, fmt.Errorf("list milestone ids of goal %s: %w", goalID, err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new milestone.
func (r *Repo) Create(ctx context.Context, m *domain.Milestone) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			m.ID, m.GoalID, m.Title, m.StartDate, m.EndDate,
			m.Priority, string(m.Status), m.Notes, m.CreatedAt, m.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create milestone: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "milestone", m.ID)
	}
	return nil
}

// Update overwrites the mutable columns of a milestone. goal_id is never changed.
func (r *Repo) Update(ctx context.Context, m *domain.Milestone) error {
	query, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"title":      m.Title,
			"start_date": m.StartDate,
			"end_date":   m.EndDate,
			"priority":   m.Priority,
			"status":     string(m.Status),
			"notes":      m.Notes,
			"updated_at": m.UpdatedAt,
		}).
		Where(sq.Eq{"id": m.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update milestone: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "milestone", m.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("milestone", m.ID)
	}
	return nil
}

// Delete removes a milestone. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM milestones WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "milestone", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("milestone", id)
	}
	return nil
}

// DeleteByGoal removes every milestone under goalID.
func (r *Repo) DeleteByGoal(ctx context.Context, goalID string) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM milestones WHERE goal_id = $1`, goalID)
	if err != nil {
		return 0, fmt.Errorf("delete milestones of goal %s: %w", goalID, err)
	}
	return tag.RowsAffected(), nil
}

func toDomain(rw row) domain.Milestone {
	return domain.Milestone{
		ID:        rw.ID,
		GoalID:    rw.GoalID,
		Title:     rw.Title,
		StartDate: rw.StartDate,
		EndDate:   rw.EndDate,
		Priority:  rw.Priority,
		Status:    domain.PlanStatus(rw.Status),
		Notes:     rw.Notes,
		CreatedAt: rw.CreatedAt,
		UpdatedAt: rw.UpdatedAt,
	}
}
