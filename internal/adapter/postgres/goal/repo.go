// Package goal implements the Goal repository using PostgreSQL.
package goal

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/habitplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

const table = "goals"

var columns = []string{
	"id", "title", "period", "start_date", "end_date",
	"priority", "status", "notes", "created_at", "updated_at",
}

type row struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Period    string    `db:"period"`
	StartDate *string   `db:"start_date"`
	EndDate   *string   `db:"end_date"`
	Priority  int       `db:"priority"`
	Status    string    `db:"status"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Repo provides goal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new goal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns goals matching filter, highest priority first.
func (r *Repo) List(ctx context.Context, filter domain.GoalFilter) ([]domain.Goal, error) {
	qb := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("priority DESC", "created_at DESC")
	if filter.Period != nil {
		qb = qb.Where(sq.Eq{"period": string(*filter.Period)})
	}
	if filter.Status != nil {
		qb = qb.Where(sq.Eq{"status": string(*filter.Status)})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list goals: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	goals := make([]domain.Goal, len(rows))
	for i, rw := range rows {
		goals[i] = toDomain(rw)
	}
	return goals, nil
}

// GetByID returns a goal by primary key.
// Returns domain.ErrNotFound if the goal does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get goal: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "goal", id)
	}

	g := toDomain(rw)
	return &g, nil
}

// Create inserts a new goal.
func (r *Repo) Create(ctx context.Context, g *domain.Goal) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			g.ID, g.Title, string(g.Period), g.StartDate, g.EndDate,
			g.Priority, string(g.Status), g.Notes, g.CreatedAt, g.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create goal: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "goal", g.ID)
	}
	return nil
}

// Update overwrites every mutable column of an existing goal.
func (r *Repo) Update(ctx context.Context, g *domain.Goal) error {
	query, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"title":      g.Title,
			"period":     string(g.Period),
			"start_date": g.StartDate,
			"end_date":   g.EndDate,
			"priority":   g.Priority,
			"status":     string(g.Status),
			"notes":      g.Notes,
			"updated_at": g.UpdatedAt,
		}).
		Where(sq.Eq{"id": g.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update goal: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "goal", g.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("goal", g.ID)
	}
	return nil
}

// Delete removes a goal. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "goal", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("goal", id)
	}
	return nil
}

func toDomain(rw row) domain.Goal {
	return domain.Goal{
		ID:        rw.ID,
		Title:     rw.Title,
		Period:    domain.GoalPeriod(rw.Period),
		StartDate: rw.StartDate,
		EndDate:   rw.EndDate,
		Priority:  rw.Priority,
		Status:    domain.PlanStatus(rw.Status),
		Notes:     rw.Notes,
		CreatedAt: rw.CreatedAt,
		UpdatedAt: rw.UpdatedAt,
	}
}
