// Package pomodoro implements the PomodoroSession repository using PostgreSQL.
package pomodoro

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/habitplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

const table = "pomodoro_sessions"

var columns = []string{
	"id", "item_id", "mode", "duration_seconds", "started_at",
	"ended_at", "status", "note", "created_at",
}

type row struct {
	ID              string    `db:"id"`
	ItemID          *string   `db:"item_id"`
	Mode            string    `db:"mode"`
	DurationSeconds float64   `db:"duration_seconds"`
	StartedAt       string    `db:"started_at"`
	EndedAt         *string   `db:"ended_at"`
	Status          string    `db:"status"`
	Note            string    `db:"note"`
	CreatedAt       time.Time `db:"created_at"`
}

// Repo provides pomodoro session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new pomodoro repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns sessions matching filter, most recently started first.
// Bounds are compared against started_at text; callers expand bare dates.
func (r *Repo) List(ctx context.Context, filter domain.RangeFilter) ([]domain.PomodoroSession, error) {
	qb := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("started_at DESC", "created_at DESC").
		Limit(uint64(filter.Limit))
	if filter.ItemID != "" {
		qb = qb.Where(sq.Eq{"item_id": filter.ItemID})
	}
	if filter.Start != "" {
		qb = qb.Where(sq.GtOrEq{"started_at": filter.Start})
	}
	if filter.End != "" {
		qb = qb.Where(sq.LtOrEq{"started_at": filter.End})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list pomodoro sessions: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list pomodoro sessions: %w", err)
	}

	out := make([]domain.PomodoroSession, len(rows))
	for i, rw := range rows {
		out[i] = toDomain(rw)
	}
	return out, nil
}

// Create inserts a new session.
func (r *Repo) Create(ctx context.Context, s *domain.PomodoroSession) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			s.ID, s.ItemID, string(s.Mode), s.DurationSeconds, s.StartedAt,
			s.EndedAt, string(s.Status), s.Note, s.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create pomodoro session: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "pomodoro_session", s.ID)
	}
	return nil
}

// DeleteByItem removes every session of itemID.
func (r *Repo) DeleteByItem(ctx context.Context, itemID string) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM pomodoro_sessions WHERE item_id = $1`, itemID)
	if err != nil {
		return 0, fmt.Errorf("delete pomodoro sessions of item %s: %w", itemID, err)
	}
	return tag.RowsAffected(), nil
}

func toDomain(rw row) domain.PomodoroSession {
	return domain.PomodoroSession{
		ID:              rw.ID,
		ItemID:          rw.ItemID,
		Mode:            domain.PomodoroMode(rw.Mode),
		DurationSeconds: rw.DurationSeconds,
		StartedAt:       rw.StartedAt,
		EndedAt:         rw.EndedAt,
		Status:          domain.PomodoroStatus(rw.Status),
		Note:            rw.Note,
		CreatedAt:       rw.CreatedAt,
	}
}
