// Package logentry implements the Log repository using PostgreSQL.
package logentry

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/habitplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

const table = "logs"

var columns = []string{"id", "item_id", "date", "value", "note", "created_at", "updated_at"}

type row struct {
	ID        string    `db:"id"`
	ItemID    string    `db:"item_id"`
	Date      string    `db:"date"`
	Value     float64   `db:"value"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Repo provides log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns logs matching filter, latest date first.
// Start and End are compared against the stored date text as-is.
func (r *Repo) List(ctx context.Context, filter domain.RangeFilter) ([]domain.LogEntry, error) {
	qb := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("date DESC", "created_at DESC").
		Limit(uint64(filter.Limit))
	if filter.ItemID != "" {
		qb = qb.Where(sq.Eq{"item_id": filter.ItemID})
	}
	if filter.Start != "" {
		qb = qb.Where(sq.GtOrEq{"date": filter.Start})
	}
	if filter.End != "" {
		qb = qb.Where(sq.LtOrEq{"date": filter.End})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list logs: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	out := make([]domain.LogEntry, len(rows))
	for i, rw := range rows {
		out[i] = toDomain(rw)
	}
	return out, nil
}

// GetByID returns a log by primary key.
// Returns domain.ErrNotFound if the log does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.LogEntry, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get log: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "log", id)
	}

	l := toDomain(rw)
	return &l, nil
}

// Create inserts a new log.
func (r *Repo) Create(ctx context.Context, l *domain.LogEntry) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(l.ID, l.ItemID, l.Date, l.Value, l.Note, l.CreatedAt, l.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create log: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "log", l.ID)
	}
	return nil
}

// Delete removes a log. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM logs WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "log", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("log", id)
	}
	return nil
}

// DeleteByItem removes every log of itemID.
func (r *Repo) DeleteByItem(ctx context.Context, itemID string) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM logs WHERE item_id = $1`, itemID)
	if err != nil {
		return 0, fmt.Errorf("delete logs of item %s: %w", itemID, err)
	}
	return tag.RowsAffected(), nil
}

func toDomain(rw row) domain.LogEntry {
	return domain.LogEntry{
		ID:        rw.ID,
		ItemID:    rw.ItemID,
		Date:      rw.Date,
		Value:     rw.Value,
		Note:      rw.Note,
		CreatedAt: rw.CreatedAt,
		UpdatedAt: rw.UpdatedAt,
	}
}
