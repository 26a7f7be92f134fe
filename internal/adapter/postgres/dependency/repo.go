// Package dependency implements the item dependency edge repository using PostgreSQL.
// Edges are stored in item_dependencies as (item_id -> depends_on_id).
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/habitplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

const table = "item_dependencies"

const listTargetsSQL = `
SELECT
    i.id, i.title
FROM item_dependencies d
JOIN items i ON d.depends_on_id = i.id
WHERE d.item_id = $1
ORDER BY i.created_at DESC`

type targetRow struct {
	ID    string `db:"id"`
	Title string `db:"title"`
}

// Repo provides dependency edge persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new dependency repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListTargets returns the items itemID depends on, newest target first.
// Edges pointing at deleted items are skipped by the join.
func (r *Repo) ListTargets(ctx context.Context, itemID string) ([]domain.ItemRef, error) {
	var rows []targetRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listTargetsSQL, itemID); err != nil {
		return nil, fmt.Errorf("list dependencies of %s: %w", itemID, err)
	}

	refs := make([]domain.ItemRef, len(rows))
	for i, rw := range rows {
		refs[i] = domain.ItemRef{ID: rw.ID, Title: rw.Title}
	}
	return refs, nil
}

// DeleteOutgoing removes every edge starting at itemID.
func (r *Repo) DeleteOutgoing(ctx context.Context, itemID string) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM item_dependencies WHERE item_id = $1`, itemID)
	if err != nil {
		return 0, fmt.Errorf("delete dependencies of %s: %w", itemID, err)
	}
	return tag.RowsAffected(), nil
}

// DeleteTouching removes every edge in which itemID appears on either side.
func (r *Repo) DeleteTouching(ctx context.Context, itemID string) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM item_dependencies WHERE item_id = $1 OR depends_on_id = $1`, itemID)
	if err != nil {
		return 0, fmt.Errorf("delete edges touching %s: %w", itemID, err)
	}
	return tag.RowsAffected(), nil
}

// InsertMany adds one edge per target, all stamped with at. Targets are
// written in batches of postgres.MaxInsertRows; callers run it inside a tx.
func (r *Repo) InsertMany(ctx context.Context, itemID string, targets []string, at time.Time) (int64, error) {
	var total int64
	for start := 0; start < len(targets); start += postgres.MaxInsertRows {
		end := min(start+postgres.MaxInsertRows, len(targets))
		n, err := r.insertBatch(ctx, itemID, targets[start:end], at)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (r *Repo) insertBatch(ctx context.Context, itemID string, targets []string, at time.Time) (int64, error) {
	insert := postgres.Builder().
		Insert(table).
		Columns("item_id", "depends_on_id", "created_at")
	for _, target := range targets {
		insert = insert.Values(itemID, target, at)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert dependencies: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "item_dependency", itemID)
	}
	return tag.RowsAffected(), nil
}
