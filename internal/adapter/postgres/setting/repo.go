// Package setting implements the key-value settings store using PostgreSQL.
package setting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/habitplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

const table = "settings"

const upsertSuffix = "ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at"

type row struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// All returns every stored setting ordered by key.
func (r *Repo) All(ctx context.Context) ([]domain.Setting, error) {
	var rows []row
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT key, value, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	out := make([]domain.Setting, len(rows))
	for i, rw := range rows {
		out[i] = domain.Setting{Key: rw.Key, Value: rw.Value, UpdatedAt: rw.UpdatedAt}
	}
	return out, nil
}

// Upsert writes every key of values, stamping them with at. Keys are written
// in sorted order, postgres.MaxInsertRows per statement; callers run it
// inside a tx.
func (r *Repo) Upsert(ctx context.Context, values map[string]string, at time.Time) (int64, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var total int64
	for start := 0; start < len(keys); start += postgres.MaxInsertRows {
		end := min(start+postgres.MaxInsertRows, len(keys))
		n, err := r.upsertBatch(ctx, keys[start:end], values, at)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (r *Repo) upsertBatch(ctx context.Context, keys []string, values map[string]string, at time.Time) (int64, error) {
	insert := postgres.Builder().
		Insert(table).
		Columns("key", "value", "updated_at").
		Suffix(upsertSuffix)
	for _, k := range keys {
		insert = insert.Values(k, values[k], at)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build upsert settings: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("upsert settings: %w", err)
	}
	return tag.RowsAffected(), nil
}
