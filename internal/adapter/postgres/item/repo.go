// Package item implements the Item repository using PostgreSQL.
package item

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/habitplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

const table = "items"

var columns = []string{
	"id", "title", "kind", "measure", "milestone_id", "priority",
	"schedule_type", "schedule_value", "sort_order",
	"created_at", "updated_at", "archived_at",
}

// row mirrors one items row for pgxscan.
type row struct {
	ID            string     `db:"id"`
	Title         string     `db:"title"`
	Kind          string     `db:"kind"`
	Measure       string     `db:"measure"`
	MilestoneID   *string    `db:"milestone_id"`
	Priority      int        `db:"priority"`
	ScheduleType  string     `db:"schedule_type"`
	ScheduleValue float64    `db:"schedule_value"`
	SortOrder     int        `db:"sort_order"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	ArchivedAt    *time.Time `db:"archived_at"`
}

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns all items ordered by sort_order, newest first within a position.
func (r *Repo) List(ctx context.Context) ([]domain.Item, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("sort_order ASC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	items := make([]domain.Item, len(rows))
	for i, rw := range rows {
		items[i] = toDomain(rw)
	}
	return items, nil
}

// GetByID returns an item by primary key.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "item", id)
	}

	item := toDomain(rw)
	return &item, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new item.
func (r *Repo) Create(ctx context.Context, item *domain.Item) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(
			"id", "title", "kind", "measure", "milestone_id", "priority",
			"schedule_type", "schedule_value", "sort_order", "created_at", "updated_at",
		).
		Values(
			item.ID, item.Title, string(item.Kind), string(item.Measure), item.MilestoneID, item.Priority,
			item.ScheduleType, item.ScheduleValue, item.SortOrder, item.CreatedAt, item.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create item: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "item", item.ID)
	}
	return nil
}

// Update overwrites every mutable column of an existing item.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) Update(ctx context.Context, item *domain.Item) error {
	query, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"title":          item.Title,
			"kind":           string(item.Kind),
			"measure":        string(item.Measure),
			"milestone_id":   item.MilestoneID,
			"priority":       item.Priority,
			"schedule_type":  item.ScheduleType,
			"schedule_value": item.ScheduleValue,
			"sort_order":     item.SortOrder,
			"updated_at":     item.UpdatedAt,
		}).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update item: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "item", item.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("item", item.ID)
	}
	return nil
}

// Delete removes an item. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "item", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("item", id)
	}
	return nil
}

// ClearMilestone unlinks every item pointing at one of milestoneIDs.
// Returns the number of items touched.
func (r *Repo) ClearMilestone(ctx context.Context, milestoneIDs []string) (int64, error) {
	if len(milestoneIDs) == 0 {
		return 0, nil
	}

	query, args, err := postgres.Builder().
		Update(table).
		Set("milestone_id", nil).
		Where(sq.Eq{"milestone_id": milestoneIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build clear milestone: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("clear item milestones: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func toDomain(rw row) domain.Item {
	return domain.Item{
		ID:            rw.ID,
		Title:         rw.Title,
		Kind:          domain.ItemKind(rw.Kind),
		Measure:       domain.ItemMeasure(rw.Measure),
		MilestoneID:   rw.MilestoneID,
		Priority:      rw.Priority,
		ScheduleType:  rw.ScheduleType,
		ScheduleValue: rw.ScheduleValue,
		SortOrder:     rw.SortOrder,
		CreatedAt:     rw.CreatedAt,
		UpdatedAt:     rw.UpdatedAt,
		ArchivedAt:    rw.ArchivedAt,
	}
}
