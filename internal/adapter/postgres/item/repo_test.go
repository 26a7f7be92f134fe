package item

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestRepo_List(t *testing.T) {
	now := time.Now().UTC()
	milestoneID := "m-1"

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantLen int
		wantErr bool
	}{
		{
			name: "returns items",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(columns).
					AddRow("i-1", "Read", "habit", "time", &milestoneID, 3, "daily", 30.0, 0, now, now, nil).
					AddRow("i-2", "Write", "todo", "check", nil, 0, "none", 0.0, 1, now, now, nil)
				mock.ExpectQuery(regexp.QuoteMeta("FROM items ORDER BY sort_order ASC, created_at DESC")).
					WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name: "returns empty",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT").WillReturnRows(pgxmock.NewRows(columns))
			},
			wantLen: 0,
		},
		{
			name: "query error",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setup(mock)

			items, err := New(mock).List(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("List() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(items) != tt.wantLen {
				t.Errorf("List() returned %d items, want %d", len(items), tt.wantLen)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestRepo_GetByID(t *testing.T) {
	now := time.Now().UTC()
	milestoneID := "m-1"

	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		rows := pgxmock.NewRows(columns).
			AddRow("i-1", "Read", "habit", "count", &milestoneID, 2, "weekly", 3.5, 4, now, now, nil)
		mock.ExpectQuery(regexp.QuoteMeta("FROM items WHERE id = $1")).
			WithArgs("i-1").
			WillReturnRows(rows)

		got, err := New(mock).GetByID(context.Background(), "i-1")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Kind != domain.ItemKindHabit || got.Measure != domain.ItemMeasureCount {
			t.Errorf("enums = %q/%q", got.Kind, got.Measure)
		}
		if got.MilestoneID == nil || *got.MilestoneID != "m-1" {
			t.Errorf("milestone_id = %v, want m-1", got.MilestoneID)
		}
		if got.Priority != 2 || got.SortOrder != 4 || got.ScheduleValue != 3.5 {
			t.Errorf("numbers = %d/%d/%v", got.Priority, got.SortOrder, got.ScheduleValue)
		}
		if got.ArchivedAt != nil {
			t.Errorf("archived_at = %v, want nil", got.ArchivedAt)
		}
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("SELECT").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		_, err := New(mock).GetByID(context.Background(), "missing")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRepo_Create(t *testing.T) {
	mock := newMock(t)
	now := time.Now().UTC()
	item := &domain.Item{
		ID:           "i-1",
		Title:        "Read",
		Kind:         domain.ItemKindTodo,
		Measure:      domain.ItemMeasureCheck,
		ScheduleType: domain.DefaultScheduleType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO items").
		WithArgs("i-1", "Read", "todo", "check", pgxmock.AnyArg(), 0, "none", 0.0, 0, now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := New(mock).Create(context.Background(), item); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_Update(t *testing.T) {
	item := &domain.Item{ID: "i-1", Title: "Read", Kind: domain.ItemKindTodo, Measure: domain.ItemMeasureCheck}

	t.Run("updated", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec("UPDATE items SET").
			WithArgs(anyArgs(10)...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		if err := New(mock).Update(context.Background(), item); err != nil {
			t.Fatalf("Update: %v", err)
		}
	})

	t.Run("zero rows is not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec("UPDATE items SET").
			WithArgs(anyArgs(10)...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := New(mock).Update(context.Background(), item)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRepo_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{"deleted", 1, nil},
		{"missing", 0, domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM items WHERE id = $1")).
				WithArgs("i-1").
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			err := New(mock).Delete(context.Background(), "i-1")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Delete() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRepo_ClearMilestone(t *testing.T) {
	t.Run("no ids skips query", func(t *testing.T) {
		mock := newMock(t)

		n, err := New(mock).ClearMilestone(context.Background(), nil)
		if err != nil || n != 0 {
			t.Fatalf("ClearMilestone(nil) = %d, %v", n, err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unexpected query: %v", err)
		}
	})

	t.Run("clears matching items", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE items SET milestone_id = $1 WHERE milestone_id IN ($2,$3)")).
			WithArgs(nil, "m-1", "m-2").
			WillReturnResult(pgxmock.NewResult("UPDATE", 3))

		n, err := New(mock).ClearMilestone(context.Background(), []string{"m-1", "m-2"})
		if err != nil {
			t.Fatalf("ClearMilestone: %v", err)
		}
		if n != 3 {
			t.Errorf("affected = %d, want 3", n)
		}
	})
}
