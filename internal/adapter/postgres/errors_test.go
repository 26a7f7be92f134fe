package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "item", "i-1"); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	got := MapError(pgx.ErrNoRows, "item", "i-1")

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := "item i-1: not found"; got.Error() != want {
		t.Errorf("MapError(ErrNoRows).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_WrappedNoRows(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("scan row: %w", pgx.ErrNoRows)
	got := MapError(wrapped, "goal", "g-1")

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(wrapped ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
}

func TestMapError_PgCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want error
	}{
		{"23505", domain.ErrAlreadyExists},
		{"23503", domain.ErrNotFound},
		{"23514", domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			got := MapError(&pgconn.PgError{Code: tt.code}, "item_dependency", "i-1")
			if !errors.Is(got, tt.want) {
				t.Errorf("MapError(code %s) = %v, want wrapping %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMapError_ContextPassesThrough(t *testing.T) {
	t.Parallel()

	got := MapError(context.Canceled, "log", "l-1")

	if !errors.Is(got, context.Canceled) {
		t.Errorf("expected context.Canceled to pass through, got %v", got)
	}
	if errors.Is(got, domain.ErrNotFound) {
		t.Error("context error must not map to ErrNotFound")
	}
}

func TestMapError_UnknownKeepsOriginal(t *testing.T) {
	t.Parallel()

	orig := errors.New("connection reset")
	got := MapError(orig, "setting", "theme")

	if !errors.Is(got, orig) {
		t.Errorf("expected original error to be wrapped, got %v", got)
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	got := NotFound("milestone", "m-1")
	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("NotFound() = %v, want wrapping ErrNotFound", got)
	}
}
