package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/habitplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/habitplan-backend/internal/config"
)

// Migration commands accepted by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// Migrate runs a goose command against the configured database and writes
// a human-readable report to out.
func Migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger, command string, out io.Writer) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close()

	switch command {
	case MigrateUp:
		applied, err := m.Up(ctx)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "migrations applied", slog.Int("count", len(applied)))
		for _, v := range applied {
			fmt.Fprintf(out, "applied %d\n", v)
		}
		if len(applied) == 0 {
			fmt.Fprintln(out, "no pending migrations")
		}

	case MigrateDown:
		v, err := m.Down(ctx)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "migration rolled back", slog.Int64("version", v))
		fmt.Fprintf(out, "rolled back %d\n", v)

	case MigrateStatus:
		states, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range states {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Fprintf(out, "%-8s %d %s\n", state, s.Version, s.Path)
		}

	default:
		return fmt.Errorf("unknown migrate command %q (want up, down or status)", command)
	}

	return nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool) ([]int64, error) {
	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	return m.Up(ctx)
}
