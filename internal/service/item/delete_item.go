package item

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteItem removes an item together with its logs, pomodoro sessions and
// every dependency edge it takes part in.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	var logsDeleted, sessionsDeleted, edgesDeleted int64

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.items.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}

		var err error
		if logsDeleted, err = s.logs.DeleteByItem(txCtx, id); err != nil {
			return fmt.Errorf("delete item logs: %w", err)
		}
		if sessionsDeleted, err = s.sessions.DeleteByItem(txCtx, id); err != nil {
			return fmt.Errorf("delete item sessions: %w", err)
		}
		if edgesDeleted, err = s.deps.DeleteTouching(txCtx, id); err != nil {
			return fmt.Errorf("delete item dependencies: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "item deleted",
		slog.String("item_id", id),
		slog.Int64("logs_deleted", logsDeleted),
		slog.Int64("sessions_deleted", sessionsDeleted),
		slog.Int64("edges_deleted", edgesDeleted),
	)

	return nil
}
