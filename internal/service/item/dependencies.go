package item

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

// ListDependencies returns the items itemID depends on, newest target first.
func (s *Service) ListDependencies(ctx context.Context, itemID string) ([]domain.ItemRef, error) {
	refs, err := s.deps.ListTargets(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list dependencies: %w", err)
	}
	return refs, nil
}

// ReplaceDependencies swaps the outgoing edges of an item for the given set.
// Duplicates, blanks and self-references are dropped; an empty set clears
// all edges. Returns the number of edges written.
func (s *Service) ReplaceDependencies(ctx context.Context, input ReplaceDependenciesInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	targets := domain.DedupeDependencies(input.ItemID, input.DependsOn)
	at := time.Now().UTC()

	var inserted int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.deps.DeleteOutgoing(txCtx, input.ItemID); err != nil {
			return fmt.Errorf("clear dependencies: %w", err)
		}

		var err error
		inserted, err = s.deps.InsertMany(txCtx, input.ItemID, targets, at)
		if err != nil {
			return fmt.Errorf("insert dependencies: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "item dependencies replaced",
		slog.String("item_id", input.ItemID),
		slog.Int("count", int(inserted)),
	)

	return int(inserted), nil
}
