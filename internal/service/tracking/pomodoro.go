package tracking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

// ListSessions returns pomodoro sessions, most recently started first.
// A bare YYYY-MM-DD bound covers the whole day.
func (s *Service) ListSessions(ctx context.Context, input ListInput) ([]domain.PomodoroSession, error) {
	filter := input.filter()
	filter.Start = domain.ExpandDayBound(filter.Start, false)
	filter.End = domain.ExpandDayBound(filter.End, true)

	sessions, err := s.sessions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list pomodoro sessions: %w", err)
	}
	return sessions, nil
}

// CreateSession records a pomodoro session.
func (s *Service) CreateSession(ctx context.Context, input CreateSessionInput) (*domain.PomodoroSession, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stamp := domain.FormatTimestamp(now)
	status := domain.Normalize(input.Status, domain.PomodoroStatusCompleted)

	startedAt := stamp
	if input.StartedAt != nil {
		startedAt = *input.StartedAt
	}

	endedAt := input.EndedAt
	if endedAt == nil && status.IsFinished() {
		endedAt = &stamp
	}

	sess := &domain.PomodoroSession{
		ID:              uuid.NewString(),
		ItemID:          input.ItemID,
		Mode:            domain.Normalize(input.Mode, domain.PomodoroModeFocus),
		DurationSeconds: input.DurationSeconds,
		StartedAt:       startedAt,
		EndedAt:         endedAt,
		Status:          status,
		Note:            input.Note,
		CreatedAt:       now,
	}

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create pomodoro session: %w", err)
	}

	s.log.InfoContext(ctx, "pomodoro session created",
		slog.String("session_id", sess.ID),
		slog.String("mode", sess.Mode.String()),
		slog.String("status", sess.Status.String()),
	)

	return sess, nil
}
