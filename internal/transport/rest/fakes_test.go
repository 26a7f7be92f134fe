package rest

import (
	"context"
	"net/http"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
	itemsvc "github.com/heartmarshall/habitplan-backend/internal/service/item"
	"github.com/heartmarshall/habitplan-backend/internal/service/planning"
	"github.com/heartmarshall/habitplan-backend/internal/service/tracking"
)

// ---------------------------------------------------------------------------
// Service fakes (moq-style with func fields). Unset funcs return zero values.
// ---------------------------------------------------------------------------

type fakeItemService struct {
	ListItemsFunc           func(ctx context.Context) ([]domain.Item, error)
	GetItemFunc             func(ctx context.Context, id string) (*domain.Item, error)
	CreateItemFunc          func(ctx context.Context, input itemsvc.CreateItemInput) (*domain.Item, error)
	UpdateItemFunc          func(ctx context.Context, input itemsvc.UpdateItemInput) (*domain.Item, error)
	DeleteItemFunc          func(ctx context.Context, id string) error
	ListDependenciesFunc    func(ctx context.Context, itemID string) ([]domain.ItemRef, error)
	ReplaceDependenciesFunc func(ctx context.Context, input itemsvc.ReplaceDependenciesInput) (int, error)
}

func (f *fakeItemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	if f.ListItemsFunc == nil {
		return nil, nil
	}
	return f.ListItemsFunc(ctx)
}

func (f *fakeItemService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	if f.GetItemFunc == nil {
		return &domain.Item{ID: id}, nil
	}
	return f.GetItemFunc(ctx, id)
}

func (f *fakeItemService) CreateItem(ctx context.Context, input itemsvc.CreateItemInput) (*domain.Item, error) {
	if f.CreateItemFunc == nil {
		return &domain.Item{ID: "new-item"}, nil
	}
	return f.CreateItemFunc(ctx, input)
}

func (f *fakeItemService) UpdateItem(ctx context.Context, input itemsvc.UpdateItemInput) (*domain.Item, error) {
	if f.UpdateItemFunc == nil {
		return &domain.Item{ID: input.ID}, nil
	}
	return f.UpdateItemFunc(ctx, input)
}

func (f *fakeItemService) DeleteItem(ctx context.Context, id string) error {
	if f.DeleteItemFunc == nil {
		return nil
	}
	return f.DeleteItemFunc(ctx, id)
}

func (f *fakeItemService) ListDependencies(ctx context.Context, itemID string) ([]domain.ItemRef, error) {
	if f.ListDependenciesFunc == nil {
		return nil, nil
	}
	return f.ListDependenciesFunc(ctx, itemID)
}

func (f *fakeItemService) ReplaceDependencies(ctx context.Context, input itemsvc.ReplaceDependenciesInput) (int, error) {
	if f.ReplaceDependenciesFunc == nil {
		return len(input.DependsOn), nil
	}
	return f.ReplaceDependenciesFunc(ctx, input)
}

type fakePlanningService struct {
	ListGoalsFunc       func(ctx context.Context, filter domain.GoalFilter) ([]domain.Goal, error)
	GetGoalFunc         func(ctx context.Context, id string) (*domain.Goal, error)
	CreateGoalFunc      func(ctx context.Context, input planning.CreateGoalInput) (*domain.Goal, error)
	UpdateGoalFunc      func(ctx context.Context, input planning.UpdateGoalInput) (*domain.Goal, error)
	DeleteGoalFunc      func(ctx context.Context, id string) error
	ListMilestonesFunc  func(ctx context.Context, filter domain.MilestoneFilter) ([]domain.Milestone, error)
	GetMilestoneFunc    func(ctx context.Context, id string) (*domain.Milestone, error)
	CreateMilestoneFunc func(ctx context.Context, input planning.CreateMilestoneInput) (*domain.Milestone, error)
	UpdateMilestoneFunc func(ctx context.Context, input planning.UpdateMilestoneInput) (*domain.Milestone, error)
	DeleteMilestoneFunc func(ctx context.Context, id string) error
}

func (f *fakePlanningService) ListGoals(ctx context.Context, filter domain.GoalFilter) ([]domain.Goal, error) {
	if f.ListGoalsFunc == nil {
		return nil, nil
	}
	return f.ListGoalsFunc(ctx, filter)
}

func (f *fakePlanningService) GetGoal(ctx context.Context, id string) (*domain.Goal, error) {
	if f.GetGoalFunc == nil {
		return &domain.Goal{ID: id}, nil
	}
	return f.GetGoalFunc(ctx, id)
}

func (f *fakePlanningService) CreateGoal(ctx context.Context, input planning.CreateGoalInput) (*domain.Goal, error) {
	if f.CreateGoalFunc == nil {
		return &domain.Goal{ID: "new-goal"}, nil
	}
	return f.CreateGoalFunc(ctx, input)
}

func (f *fakePlanningService) UpdateGoal(ctx context.Context, input planning.UpdateGoalInput) (*domain.Goal, error) {
	if f.UpdateGoalFunc == nil {
		return &domain.Goal{ID: input.ID}, nil
	}
	return f.UpdateGoalFunc(ctx, input)
}

func (f *fakePlanningService) DeleteGoal(ctx context.Context, id string) error {
	if f.DeleteGoalFunc == nil {
		return nil
	}
	return f.DeleteGoalFunc(ctx, id)
}

func (f *fakePlanningService) ListMilestones(ctx context.Context, filter domain.MilestoneFilter) ([]domain.Milestone, error) {
	if f.ListMilestonesFunc == nil {
		return nil, nil
	}
	return f.ListMilestonesFunc(ctx, filter)
}

func (f *fakePlanningService) GetMilestone(ctx context.Context, id string) (*domain.Milestone, error) {
	if f.GetMilestoneFunc == nil {
		return &domain.Milestone{ID: id}, nil
	}
	return f.GetMilestoneFunc(ctx, id)
}

func (f *fakePlanningService) CreateMilestone(ctx context.Context, input planning.CreateMilestoneInput) (*domain.Milestone, error) {
	if f.CreateMilestoneFunc == nil {
		return &domain.Milestone{ID: "new-milestone"}, nil
	}
	return f.CreateMilestoneFunc(ctx, input)
}

func (f *fakePlanningService) UpdateMilestone(ctx context.Context, input planning.UpdateMilestoneInput) (*domain.Milestone, error) {
	if f.UpdateMilestoneFunc == nil {
		return &domain.Milestone{ID: input.ID}, nil
	}
	return f.UpdateMilestoneFunc(ctx, input)
}

func (f *fakePlanningService) DeleteMilestone(ctx context.Context, id string) error {
	if f.DeleteMilestoneFunc == nil {
		return nil
	}
	return f.DeleteMilestoneFunc(ctx, id)
}

type fakeTrackingService struct {
	ListLogsFunc      func(ctx context.Context, input tracking.ListInput) ([]domain.LogEntry, error)
	GetLogFunc        func(ctx context.Context, id string) (*domain.LogEntry, error)
	CreateLogFunc     func(ctx context.Context, input tracking.CreateLogInput) (*domain.LogEntry, error)
	DeleteLogFunc     func(ctx context.Context, id string) error
	ListSessionsFunc  func(ctx context.Context, input tracking.ListInput) ([]domain.PomodoroSession, error)
	CreateSessionFunc func(ctx context.Context, input tracking.CreateSessionInput) (*domain.PomodoroSession, error)
}

func (f *fakeTrackingService) ListLogs(ctx context.Context, input tracking.ListInput) ([]domain.LogEntry, error) {
	if f.ListLogsFunc == nil {
		return nil, nil
	}
	return f.ListLogsFunc(ctx, input)
}

func (f *fakeTrackingService) GetLog(ctx context.Context, id string) (*domain.LogEntry, error) {
	if f.GetLogFunc == nil {
		return &domain.LogEntry{ID: id}, nil
	}
	return f.GetLogFunc(ctx, id)
}

func (f *fakeTrackingService) CreateLog(ctx context.Context, input tracking.CreateLogInput) (*domain.LogEntry, error) {
	if f.CreateLogFunc == nil {
		return &domain.LogEntry{ID: "new-log"}, nil
	}
	return f.CreateLogFunc(ctx, input)
}

func (f *fakeTrackingService) DeleteLog(ctx context.Context, id string) error {
	if f.DeleteLogFunc == nil {
		return nil
	}
	return f.DeleteLogFunc(ctx, id)
}

func (f *fakeTrackingService) ListSessions(ctx context.Context, input tracking.ListInput) ([]domain.PomodoroSession, error) {
	if f.ListSessionsFunc == nil {
		return nil, nil
	}
	return f.ListSessionsFunc(ctx, input)
}

func (f *fakeTrackingService) CreateSession(ctx context.Context, input tracking.CreateSessionInput) (*domain.PomodoroSession, error) {
	if f.CreateSessionFunc == nil {
		return &domain.PomodoroSession{ID: "new-session"}, nil
	}
	return f.CreateSessionFunc(ctx, input)
}

type fakeSettingService struct {
	GetAllFunc func(ctx context.Context) (map[string]string, error)
	SaveFunc   func(ctx context.Context, values map[string]string) (int, error)
}

func (f *fakeSettingService) GetAll(ctx context.Context) (map[string]string, error) {
	if f.GetAllFunc == nil {
		return map[string]string{}, nil
	}
	return f.GetAllFunc(ctx)
}

func (f *fakeSettingService) Save(ctx context.Context, values map[string]string) (int, error) {
	if f.SaveFunc == nil {
		return len(values), nil
	}
	return f.SaveFunc(ctx, values)
}

type testServices struct {
	items    *fakeItemService
	plans    *fakePlanningService
	tracking *fakeTrackingService
	settings *fakeSettingService
}

// newTestRouter mounts fakes behind the real router. Nil fakes are replaced
// by zero-value ones.
func newTestRouter(s testServices) http.Handler {
	if s.items == nil {
		s.items = &fakeItemService{}
	}
	if s.plans == nil {
		s.plans = &fakePlanningService{}
	}
	if s.tracking == nil {
		s.tracking = &fakeTrackingService{}
	}
	if s.settings == nil {
		s.settings = &fakeSettingService{}
	}

	log := discardLogger()
	return NewRouter(Handlers{
		Health:   NewHealthHandler(&dbPingerMock{}, log),
		Items:    NewItemHandler(s.items, log),
		Plans:    NewPlanHandler(s.plans, log),
		Tracking: NewTrackingHandler(s.tracking, log),
		Settings: NewSettingHandler(s.settings, log),
	})
}
