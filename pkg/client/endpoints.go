package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ----- Items -----

func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	var out []Item
	if err := c.do(ctx, http.MethodGet, "/items", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetItem(ctx context.Context, id string) (*Item, error) {
	var out Item
	if err := c.do(ctx, http.MethodGet, resourcePath("items", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateItem returns the id of the new item.
func (c *Client) CreateItem(ctx context.Context, in NewItem) (string, error) {
	var out idResponse
	if err := c.do(ctx, http.MethodPost, "/items", nil, in, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) UpdateItem(ctx context.Context, id string, fields Patch) error {
	return c.do(ctx, http.MethodPatch, resourcePath("items", id), nil, patchBody(fields), nil)
}

// DeleteItem removes the item together with its logs, sessions and dependency edges.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resourcePath("items", id), nil, nil, nil)
}

func (c *Client) ListItemDependencies(ctx context.Context, id string) ([]ItemRef, error) {
	var out []ItemRef
	if err := c.do(ctx, http.MethodGet, resourcePath("items", id, "dependencies"), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveItemDependencies replaces the dependency list and returns how many edges were stored.
func (c *Client) SaveItemDependencies(ctx context.Context, id string, dependsOn []string) (int, error) {
	if dependsOn == nil {
		dependsOn = []string{}
	}
	body := map[string]any{"dependencies": dependsOn}

	var out countResponse
	if err := c.do(ctx, http.MethodPut, resourcePath("items", id, "dependencies"), nil, body, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// ----- Goals -----

func (c *Client) ListGoals(ctx context.Context, q GoalQuery) ([]Goal, error) {
	query := url.Values{}
	setIf(query, "period", q.Period)
	setIf(query, "status", q.Status)

	var out []Goal
	if err := c.do(ctx, http.MethodGet, "/goals", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetGoal(ctx context.Context, id string) (*Goal, error) {
	var out Goal
	if err := c.do(ctx, http.MethodGet, resourcePath("goals", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateGoal(ctx context.Context, in NewGoal) (string, error) {
	var out idResponse
	if err := c.do(ctx, http.MethodPost, "/goals", nil, in, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) UpdateGoal(ctx context.Context, id string, fields Patch) error {
	return c.do(ctx, http.MethodPatch, resourcePath("goals", id), nil, patchBody(fields), nil)
}

// DeleteGoal removes the goal and its milestones, unlinking any items.
func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resourcePath("goals", id), nil, nil, nil)
}

// ----- Milestones -----

// ListMilestones lists milestones of goalID, or all of them when goalID is empty.
func (c *Client) ListMilestones(ctx context.Context, goalID string) ([]Milestone, error) {
	query := url.Values{}
	setIf(query, "goal_id", goalID)

	var out []Milestone
	if err := c.do(ctx, http.MethodGet, "/milestones", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMilestone(ctx context.Context, id string) (*Milestone, error) {
	var out Milestone
	if err := c.do(ctx, http.MethodGet, resourcePath("milestones", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMilestone(ctx context.Context, in NewMilestone) (string, error) {
	var out idResponse
	if err := c.do(ctx, http.MethodPost, "/milestones", nil, in, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) UpdateMilestone(ctx context.Context, id string, fields Patch) error {
	return c.do(ctx, http.MethodPatch, resourcePath("milestones", id), nil, patchBody(fields), nil)
}

func (c *Client) DeleteMilestone(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resourcePath("milestones", id), nil, nil, nil)
}

// ----- Logs -----

func (c *Client) ListLogs(ctx context.Context, q RangeQuery) ([]Log, error) {
	var out []Log
	if err := c.do(ctx, http.MethodGet, "/logs", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetLog(ctx context.Context, id string) (*Log, error) {
	var out Log
	if err := c.do(ctx, http.MethodGet, resourcePath("logs", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateLog(ctx context.Context, in NewLog) (string, error) {
	var out idResponse
	if err := c.do(ctx, http.MethodPost, "/logs", nil, in, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) DeleteLog(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, resourcePath("logs", id), nil, nil, nil)
}

// ----- Pomodoro -----

func (c *Client) ListPomodoroSessions(ctx context.Context, q RangeQuery) ([]PomodoroSession, error) {
	var out []PomodoroSession
	if err := c.do(ctx, http.MethodGet, "/pomodoro", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePomodoroSession(ctx context.Context, in NewPomodoroSession) (string, error) {
	var out idResponse
	if err := c.do(ctx, http.MethodPost, "/pomodoro", nil, in, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// ----- Settings -----

func (c *Client) GetSettings(ctx context.Context) (map[string]string, error) {
	out := map[string]string{}
	if err := c.do(ctx, http.MethodGet, "/settings", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveSettings upserts every key. Non-string values are stored in their string form.
// It returns the number of keys written.
func (c *Client) SaveSettings(ctx context.Context, values map[string]any) (int, error) {
	if values == nil {
		values = map[string]any{}
	}

	var out updatedResponse
	if err := c.do(ctx, http.MethodPut, "/settings", nil, values, &out); err != nil {
		return 0, err
	}
	return out.Updated, nil
}

func (q RangeQuery) values() url.Values {
	v := url.Values{}
	setIf(v, "item_id", q.ItemID)
	setIf(v, "start", q.Start)
	setIf(v, "end", q.End)
	if q.Limit != nil {
		v.Set("limit", strconv.Itoa(*q.Limit))
	}
	return v
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func patchBody(fields Patch) Patch {
	if fields == nil {
		return Patch{}
	}
	return fields
}
