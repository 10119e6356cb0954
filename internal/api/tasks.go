package api

import (
	"context"
	"net/http"
)

// CreateTaskInput is the payload for POST /tasks.
type CreateTaskInput struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status,omitempty"`
	DueDate     string       `json:"due_date,omitempty"`
	TeamID      string       `json:"team_id"`
	AssigneeIDs []string     `json:"assignee_ids,omitempty"`
}

// UpdateTaskInput is the payload for PUT /tasks/{uuid}. Zero fields are
// omitted and left unchanged server-side.
type UpdateTaskInput struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Priority    TaskPriority `json:"priority,omitempty"`
	Status      TaskStatus   `json:"status,omitempty"`
	DueDate     string       `json:"due_date,omitempty"`
}

type updateStatusInput struct {
	Status TaskStatus `json:"status"`
}

type assigneesInput struct {
	UserIDs []string `json:"user_ids"`
}

// ListMyTasks returns tasks assigned to the caller. Paginated endpoint.
func (c *Client) ListMyTasks(ctx context.Context, filters TaskFilters) ([]Task, error) {
	env, err := c.do(ctx, http.MethodGet, "/tasks/my-tasks", filters.Values(), nil)
	if err != nil {
		return nil, err
	}
	tasks, _, err := decodeList[Task](env, ShapePaginated)
	return tasks, err
}

// ListTeamTasks returns a team's tasks. Paginated endpoint.
func (c *Client) ListTeamTasks(ctx context.Context, teamID string, filters TaskFilters) ([]Task, error) {
	env, err := c.do(ctx, http.MethodGet, "/tasks/team/"+teamID, filters.Values(), nil)
	if err != nil {
		return nil, err
	}
	tasks, _, err := decodeList[Task](env, ShapePaginated)
	return tasks, err
}

// TeamTaskStatistics returns the aggregate counts for a team. Flat endpoint.
func (c *Client) TeamTaskStatistics(ctx context.Context, teamID string) (*TaskStatistics, error) {
	env, err := c.do(ctx, http.MethodGet, "/tasks/team/"+teamID+"/statistics", nil, nil)
	if err != nil {
		return nil, err
	}
	stats, err := decodeData[TaskStatistics](env)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// CreateTask creates a task.
func (c *Client) CreateTask(ctx context.Context, in CreateTaskInput) (*Task, error) {
	env, err := c.do(ctx, http.MethodPost, "/tasks", nil, in)
	if err != nil {
		return nil, err
	}
	task, err := decodeData[Task](env)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetTask returns one task by uuid.
func (c *Client) GetTask(ctx context.Context, uuid string) (*Task, error) {
	env, err := c.do(ctx, http.MethodGet, "/tasks/"+uuid, nil, nil)
	if err != nil {
		return nil, err
	}
	task, err := decodeData[Task](env)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask edits a task's fields.
func (c *Client) UpdateTask(ctx context.Context, uuid string, in UpdateTaskInput) (*Task, error) {
	env, err := c.do(ctx, http.MethodPut, "/tasks/"+uuid, nil, in)
	if err != nil {
		return nil, err
	}
	task, err := decodeData[Task](env)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTaskStatus moves a task to a new status.
func (c *Client) UpdateTaskStatus(ctx context.Context, uuid string, status TaskStatus) (*Task, error) {
	env, err := c.do(ctx, http.MethodPatch, "/tasks/"+uuid+"/status", nil, updateStatusInput{Status: status})
	if err != nil {
		return nil, err
	}
	task, err := decodeData[Task](env)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, uuid string) error {
	_, err := c.do(ctx, http.MethodDelete, "/tasks/"+uuid, nil, nil)
	return err
}

// AssignUsers adds assignees to a task.
func (c *Client) AssignUsers(ctx context.Context, uuid string, userIDs []string) (*Task, error) {
	env, err := c.do(ctx, http.MethodPost, "/tasks/"+uuid+"/assign", nil, assigneesInput{UserIDs: userIDs})
	if err != nil {
		return nil, err
	}
	task, err := decodeData[Task](env)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// RemoveAssignees removes assignees from a task.
func (c *Client) RemoveAssignees(ctx context.Context, uuid string, userIDs []string) (*Task, error) {
	env, err := c.do(ctx, http.MethodPost, "/tasks/"+uuid+"/remove-assignees", nil, assigneesInput{UserIDs: userIDs})
	if err != nil {
		return nil, err
	}
	task, err := decodeData[Task](env)
	if err != nil {
		return nil, err
	}
	return &task, nil
}
