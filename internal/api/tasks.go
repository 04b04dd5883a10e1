package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/teamboard/teamboard/internal/domain"
)

// ListTasks returns all tasks for a project, in the server's return order.
func (c *Client) ListTasks(ctx context.Context, projectID int) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d/tasks", projectID), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask posts a new task into a project and returns the created record.
func (c *Client) CreateTask(ctx context.Context, projectID int, form domain.TaskForm) (*domain.Task, error) {
	var t domain.Task
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/tasks", projectID), form, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTask applies a partial update and returns the updated record.
func (c *Client) UpdateTask(ctx context.Context, id int, form domain.TaskForm) (*domain.Task, error) {
	var t domain.Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), form, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTask removes a single task.
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}

// MyTasks returns the authenticated user's assigned tasks across projects.
func (c *Client) MyTasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.do(ctx, http.MethodGet, "/my-tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
