package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/teamboard/teamboard/internal/domain"
)

// ListProjects returns all projects visible to the authenticated user,
// in the server's return order.
func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	if err := c.do(ctx, http.MethodGet, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject returns one project by id, with embedded tasks/members/files
// when the server includes them.
func (c *Client) GetProject(ctx context.Context, id int) (*domain.Project, error) {
	var p domain.Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProject posts a new project and returns the server-assigned record.
func (c *Client) CreateProject(ctx context.Context, form domain.ProjectForm) (*domain.Project, error) {
	var p domain.Project
	if err := c.do(ctx, http.MethodPost, "/projects", form, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProject applies a partial update and returns the updated record.
func (c *Client) UpdateProject(ctx context.Context, id int, form domain.ProjectForm) (*domain.Project, error) {
	var p domain.Project
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/projects/%d", id), form, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProject removes a project and everything scoped to it.
func (c *Client) DeleteProject(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, nil)
}
