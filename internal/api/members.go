package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/teamboard/teamboard/internal/domain"
)

// roleBody is the request shape for a member role change.
type roleBody struct {
	Role domain.MemberRole `json:"role"`
}

// ListMembers returns a project's members including the owner.
func (c *Client) ListMembers(ctx context.Context, projectID int) ([]domain.ProjectMember, error) {
	var members []domain.ProjectMember
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d/members", projectID), nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AddMember invites a member into a project and returns the created relation.
func (c *Client) AddMember(ctx context.Context, projectID int, form domain.MemberForm) (*domain.ProjectMember, error) {
	var m domain.ProjectMember
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/members", projectID), form, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMemberRole changes a member's access tier.
func (c *Client) UpdateMemberRole(ctx context.Context, projectID, memberID int, role domain.MemberRole) (*domain.ProjectMember, error) {
	var m domain.ProjectMember
	path := fmt.Sprintf("/projects/%d/members/%d", projectID, memberID)
	if err := c.do(ctx, http.MethodPut, path, roleBody{Role: role}, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// RemoveMember removes a member from a project.
func (c *Client) RemoveMember(ctx context.Context, projectID, memberID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d/members/%d", projectID, memberID), nil, nil)
}
