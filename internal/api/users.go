package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/teamboard/teamboard/internal/domain"
)

// SearchUsers finds users by (partial) email address.
func (c *Client) SearchUsers(ctx context.Context, email string) ([]domain.User, error) {
	var users []domain.User
	path := "/users/search?email=" + url.QueryEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns one user by id.
func (c *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%s", url.PathEscape(id)), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
