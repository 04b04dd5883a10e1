package api

import (
	"context"
	"net/http"

	"github.com/teamboard/teamboard/internal/domain"
)

// verifyResponse is the JSON body returned by GET /auth/verify.
type verifyResponse struct {
	User domain.User `json:"user"`
}

// VerifyToken checks the current session token against the server and
// returns the identity it belongs to.
func (c *Client) VerifyToken(ctx context.Context) (*domain.User, error) {
	var resp verifyResponse
	if err := c.do(ctx, http.MethodGet, "/auth/verify", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Me returns the authenticated user's full profile.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
