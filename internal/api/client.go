package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the current session bearer token. The client asks
// for the token immediately before every request so that a token refreshed
// mid-session is always used fresh; it is never cached across requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenSource returning a fixed token. Useful for tests
// and one-off scripts.
type StaticToken string

func (t StaticToken) Token(context.Context) (string, error) {
	if t == "" {
		return "", ErrNoToken
	}
	return string(t), nil
}

// Client issues authenticated requests against the project-management API.
// It exposes one method per (resource, verb) pair and never swallows
// server errors; callers own user-facing messaging.
type Client struct {
	cfg      Config
	http     *http.Client
	tokens   TokenSource
	observer Observer
}

// NewClient creates a Client for the given API base URL.
func NewClient(cfg Config, tokens TokenSource, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg:      cfg,
		http:     &http.Client{},
		tokens:   tokens,
		observer: observer,
	}
}

// errorBody is the JSON shape of a server error response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do issues one request. A non-nil body is sent as JSON; a non-nil out
// receives the decoded response body on success.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	start := time.Now()
	status, err := c.roundTrip(ctx, method, path, body, out)

	event := CallEvent{
		Method:    method,
		Path:      path,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		event.ErrorCode = errorCode(err)
	}
	c.observer.OnCallComplete(event)

	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body any, out any) (int, error) {
	timeout := time.Duration(c.cfg.TimeoutMs) * time.Millisecond
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}

	// The token is acquired per request, never cached on the client.
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return 0, fmt.Errorf("%w: %s %s", ErrTimeout, method, path)
		}
		return 0, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		msg := eb.Error
		if msg == "" {
			msg = eb.Message
		}
		if msg == "" {
			msg = strings.TrimSpace(string(data))
		}
		return resp.StatusCode, &Error{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return resp.StatusCode, nil
}

func errorCode(err error) string {
	var apiErr *Error
	switch {
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrUnreachable):
		return "unreachable"
	case errors.Is(err, ErrNoToken):
		return "no_token"
	case errors.As(err, &apiErr):
		return fmt.Sprintf("http_%d", apiErr.Status)
	default:
		return "internal"
	}
}
