package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable indicates the API server could not be contacted.
	ErrUnreachable = errors.New("api server unreachable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("api request timed out")

	// ErrNoToken indicates a request was attempted without a session token.
	ErrNoToken = errors.New("no session token (run login first)")
)

// Error is a server-rejected request: a 4xx/5xx response with the server's
// error text carried through unmodified.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error (status %d)", e.Status)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// IsNotFound reports whether err is a server 404 response.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == 404
}

// IsUnauthorized reports whether err is a server 401 response.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == 401
}
