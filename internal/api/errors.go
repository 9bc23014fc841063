package api

import (
	"errors"
	"fmt"
)

// AuthError is returned when an authenticated endpoint responds with any
// non-2xx status. The client does not distinguish an expired token from a
// generic server failure; every consuming view treats both the same way
// (drop the credential and return to the login view).
type AuthError struct {
	StatusCode int
	Path       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication rejected (%d) on %s", e.StatusCode, e.Path)
}

// IsAuthError reports whether err (or any error in its chain) is an AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// ServerError carries the server-provided message from a login or register
// rejection. It is shown inline in the view, never retried.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// IsServerError reports whether err carries a server rejection message.
func IsServerError(err error) bool {
	var serverErr *ServerError
	return errors.As(err, &serverErr)
}
