package api

import (
	"errors"
	"fmt"
)

// Common API errors.
var (
	// ErrUnauthorized is returned on 401. The client has already cleared
	// the stored token; the user must log in again.
	ErrUnauthorized = errors.New("unauthorized — session expired, run 'libdash login'")
	// ErrForbidden is returned on 403: valid session, insufficient role.
	// It is wrapped with whatever detail the server provided.
	ErrForbidden = errors.New("permission denied")
)

// APIError is any other non-2xx response, with whatever detail string was
// recoverable from the body.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("API error %d", e.Status)
	}
	return fmt.Sprintf("API error %d: %s", e.Status, e.Detail)
}

// reportedError marks an error that already went through the reporting
// hook, so callers further up don't print it a second time.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported reports whether err was already surfaced through the client's
// error hook.
func Reported(err error) bool {
	var re *reportedError
	return errors.As(err, &re)
}
