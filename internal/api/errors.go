package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed API request.
type ErrorKind int

const (
	// KindRequestFailed is any failing status without a more specific kind.
	KindRequestFailed ErrorKind = iota
	// KindUnauthorized is a 401, or a request made without stored credentials.
	KindUnauthorized
	// KindNotFound is a 404.
	KindNotFound
	// KindTimeout is a client-side timeout or a 408.
	KindTimeout
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not found"
	case KindTimeout:
		return "timeout"
	default:
		return "request failed"
	}
}

// Error is a transport-level failure. Body holds the raw response body.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Body       string
	Method     string
	Path       string
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %s (%d)", e.Method, e.Path, e.Kind, e.StatusCode)
}

// kindForStatus maps a failing HTTP status to an ErrorKind.
func kindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusRequestTimeout:
		return KindTimeout
	default:
		return KindRequestFailed
	}
}

// AsError extracts an *Error from err.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is an authentication failure.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == KindUnauthorized
}
