package clients

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure categories at the upstream boundary.
// Handlers switch on the kind instead of probing response shapes.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindAuth       ErrorKind = "auth"
	KindNotFound   ErrorKind = "not_found"
	KindNetwork    ErrorKind = "network"
	KindServer     ErrorKind = "server"
)

// APIError is the only error type the upstream clients return for request
// failures. StatusCode is zero when the request never reached the service.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream %s error: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("upstream %s error (status %d): %s", e.Kind, e.StatusCode, e.Message)
}

// KindOf classifies any error coming out of a client call. Errors that are
// not APIErrors count as network failures: the request did not complete.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindNetwork
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == 400 || status == 409 || status == 422:
		return KindValidation
	case status == 401 || status == 403:
		return KindAuth
	case status == 404:
		return KindNotFound
	case status >= 500:
		return KindServer
	default:
		return KindServer
	}
}
