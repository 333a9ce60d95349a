package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

var (
	errBadResponse  = errors.New("invalid response from server")
	errMissingField = errors.New("response is missing the requested field")
)

// HTTPError represents a non-2xx HTTP response from the API.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}

// GraphQLError carries the errors[] array of a GraphQL response.
type GraphQLError struct {
	Messages []string
	Code     string // extensions.code of the first error
}

func (e *GraphQLError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Describe turns a transport or protocol error into a message fit for a
// status line.
func Describe(err error) string {
	var (
		httpErr *HTTPError
		gqlErr  *GraphQLError
		netErr  net.Error
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return "Request cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		return "Request timed out"
	case errors.As(err, &gqlErr) && len(gqlErr.Messages) > 0:
		return gqlErr.Messages[0]
	case errors.As(err, &httpErr):
		if httpErr.Message != "" {
			return httpErr.Message
		}
		if text := http.StatusText(httpErr.StatusCode); text != "" {
			return fmt.Sprintf("HTTP %d %s", httpErr.StatusCode, text)
		}
		return fmt.Sprintf("HTTP %d", httpErr.StatusCode)
	case errors.As(err, &netErr) && netErr.Timeout():
		return "Request timed out"
	case errors.As(err, &netErr):
		return "Network error: " + rootCause(err).Error()
	case errors.Is(err, errBadResponse), errors.Is(err, errMissingField):
		return "Invalid response from server"
	default:
		return err.Error()
	}
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
