package startpage

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// ConfigError reports invalid arguments. It is returned before any network
// activity takes place.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "startpage: invalid configuration: " + e.Message
	}
	return fmt.Sprintf("startpage: invalid %s: %s", e.Field, e.Message)
}

// HTTPError is a non-success status returned by Startpage
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("startpage: http error %d: %s", e.StatusCode, e.Message)
}

// RateLimitError is returned for 429 responses. It also satisfies
// errors.As(err, **HTTPError).
type RateLimitError struct {
	HTTPError
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("startpage: rate limited (retry after %s): %s", e.RetryAfter, e.Message)
	}
	return "startpage: rate limited: " + e.Message
}

func (e *RateLimitError) As(target any) bool {
	if t, ok := target.(**HTTPError); ok {
		*t = &e.HTTPError
		return true
	}
	return false
}

// TransportError wraps failures below HTTP: DNS, connection refused, proxy
// failures, timeouts and body read errors.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("startpage: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the underlying failure was a deadline.
func (e *TransportError) Timeout() bool {
	var netErr net.Error
	if errors.As(e.Err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// ParseError means the fetched document could not be interpreted as the
// requested kind of page.
type ParseError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("startpage: parse %s results: %s", e.Kind, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsRateLimited reports whether err is, or wraps, a RateLimitError.
func IsRateLimited(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}
