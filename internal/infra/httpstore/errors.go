package httpstore

import (
	"errors"
	"fmt"

	"github.com/runoshun/quadrant/internal/domain"
)

// RequestError is returned for failed store requests.
// It matches domain.ErrRequestFailed with errors.Is.
// Fields are ordered to minimize memory padding.
type RequestError struct {
	Err        error  // Transport or decode error, nil for HTTP failures
	Method     string // HTTP method
	Path       string // Request path without query
	Message    string // Server-provided error, or a generic one
	StatusCode int    // 0 if no response was received
}

// Error implements error.
func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is reports whether target is domain.ErrRequestFailed.
func (e *RequestError) Is(target error) bool {
	return target == domain.ErrRequestFailed
}

// NotFound reports whether the server answered 404.
func (e *RequestError) NotFound() bool {
	return e.StatusCode == 404
}

// Notification returns the text shown to the user for err.
// Server-provided messages are passed through; anything else is generic.
func Notification(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Err == nil {
		return reqErr.Message
	}
	return "请求失败"
}

func genericMessage(status int) string {
	return fmt.Sprintf("请求失败 (%d)", status)
}
