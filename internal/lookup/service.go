// Package lookup talks to the color lookup service.
package lookup

import (
	"context"
	"errors"
	"fmt"

	"colorsearch/internal/domain"
)

// FallbackMessage is shown when a failure carries no message of its own
const FallbackMessage = "Failed to search colors"

// Response is the payload returned by a successful search
type Response struct {
	Data []domain.MatchRecord `json:"data"`
}

// Service searches favorite colors by first name
type Service interface {
	Search(ctx context.Context, query string) (Response, error)
}

// LookupError is the single failure kind surfaced to the search form. Network
// errors, non-2xx responses and malformed bodies all end up here.
type LookupError struct {
	Message    string
	StatusCode int // 0 when no HTTP response was received
	Err        error
}

func (e *LookupError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return FallbackMessage
	}
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing text for err
func Message(err error) string {
	if err == nil {
		return ""
	}
	var le *LookupError
	if errors.As(err, &le) {
		if le.Message != "" {
			return le.Message
		}
		if le.Err != nil && le.Err.Error() != "" {
			return le.Err.Error()
		}
		return FallbackMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return FallbackMessage
}

func failure(status int, err error, format string, args ...any) *LookupError {
	return &LookupError{
		Message:    fmt.Sprintf(format, args...),
		StatusCode: status,
		Err:        err,
	}
}
