package provider

import (
	"errors"
	"fmt"

	"github.com/loftlist/seedkit/internal/domain"
)

// Sentinel errors shared by all provider clients.
var (
	ErrRateLimited  = errors.New("provider: rate limited by server")
	ErrUnauthorized = errors.New("provider: invalid or missing credentials")
	ErrBadRequest   = errors.New("provider: bad request")
	ErrServer       = errors.New("provider: server error")
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op     string // Operation: "search"
	Source domain.Source
	Query  string
	Err    error
}

func (e *Error) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("%s %s [%q]: %v", e.Source, e.Op, e.Query, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Source, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WrapError creates an Error with context. Used by the provider clients.
func WrapError(op string, source domain.Source, query string, err error) error {
	return &Error{Op: op, Source: source, Query: query, Err: err}
}
