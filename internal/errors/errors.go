// Package errors classifies request failures so the HTTP boundary can map
// them to a status code without leaking their detail to the client.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the class of a failure.
type Kind int

const (
	Internal Kind = iota
	Unavailable
	Render
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Unavailable:
		return "unavailable"
	case Render:
		return "render"
	case NotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// StatusCode is the HTTP status reported for failures of this kind.
func (k Kind) StatusCode() int {
	switch k {
	case Unavailable:
		return http.StatusServiceUnavailable
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error wraps an underlying error with the operation that failed and its kind.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// FetchFailed marks a failed read from the data source.
func FetchFailed(op string, err error) error {
	return E(Unavailable, op, err)
}

// RenderFailed marks a failed template execution.
func RenderFailed(op string, err error) error {
	return E(Render, op, err)
}

// KindOf reports the kind of err. Unclassified errors are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// StatusCode maps err to an HTTP status. A nil error is 200.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return KindOf(err).StatusCode()
}

// OpOf returns the operation recorded on err, or "" when it has none.
func OpOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}
