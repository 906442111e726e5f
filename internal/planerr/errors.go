// Package planerr defines the error taxonomy shared by the reading-plan core.
//
// Every failure the core can report is either an invalid argument (unknown
// testament, non-positive day count, malformed reference) or a missing
// registry entry (unknown fixed plan or preset). Callers branch with
// errors.Is against ErrInvalidArgument and ErrNotFound; the concrete types
// carry the offending field or identifier for display.
package planerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a caller-supplied value failed validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound indicates a registry lookup found nothing.
	ErrNotFound = errors.New("not found")
)

// ValidationError describes a rejected input value.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Field != "" && e.Value != "":
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
	case e.Field != "":
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	default:
		return fmt.Sprintf("invalid argument: %s", e.Message)
	}
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

// NotFoundError describes a failed registry lookup.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewValidation builds a ValidationError.
func NewValidation(field, value, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// NewNotFound builds a NotFoundError.
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}
