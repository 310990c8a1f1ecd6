// Package errors provides shared error types for the ProPresenter adapter.
package errors

import (
	"fmt"
)

// NotFoundError indicates a named item was absent from a ProPresenter listing.
// It is distinct from a remote 404: the listing call succeeded but no item's
// display name matched exactly.
type NotFoundError struct {
	Kind string // "macro", "look", "playlist"
	Name string // the display name that was looked up
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No %s found with the name '%s'. Names are case-sensitive and must match exactly.", e.Kind, e.Name)
}

// NewNotFoundError creates a NotFoundError for a name lookup miss.
func NewNotFoundError(kind, name string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name}
}

// ValidationError indicates invalid tool arguments.
type ValidationError struct {
	Field   string // argument name that failed validation
	Value   string // the invalid value
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
