package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents an input validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// UserError represents an error caused by user input or configuration.
// Suggestion can provide a concrete fix for the user.
type UserError struct {
	Message    string
	Suggestion string
	Err        error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a UserError with a message and optional suggestion.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion}
}

// WrapUserError wraps an underlying error with a user-facing message and suggestion.
func WrapUserError(err error, message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion, Err: err}
}

// PrivilegeError means the process lacks the administrative rights the
// collectors need.
type PrivilegeError struct {
	Suggestion string
}

func (e *PrivilegeError) Error() string {
	return "administrative privileges required"
}

// NewPrivilegeError creates a PrivilegeError with the standard suggestion.
func NewPrivilegeError() *PrivilegeError {
	return &PrivilegeError{
		Suggestion: "Re-run from an elevated shell (Run as administrator)",
	}
}

// CollectError wraps a failure from one collector subsystem.
type CollectError struct {
	Section string
	Err     error
}

// WrapCollect wraps an error with the section it came from.
// Returns nil if err is nil.
func WrapCollect(section string, err error) error {
	if err == nil {
		return nil
	}
	return &CollectError{Section: section, Err: err}
}

func (e *CollectError) Error() string {
	return fmt.Sprintf("collecting %s: %v", e.Section, e.Err)
}

func (e *CollectError) Unwrap() error {
	return e.Err
}

// Type checkers
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

func IsPrivilegeError(err error) bool {
	var e *PrivilegeError
	return errors.As(err, &e)
}

func IsCollectError(err error) bool {
	var e *CollectError
	return errors.As(err, &e)
}

// UserSuggestion returns a suggestion string if err carries one.
func UserSuggestion(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Suggestion
	}
	var pe *PrivilegeError
	if errors.As(err, &pe) {
		return pe.Suggestion
	}
	return ""
}
