// Package apperr defines the error taxonomy shared across the service:
// validation failures caught before any write, collaborator (store) failures
// surfaced as generic errors, and data-shape problems in fetched records,
// which readers degrade around instead of failing a whole rollup.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError marks input rejected before the operation was attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for the named field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// CollaboratorError wraps a record-store or downstream failure. No local
// state is mutated until the collaborator confirms, so there is nothing to
// roll back.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("collaborator failure during %s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// Collaborator wraps err as a CollaboratorError for the given operation.
func Collaborator(op string, err error) error {
	if err == nil {
		return nil
	}
	return &CollaboratorError{Op: op, Err: err}
}

// IsCollaborator reports whether err is (or wraps) a CollaboratorError.
func IsCollaborator(err error) bool {
	var ce *CollaboratorError
	return errors.As(err, &ce)
}

// ErrNotFound marks deletion or lookup of an identifier that does not exist.
var ErrNotFound = errors.New("record not found")
