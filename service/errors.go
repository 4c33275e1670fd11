package service

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the referenced guild config or reaction-role
// definition does not exist. Often a legitimate "nothing here" for callers.
var ErrNotFound = errors.New("not found")

// ErrAlreadyBound indicates a bind attempt on a definition that already has a
// live message. Rebinding requires an explicit unbind first so the previous
// message reference is never silently orphaned.
var ErrAlreadyBound = errors.New("reaction role already bound to a message")

// ValidationError reports a malformed or missing input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error naming the offending field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError wraps a transient backend failure. The boundary layer maps it
// to a 500-class response without leaking backend error text to clients.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err as a storage failure for the named operation.
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsStorage reports whether err is a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
