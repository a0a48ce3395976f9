package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a referenced match does not exist.
var ErrNotFound = errors.New("match not found")

// ValidationError indicates malformed or out-of-range caller input.
// The caller can recover by resubmitting a corrected request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// StorageError wraps a failure of the durable store. The underlying
// cause is kept for logs but never shown to callers.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
