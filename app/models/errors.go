package models

import (
	"errors"
	"fmt"
)

// Errors surfaced by the marks entry workflow. Handlers map these onto HTTP
// status codes; callers check them with errors.Is.
var (
	// ErrScheduleNotFound - the exam schedule does not exist.
	ErrScheduleNotFound = errors.New("exam schedule not found")

	// ErrStudentNotFound - the student does not exist or is not enrolled.
	ErrStudentNotFound = errors.New("student not found")

	// ErrPermission - the acting user's role may not modify the batch in its current state.
	ErrPermission = errors.New("role not permitted for current workflow state")

	// ErrStateConflict - illegal transition, or the stored status no longer matches
	// the expected prior status (a losing race on the optimistic check).
	ErrStateConflict = errors.New("workflow state conflict")

	// ErrLocked - the batch is LOCKED and can no longer be written.
	ErrLocked = errors.New("results are locked")

	// ErrIncompleteEntry - transition attempted while some students still have
	// no mark, or the batch has no result rows at all.
	ErrIncompleteEntry = errors.New("marks entry is incomplete")
)

// ValidationError reports a rejected input value. A single invalid entry
// rejects the whole batch it arrived in.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for a field.
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
