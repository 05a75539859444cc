package scheduling

import (
	"errors"
	"fmt"
)

// Error codes surfaced to callers. They are stable wire identifiers: a
// validationError must be corrected by the caller, a slotConflict may be
// retried against refreshed availability, an upstreamTimeout is recoverable.
const (
	CodeValidation        = "validationError"
	CodeSlotConflict      = "slotConflict"
	CodeInvalidTransition = "invalidTransition"
	CodeNotFound          = "notFound"
	CodeUpstreamTimeout   = "upstreamTimeout"
	CodeForbidden         = "forbidden"
)

// SchedulingError is a typed service error carrying a machine-readable code
// alongside the human message.
type SchedulingError struct {
	Code    string
	Message string
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &SchedulingError{Code: CodeValidation, Message: msg}
}

func NewSlotConflictError(msg string) error {
	return &SchedulingError{Code: CodeSlotConflict, Message: msg}
}

func NewInvalidTransitionError(msg string) error {
	return &SchedulingError{Code: CodeInvalidTransition, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &SchedulingError{Code: CodeNotFound, Message: msg}
}

func NewUpstreamTimeoutError(msg string) error {
	return &SchedulingError{Code: CodeUpstreamTimeout, Message: msg}
}

func NewForbiddenError(msg string) error {
	return &SchedulingError{Code: CodeForbidden, Message: msg}
}

// CodeOf returns the error code of a SchedulingError, or empty for any
// other error.
func CodeOf(err error) string {
	var se *SchedulingError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsCode reports whether err carries the given scheduling error code.
func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}
