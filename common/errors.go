package common

import (
	"fmt"

	"github.com/go-faster/errors"
)

// StatusCode represents the category of a command rejection.
type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
	StatusFailedPrecondition
	StatusOutOfRange
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	case StatusFailedPrecondition:
		return "FAILED_PRECONDITION"
	case StatusOutOfRange:
		return "OUT_OF_RANGE"
	default:
		return "UNKNOWN"
	}
}

// CommandError is returned when a command is rejected by business logic.
type CommandError struct {
	Code    StatusCode
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

// Is reports whether target is a CommandError with the same code, so callers
// can match on a category with errors.Is(err, &CommandError{Code: ...}).
func (e *CommandError) Is(target error) bool {
	t, ok := target.(*CommandError)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

// NewInvalidArgument creates a CommandError for invalid input.
func NewInvalidArgument(message string) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: message}
}

// NewFailedPrecondition creates a CommandError for violated preconditions.
func NewFailedPrecondition(message string) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Message: message}
}

// NewFailedPreconditionf creates a CommandError with a formatted message.
func NewFailedPreconditionf(format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Message: fmt.Sprintf(format, args...)}
}

// NewOutOfRange creates a CommandError for values that exceed their representable range.
func NewOutOfRange(message string) *CommandError {
	return &CommandError{Code: StatusOutOfRange, Message: message}
}

// CodeOf returns the StatusCode of the first CommandError in err's chain.
func CodeOf(err error) (StatusCode, bool) {
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		return 0, false
	}
	return cmdErr.Code, true
}
