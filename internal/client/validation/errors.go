package validation

import (
	"errors"
	"strings"
)

var ErrInvalid = errors.New("invalid form")

// FieldError is one failed rule. Field is the JSON name of the field.
type FieldError struct {
	Field   string
	Message string
}

// Error lists every field that failed, in declaration order.
type Error struct {
	Fields []FieldError
}

// Failure builds an Error for a single field, for checks that are not
// expressed as struct tags.
func Failure(field, message string) *Error {
	return &Error{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// ValidationFailed marks the error as a form validation failure.
func (e *Error) ValidationFailed() bool {
	return true
}

// Message returns the message for field, or "" when the field passed.
func (e *Error) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}
