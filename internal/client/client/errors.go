package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrMalformedResponse = errors.New("malformed response")
)

// AppError is a request the backend rejected with a message meant for the
// user. The message is shown verbatim.
type AppError struct {
	StatusCode int
	Message    string
}

func (e *AppError) Error() string {
	return e.Message
}

// Is lets callers match a 401 rejection with errors.Is(err, ErrUnauthorized).
func (e *AppError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// TransportError is any failure that did not come with a backend message:
// network errors, timeouts, unexpected status codes, undecodable bodies.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Kind classifies an error for presentation.
type Kind int

const (
	KindUnknown Kind = iota
	// KindBackendRejected: the backend answered with a message (AppError).
	KindBackendRejected
	// KindTransport: no usable answer from the backend (TransportError).
	KindTransport
	// KindValidation: a form was rejected before any request was sent.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindBackendRejected:
		return "backend_rejected"
	case KindTransport:
		return "transport"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// validationError is implemented by form validation errors. Declared here so
// KindOf can classify them without this package importing the schemas.
type validationError interface {
	error
	ValidationFailed() bool
}

// KindOf reports which kind err belongs to, looking through wrapping.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var ve validationError
	if errors.As(err, &ve) && ve.ValidationFailed() {
		return KindValidation
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return KindBackendRejected
	}

	var te *TransportError
	if errors.As(err, &te) {
		return KindTransport
	}

	return KindUnknown
}

// UserMessage picks the text to show for err: the backend message for an
// AppError, the validation summary for a validation error, fallback for
// everything else.
func UserMessage(err error, fallback string) string {
	switch KindOf(err) {
	case KindBackendRejected:
		var appErr *AppError
		errors.As(err, &appErr)
		return appErr.Message
	case KindValidation:
		var ve validationError
		errors.As(err, &ve)
		return ve.Error()
	default:
		return fallback
	}
}
