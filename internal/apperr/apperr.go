package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain failure so the HTTP layer can pick a status code.
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindForbidden        Kind = "forbidden"
	KindNotStarted       Kind = "not_started"
	KindExpired          Kind = "expired"
	KindAlreadySubmitted Kind = "already_submitted"
	KindInvalidInput     Kind = "invalid_input"
	KindDataIntegrity    Kind = "data_integrity"
	KindStorageFailure   Kind = "storage_failure"
)

// Error is a domain error carrying a Kind and a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, &Error{Kind: KindExpired}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NotFound(message string) *Error         { return New(KindNotFound, message) }
func Forbidden(message string) *Error        { return New(KindForbidden, message) }
func NotStarted(message string) *Error       { return New(KindNotStarted, message) }
func Expired(message string) *Error          { return New(KindExpired, message) }
func AlreadySubmitted(message string) *Error { return New(KindAlreadySubmitted, message) }
func InvalidInput(message string) *Error     { return New(KindInvalidInput, message) }

func StorageFailure(message string, err error) *Error {
	return Wrap(KindStorageFailure, message, err)
}

// KindOf returns the Kind of the first *Error in err's chain.
// Anything else is reported as a storage failure.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorageFailure
}

// MessageOf returns the caller-facing message of err, hiding internals of unknown faults.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return "Internal server error"
}

func HTTPStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindNotStarted, KindExpired, KindInvalidInput:
		return http.StatusBadRequest
	case KindAlreadySubmitted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
