// internal/apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"
)

// Kind is the stable machine-readable code a client can branch on.
// Human messages may change; kinds never do.
type Kind string

const (
	LocationMissing    Kind = "LOCATION_MISSING"
	LocationNotFound   Kind = "LOCATION_NOT_FOUND"
	InvalidCoordinates Kind = "INVALID_COORDINATES"
	LookupTimeout      Kind = "LOCATION_LOOKUP_TIMEOUT"
	AlreadyCheckedIn   Kind = "ALREADY_CHECKED_IN"
	NoOpenSession      Kind = "NO_OPEN_SESSION"
	InvalidTask        Kind = "INVALID_TASK"
	InvalidExportRange Kind = "INVALID_EXPORT_RANGE"
	UserNotFound       Kind = "USER_NOT_FOUND"
	StorageUnavailable Kind = "STORAGE_UNAVAILABLE"
)

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap keeps the underlying cause reachable through errors.Is/As while the
// boundary only ever exposes Kind and Message.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// Storage marks a persistence-medium failure so the boundary can answer with
// a retryable status instead of a client error.
func Storage(op string, cause error) *Error {
	return Wrap(StorageUnavailable, op+" failed", cause)
}

// KindOf returns the kind carried by err, or "" for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
