// Package apperrors defines the error taxonomy exposed by the service layer.
// Storage-level detail never crosses the boundary; handlers map kinds to
// HTTP status codes and log the wrapped cause internally.
package apperrors

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

// Kind classifies a service failure for callers.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation means the caller supplied missing or malformed fields.
	KindValidation
	// KindNotFound means the referenced entity does not exist.
	KindNotFound
	// KindConflict means a uniqueness invariant rejected the operation.
	KindConflict
	// KindTransactionFailure means an atomic unit could not commit; nothing
	// partial was persisted and the operation is safe to retry.
	KindTransactionFailure
)

// Error carries a caller-safe message plus the internal cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a KindValidation error.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// NotFound returns a KindNotFound error.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Conflict returns a KindConflict error.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Msg: msg}
}

// TransactionFailure wraps a commit failure with a caller-safe message.
func TransactionFailure(msg string, err error) *Error {
	return &Error{Kind: KindTransactionFailure, Msg: msg, Err: err}
}

// KindOf extracts the Kind from err, or KindUnknown for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// uniqueViolation is the SQLSTATE class for unique constraint violations.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The constraint is the backstop for concurrent writers; callers
// translate it to Conflict.
func IsUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == uniqueViolation
	}
	return false
}
