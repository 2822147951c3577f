package domain

import (
	"errors"
	"fmt"
)

// ValidationError indicates a missing or malformed request parameter. It is
// raised before any external call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// AuthError indicates a failed authorization check.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string {
	return e.Msg
}

// NewAuthError creates an AuthError with the given message.
func NewAuthError(msg string) error {
	return &AuthError{Msg: msg}
}

// NotFoundError indicates an operation produced no result (empty search
// result set, meeting without recordings).
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

// NewNotFoundError creates a NotFoundError with the given message.
func NewNotFoundError(msg string) error {
	return &NotFoundError{Msg: msg}
}

// UpstreamError wraps a failure from an external service (storage, indexing,
// generative, search). The upstream message is surfaced verbatim to the
// caller.
type UpstreamError struct {
	Op  string // operation that failed, e.g. "indexing submit"
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError wraps err as an UpstreamError for the named operation.
func NewUpstreamError(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsAuth reports whether err is an AuthError.
func IsAuth(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsUpstream reports whether err is an UpstreamError.
func IsUpstream(err error) bool {
	var e *UpstreamError
	return errors.As(err, &e)
}
