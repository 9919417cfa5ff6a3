package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by the services matches exactly one
// of these under errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrAuth         = errors.New("authentication error")
	ErrNotFound     = errors.New("not found")
	ErrCorruptStore = errors.New("corrupt profile store")
	ErrSession      = errors.New("session error")
)

// Error is a specific failure tagged with its category.
type Error struct {
	Kind    error
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Unwrap returns the category so errors.Is matches it.
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error { return &Error{Kind: kind, Message: msg} }

// Validation errors.
var (
	ErrEmptyUsername        = newError(ErrValidation, "username cannot be empty")
	ErrWhitespaceInUsername = newError(ErrValidation, "username must not contain spaces")
	ErrDuplicateUsername    = newError(ErrValidation, "username already exists")
	ErrPasswordMismatch     = newError(ErrValidation, "passwords do not match")
	ErrPasswordTooShort     = newError(ErrValidation, fmt.Sprintf("password too short (min %d)", MinPasswordLength))
	ErrPasswordTooLong      = newError(ErrValidation, fmt.Sprintf("password too long (max %d bytes)", MaxPasswordBytes))
)

// Authentication errors.
var (
	ErrNoSuchUser       = newError(ErrAuth, "no such user")
	ErrWrongPassword    = newError(ErrAuth, "wrong password")
	ErrWrongOldPassword = newError(ErrAuth, "current password is wrong")
	ErrNotAuthenticated = newError(ErrAuth, "not logged in")
)

// ErrProfileNotFound is returned when an operation targets an absent username.
var ErrProfileNotFound = newError(ErrNotFound, "profile not found")

// ErrNoActiveSession is returned by logout when nobody is logged in.
var ErrNoActiveSession = newError(ErrSession, "no user is logged in")

// CorruptStoreError reports persisted data that exists but cannot be parsed.
type CorruptStoreError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("corrupt profile store %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *CorruptStoreError) Unwrap() error { return e.Err }

// Is matches ErrCorruptStore.
func (e *CorruptStoreError) Is(target error) bool { return target == ErrCorruptStore }
