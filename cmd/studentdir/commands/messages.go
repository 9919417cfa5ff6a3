package commands

import (
	"errors"

	"studentdir/internal/domain"
)

// describe turns a service error into the sentence shown to the operator.
func describe(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyUsername):
		return "Username cannot be empty."
	case errors.Is(err, domain.ErrWhitespaceInUsername):
		return "Please do not use spaces."
	case errors.Is(err, domain.ErrDuplicateUsername):
		return "This username already exists. Pick another."
	case errors.Is(err, domain.ErrPasswordMismatch):
		return "Passwords do not match."
	case errors.Is(err, domain.ErrPasswordTooShort):
		return "Password too short (min 4)."
	case errors.Is(err, domain.ErrPasswordTooLong):
		return "Password too long (max 72 bytes)."
	case errors.Is(err, domain.ErrNoSuchUser):
		return "No such user. Register first."
	case errors.Is(err, domain.ErrWrongPassword):
		return "Wrong password."
	case errors.Is(err, domain.ErrWrongOldPassword):
		return "Current password is wrong."
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "You must login first."
	case errors.Is(err, domain.ErrProfileNotFound):
		return "Profile not found."
	case errors.Is(err, domain.ErrNoActiveSession):
		return "No user is logged in."
	}
	return "Error: " + err.Error()
}

// operatorError lets cobra print the operator sentence for a service error.
type operatorError struct{ err error }

func (e operatorError) Error() string { return describe(e.err) }
func (e operatorError) Unwrap() error { return e.err }

func fail(err error) error {
	if err == nil {
		return nil
	}
	return operatorError{err: err}
}
