package domain

import "unicode/utf8"

const (
	// MinPasswordLength is the minimum number of characters in a password.
	MinPasswordLength = 4
	// MaxPasswordBytes is the longest password the credential hash accepts.
	MaxPasswordBytes = 72

	// LockedCredential is stored in place of a hash for an account whose
	// imported password could not be hashed. No password verifies against it.
	LockedCredential = "!locked"
)

// ValidateUsername checks the shape of a new username. Uniqueness is the
// profile service's concern.
func ValidateUsername(u Username) error {
	switch {
	case u.IsEmpty():
		return ErrEmptyUsername
	case u.HasWhitespace():
		return ErrWhitespaceInUsername
	}
	return nil
}

// ValidateNewPassword checks a password and its confirmation.
func ValidateNewPassword(password, confirm string) error {
	switch {
	case password != confirm:
		return ErrPasswordMismatch
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordBytes:
		return ErrPasswordTooLong
	}
	return nil
}
