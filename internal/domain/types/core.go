package types

import (
	"strings"
	"unicode"
)

// Username identifies a registered student and keys the profile store.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// IsEmpty reports whether the username has no characters.
func (u Username) IsEmpty() bool { return u == "" }

// HasWhitespace reports whether the username contains any Unicode space.
func (u Username) HasWhitespace() bool {
	return strings.IndexFunc(string(u), unicode.IsSpace) >= 0
}
