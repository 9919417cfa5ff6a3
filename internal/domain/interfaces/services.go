package interfaces

import domaintypes "studentdir/internal/domain/types"

// Authenticator checks a username/password pair against stored credentials.
type Authenticator interface {
	Authenticate(
		username domaintypes.Username,
		password string,
	) (domaintypes.Profile, error)
}

// ProfileService owns the in-memory profile directory and its persistence.
type ProfileService interface {
	Authenticator

	Load() error
	Save() error
	Register(
		username domaintypes.Username,
		password, confirmPassword string,
		fields domaintypes.Fields,
	) (domaintypes.Profile, error)
	Get(username domaintypes.Username) (domaintypes.Profile, error)
	UpdateFields(
		username domaintypes.Username,
		update domaintypes.Fields,
	) (domaintypes.Profile, error)
	ChangePassword(
		username domaintypes.Username,
		oldPassword, newPassword, confirmNewPassword string,
	) error
	Len() int
}

// SessionService tracks the single logged-in operator.
type SessionService interface {
	Login(username domaintypes.Username, password string) (domaintypes.Profile, error)
	Logout() (domaintypes.Username, error)
	CurrentUser() (domaintypes.Username, bool)
	Current() (domaintypes.Session, bool)
	RequireLogin() (domaintypes.Username, error)
}
