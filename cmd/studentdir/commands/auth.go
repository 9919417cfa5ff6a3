package commands

import (
	"errors"

	"studentdir/internal/domain"
)

func (c *cli) requireUsername() (domain.Username, error) {
	if c.username == "" {
		return "", errors.New("--username required (-u)")
	}
	return domain.Username(c.username), nil
}

// passwordOr returns the --password flag, prompting with label when unset.
func (c *cli) passwordOr(label string) (string, error) {
	if c.password != "" {
		return c.password, nil
	}
	return c.prompt.secret(label)
}

// loginFromFlags starts a session for --username.
func (c *cli) loginFromFlags() (domain.Profile, error) {
	username, err := c.requireUsername()
	if err != nil {
		return domain.Profile{}, err
	}
	password, err := c.passwordOr("Password: ")
	if err != nil {
		return domain.Profile{}, err
	}
	p, err := c.appCtx.Session.Login(username, password)
	if err != nil {
		return domain.Profile{}, fail(err)
	}
	return p, nil
}
