package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"studentdir/internal/domain"
)

func (c *cli) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive student menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShell(cmd)
		},
	}
}

func (c *cli) runShell(cmd *cobra.Command) error {
	sh := &shell{
		profiles: c.appCtx.Profiles,
		session:  c.appCtx.Session,
		prompt:   c.prompt,
		out:      cmd.OutOrStdout(),
	}
	return sh.run()
}

// shell is the numbered menu loop. Service errors are reported to the
// operator and the loop continues; only input errors end it.
type shell struct {
	profiles domain.ProfileService
	session  domain.SessionService
	prompt   *prompter
	out      io.Writer
}

func (s *shell) say(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *shell) run() error {
	for {
		s.say("\n=== Student Directory ===")
		s.say("1. Registration")
		s.say("2. Login")
		s.say("3. Show Profile")
		s.say("4. Update Profile")
		s.say("5. Logout")
		s.say("6. Main Menu (show again)")
		s.say("7. Exit")
		choice, err := s.prompt.text("Select option 1-7: ")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = s.register()
		case "2":
			err = s.login()
		case "3":
			err = s.show()
		case "4":
			err = s.update()
		case "5":
			s.logout()
		case "6":
			continue
		case "7":
			s.say("\nExiting. Goodbye!")
			return nil
		default:
			s.say("Invalid choice, please enter a number from 1 to 7.")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// endOfInput treats a closed input stream as a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *shell) register() error {
	s.say("\n--- REGISTER ---")

	var username domain.Username
	for {
		v, err := s.prompt.text("Enter username (no spaces): ")
		if err != nil {
			return err
		}
		username = domain.Username(v)
		if err := domain.ValidateUsername(username); err != nil {
			s.say(describe(err))
			continue
		}
		if _, err := s.profiles.Get(username); err == nil {
			s.say(describe(domain.ErrDuplicateUsername))
			continue
		}
		break
	}

	var password, confirm string
	for {
		var err error
		if password, err = s.prompt.secret("Enter password: "); err != nil {
			return err
		}
		if confirm, err = s.prompt.secret("Confirm password: "); err != nil {
			return err
		}
		if err := domain.ValidateNewPassword(password, confirm); err != nil {
			s.say(describe(err))
			continue
		}
		break
	}

	s.say("\nEnter the student details (press Enter to leave a field blank):")
	var fields domain.Fields
	for _, spec := range fieldSpecs {
		v, err := s.prompt.text(spec.prompt + ": ")
		if err != nil {
			return err
		}
		fields.Set(spec.name, v)
	}

	if _, err := s.profiles.Register(username, password, confirm, fields); err != nil {
		s.say(describe(err))
		return nil
	}
	s.say("\nRegistration complete. You can now login with your username.")
	return nil
}

func (s *shell) login() error {
	s.say("\n--- LOGIN ---")
	v, err := s.prompt.text("Username: ")
	if err != nil {
		return err
	}
	username := domain.Username(v)
	if username.IsEmpty() {
		s.say("Please enter a username.")
		return nil
	}
	if _, err := s.profiles.Get(username); err != nil {
		s.say(describe(domain.ErrNoSuchUser))
		return nil
	}
	password, err := s.prompt.secret("Password: ")
	if err != nil {
		return err
	}
	p, err := s.session.Login(username, password)
	if err != nil {
		s.say(describe(err))
		return nil
	}
	s.say("Login successful. Welcome, " + p.DisplayName())
	return nil
}

func (s *shell) show() error {
	s.say("\n--- SHOW PROFILE ---")
	username, err := s.session.RequireLogin()
	if err != nil {
		s.say("You must login first to view profile.")
		return nil
	}
	p, err := s.profiles.Get(username)
	if err != nil {
		s.say(describe(err))
		return nil
	}
	printProfile(s.out, p)
	return nil
}

func (s *shell) update() error {
	s.say("\n--- UPDATE PROFILE ---")
	username, err := s.session.RequireLogin()
	if err != nil {
		s.say("You must login first to update profile.")
		return nil
	}
	if _, err := s.profiles.Get(username); err != nil {
		s.say("Profile missing.")
		return nil
	}

	for {
		s.say("\nUpdate options:")
		s.say("1 - Update fields (name, email, phone, address, etc.)")
		s.say("2 - Change password")
		s.say("3 - Back to main menu")
		choice, err := s.prompt.text("Choose 1/2/3: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = s.updateFields(username)
		case "2":
			err = s.changePassword(username)
		case "3":
			return nil
		default:
			s.say("Please choose 1, 2, or 3.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *shell) updateFields(username domain.Username) error {
	var update domain.Fields
	for _, spec := range fieldSpecs {
		v, err := s.prompt.text(spec.label + " (leave blank to keep): ")
		if err != nil {
			return err
		}
		update.Set(spec.name, v)
	}
	if _, err := s.profiles.UpdateFields(username, update); err != nil {
		s.say(describe(err))
		return nil
	}
	s.say("Profile updated.")
	return nil
}

func (s *shell) changePassword(username domain.Username) error {
	old, err := s.prompt.secret("Enter current password: ")
	if err != nil {
		return err
	}
	if _, err := s.profiles.Authenticate(username, old); err != nil {
		s.say(describe(domain.ErrWrongOldPassword))
		return nil
	}
	next, err := s.prompt.secret("Enter new password: ")
	if err != nil {
		return err
	}
	confirm, err := s.prompt.secret("Confirm new password: ")
	if err != nil {
		return err
	}

	err = s.profiles.ChangePassword(username, old, next, confirm)
	switch {
	case err == nil:
		s.say("Password changed.")
	case errors.Is(err, domain.ErrPasswordTooShort):
		s.say("New password is too short.")
	default:
		s.say(describe(err))
	}
	return nil
}

func (s *shell) logout() {
	s.say("\n--- LOGOUT ---")
	username, err := s.session.Logout()
	if err != nil {
		s.say(describe(err))
		return
	}
	s.say(fmt.Sprintf("User %s has been logged out.", username))
}
