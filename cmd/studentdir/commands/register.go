package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"studentdir/internal/domain"
)

func (c *cli) registerCmd() *cobra.Command {
	var confirm string
	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create a student profile",
		Args:  cobra.ExactArgs(1),
	}
	fields := bindFieldFlags(cmd)
	cmd.Flags().StringVar(&confirm, "confirm", "", "password confirmation (defaults to --password)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		username := domain.Username(args[0])

		password, err := c.passwordOr("Enter password: ")
		if err != nil {
			return err
		}
		switch {
		case cmd.Flags().Changed("confirm"):
		case c.password != "":
			confirm = password
		default:
			if confirm, err = c.prompt.secret("Confirm password: "); err != nil {
				return err
			}
		}

		if _, err := c.appCtx.Profiles.Register(username, password, confirm, fields.fields()); err != nil {
			return fail(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Registration complete. You can now login with your username.")
		return nil
	}
	return cmd
}
