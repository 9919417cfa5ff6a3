package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) passwdCmd() *cobra.Command {
	var next, confirm string
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change your password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := c.requireUsername()
			if err != nil {
				return err
			}
			old, err := c.passwordOr("Enter current password: ")
			if err != nil {
				return err
			}
			if next == "" {
				if next, err = c.prompt.secret("Enter new password: "); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("confirm") {
				if confirm, err = c.prompt.secret("Confirm new password: "); err != nil {
					return err
				}
			}

			if err := c.appCtx.Profiles.ChangePassword(username, old, next, confirm); err != nil {
				return fail(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password changed.")
			return nil
		},
	}
	cmd.Flags().StringVar(&next, "new", "", "new password (prompted when omitted)")
	cmd.Flags().StringVar(&confirm, "confirm", "", "new password confirmation (prompted when omitted)")
	return cmd
}
