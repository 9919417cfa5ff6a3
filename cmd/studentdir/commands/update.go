package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// update: blank or omitted field flags keep the stored value.
func (c *cli) updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your profile fields",
		Args:  cobra.NoArgs,
	}
	fields := bindFieldFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if _, err := c.loginFromFlags(); err != nil {
			return err
		}
		username, err := c.appCtx.Session.RequireLogin()
		if err != nil {
			return fail(err)
		}
		if _, err := c.appCtx.Profiles.UpdateFields(username, fields.fields()); err != nil {
			return fail(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Profile updated.")
		return nil
	}
	return cmd
}
