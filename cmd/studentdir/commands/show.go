package commands

import (
	"github.com/spf13/cobra"
)

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.loginFromFlags(); err != nil {
				return err
			}
			username, err := c.appCtx.Session.RequireLogin()
			if err != nil {
				return fail(err)
			}
			p, err := c.appCtx.Profiles.Get(username)
			if err != nil {
				return fail(err)
			}
			printProfile(cmd.OutOrStdout(), p)
			return nil
		},
	}
}
