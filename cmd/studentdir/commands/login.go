package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check a username and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loginFromFlags()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Login successful. Welcome, %s\n", p.DisplayName())
			return nil
		},
	}
}
