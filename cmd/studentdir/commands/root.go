package commands

import (
	"github.com/spf13/cobra"

	"studentdir/internal/app"
)

// cli carries flag values and the wired dependencies for one invocation.
type cli struct {
	envFile    string
	home       string
	logLevel   string
	quarantine bool

	username string
	password string

	appCtx *app.Wire
	prompt *prompter
}

// Execute runs the CLI against the process arguments and standard streams.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "studentdir",
		Short:         "Local student profile directory",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.appCtx == nil {
				return nil
			}
			return c.appCtx.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShell(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "optional dotenv file with STUDENTDIR_* settings")
	root.PersistentFlags().StringVar(&c.home, "home", "", "data dir (default ~/.studentdir)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")
	root.PersistentFlags().BoolVar(&c.quarantine, "quarantine", false, "move a corrupt students.json aside and start empty")
	root.PersistentFlags().StringVarP(&c.username, "username", "u", "", "student username")
	root.PersistentFlags().StringVarP(&c.password, "password", "p", "", "password (prompted when omitted)")

	root.AddCommand(
		c.shellCmd(),
		c.registerCmd(),
		c.loginCmd(),
		c.showCmd(),
		c.updateCmd(),
		c.passwdCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := app.LoadConfig(c.envFile)
	if err != nil {
		return err
	}
	if c.home != "" {
		cfg.Home = c.home
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	cfg.Quarantine = c.quarantine

	log, err := app.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	w, err := app.NewWire(cfg, log)
	if err != nil {
		return err
	}
	c.appCtx = w
	c.prompt = newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	return nil
}
