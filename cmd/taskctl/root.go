package main

import (
	"TaskManager/internal/app"
	"TaskManager/internal/config"
	"TaskManager/internal/session"
	"errors"

	"github.com/spf13/cobra"
)

// cli carries the state shared by every subcommand of one invocation.
type cli struct {
	configPath string
	assumeYes  bool

	manager *config.Manager
	app     *app.App
	session *session.Session
	prompt  *prompter
}

// errReported marks an error the notifier has already shown to the user.
var errReported = errors.New("action failed")

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:           "taskctl",
		Short:         "Manage the personal task list from the terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.open(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "Config file (default ~/.taskmanager/config.yaml)")

	rootCmd.AddCommand(listCmd(c))
	rootCmd.AddCommand(showCmd(c))
	rootCmd.AddCommand(addCmd(c))
	rootCmd.AddCommand(editCmd(c))
	rootCmd.AddCommand(doneCmd(c))
	rootCmd.AddCommand(deleteCmd(c))
	rootCmd.AddCommand(statsCmd(c))
	rootCmd.AddCommand(configCmd(c))

	return rootCmd, c
}

func (c *cli) open(cmd *cobra.Command) error {
	var err error
	if c.configPath != "" {
		c.manager, err = config.NewManagerAt(c.configPath)
	} else {
		c.manager, err = config.NewManager()
	}
	if err != nil {
		return err
	}

	// The config subcommand must work even when the database cannot be opened.
	if cmd.Name() == "config" || (cmd.Parent() != nil && cmd.Parent().Name() == "config") {
		return nil
	}

	a, err := app.Open(c.manager)
	if err != nil {
		return err
	}
	c.app = a

	mode, err := session.ParseSelectionMode(a.Config.Selection.Mode)
	if err != nil {
		return err
	}

	c.prompt = &prompter{
		in:        cmd.InOrStdin(),
		out:       cmd.OutOrStdout(),
		errOut:    cmd.ErrOrStderr(),
		tr:        a.Translator,
		assumeYes: &c.assumeYes,
	}
	c.session, err = session.New(a.DB, c.prompt, c.prompt,
		session.WithSelectionMode(mode),
		session.WithLogger(a.Logger),
	)
	return err
}

func (c *cli) close() {
	if c.app != nil {
		c.app.Close()
	}
}

// selectPosition selects the task at a 1-based list position.
func (c *cli) selectPosition(pos int) error {
	if err := c.session.Select(pos - 1); err != nil {
		return errReported
	}
	return nil
}
