package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func configCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(c.manager.GetConfig())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", c.manager.Path(), data)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set-language [code]",
		Short: "Set the interface language (en, zh)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := c.manager.ThemeConfig()
			theme.Language = args[0]
			return c.manager.UpdateThemeConfig(theme)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-dark-mode [true|false]",
		Short: "Switch the desktop window between light and dark theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var on bool
			if err := yaml.Unmarshal([]byte(args[0]), &on); err != nil {
				return fmt.Errorf("expected true or false, got %q", args[0])
			}
			theme := c.manager.ThemeConfig()
			theme.DarkMode = on
			return c.manager.UpdateThemeConfig(theme)
		},
	})
	return cmd
}
