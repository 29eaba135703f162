// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdslides/internal/config"
)

// envVars lists the environment variables that override the config file.
var envVars = []string{"MDSLIDES_TITLE", "MDSLIDES_THEME", "MDSLIDES_HIGHLIGHT_STYLE", "MDSLIDES_ASSET_BASE"}

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage mdslides configuration",
		Long:  `Commands for viewing, validating, and clearing mdslides configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdValidate())
	cmd.AddCommand(NewCmdClear())

	return cmd
}

// configPath returns the --config flag value or the default path.
func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultConfigPath()
}
