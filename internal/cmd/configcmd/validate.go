package configcmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdslides/internal/config"
	"github.com/open-cli-collective/mdslides/internal/view"
)

// NewCmdValidate creates the config validate command.
func NewCmdValidate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration for unknown names",
		Long: `Check that the configured highlight style, markdown extensions and theme
are known to mdslides. Environment variable overrides are included.`,
		Example: `  # Validate config
  mdslides config validate`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runValidate(configPath(cmd), cmd.OutOrStdout(), noColor)
		},
	}

	return cmd
}

func runValidate(configPath string, out io.Writer, noColor bool) error {
	r := view.NewRenderer(view.FormatTable, noColor)
	r.SetWriter(out)
	r.SetStatusWriter(out)

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		r.Error(err.Error())
		return fmt.Errorf("failed to load config: %w (run 'mdslides init' to reconfigure)", err)
	}

	if err := cfg.Validate(); err != nil {
		r.Error(err.Error())
		return fmt.Errorf("invalid config: %w (run 'mdslides init' to reconfigure)", err)
	}

	r.Success("Configuration is valid")
	return nil
}
