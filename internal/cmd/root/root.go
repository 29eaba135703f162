// Package root provides the root command for the mdslides CLI.
package root

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdslides/internal/cmd/completion"
	"github.com/open-cli-collective/mdslides/internal/cmd/configcmd"
	initcmd "github.com/open-cli-collective/mdslides/internal/cmd/init"
	"github.com/open-cli-collective/mdslides/internal/cmd/styles"
	"github.com/open-cli-collective/mdslides/internal/cmd/unpack"
	"github.com/open-cli-collective/mdslides/internal/version"
)

// NewCmdRoot creates the root command for mdslides. Run with a single
// markdown file argument it writes a reveal.js deck.
func NewCmdRoot() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "mdslides <file.md>",
		Short: "Convert markdown into a reveal.js slide deck",
		Long: `mdslides converts a markdown document into a single HTML page of
reveal.js slides. Every horizontal rule (---) starts a new slide.

Attributes can be attached to elements with trailing markers:

  ## Title {: #intro .big }      header id and class
  Paragraph text
  {: .lead data-state=dark}      paragraph attributes
  *word*{: .highlight}           inline element attributes
  - item
  {^ .fragment-list}             attributes on the whole list

Get started by running: mdslides init`,
		Example: `  # Write a deck to stdout
  mdslides talk.md > index.html

  # Write to a file with a different theme
  mdslides talk.md --theme black -o index.html`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			setupLogging(cmd, verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runConvert(args[0], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/mdslides/config.yml)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging on stderr")

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the deck to a file instead of stdout")
	cmd.Flags().StringVar(&opts.title, "title", "", "deck title (overrides config and front matter)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "reveal.js theme name (overrides config and front matter)")

	cmd.SetVersionTemplate(version.String() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(unpack.NewCmdUnpack())
	cmd.AddCommand(styles.NewCmdStyles())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}

// setupLogging installs the default slog logger on the command's stderr.
func setupLogging(cmd *cobra.Command, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
