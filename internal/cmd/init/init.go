// Package init provides the init command for mdslides.
package init

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdslides/internal/config"
	"github.com/open-cli-collective/mdslides/pkg/md"
)

// prompter collects configuration interactively.
type prompter interface {
	ConfirmOverwrite(path string) (bool, error)
	Fill(cfg *config.Config) error
}

type initOptions struct {
	configPath string
	title      string
	theme      string
	defaults   bool
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize mdslides configuration",
		Long: `Initialize mdslides with default deck settings.

This command will guide you through choosing a deck title, reveal.js theme,
code highlighting style, and the location of the reveal.js assets. The
configuration will be saved to ~/.config/mdslides/config.yml.`,
		Example: `  # Interactive setup
  mdslides init

  # Pre-populate the theme
  mdslides init --theme black

  # Write the defaults without prompting
  mdslides init --defaults`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			return runInit(opts, huhPrompter{}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "Default deck title")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Default reveal.js theme (e.g., black, white, moon)")
	cmd.Flags().BoolVar(&opts.defaults, "defaults", false, "Skip the prompts and save the given values")

	return cmd
}

func runInit(opts *initOptions, p prompter, out io.Writer) error {
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !opts.defaults {
		overwrite, err := p.ConfirmOverwrite(configPath)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(out, "Initialization cancelled.")
			return nil
		}
	}

	deck := md.DefaultDeck()
	cfg := &config.Config{
		Title:          deck.Title,
		Theme:          deck.Theme,
		HighlightStyle: deck.HighlightStyle,
	}
	if opts.title != "" {
		cfg.Title = opts.title
	}
	if opts.theme != "" {
		cfg.Theme = opts.theme
	}

	if !opts.defaults {
		if err := p.Fill(cfg); err != nil {
			return err
		}
	}

	cfg.AssetBase = config.NormalizeAssetBase(cfg.AssetBase)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nConfiguration saved to %s\n", configPath)
	fmt.Fprintln(out, "\nYou're all set! Try running:")
	fmt.Fprintln(out, "  mdslides talk.md -o index.html")

	return nil
}

type huhPrompter struct{}

func (huhPrompter) ConfirmOverwrite(path string) (bool, error) {
	var overwrite bool
	err := huh.NewConfirm().
		Title("Configuration already exists").
		Description(fmt.Sprintf("Overwrite %s?", path)).
		Value(&overwrite).
		Run()
	return overwrite, err
}

func (huhPrompter) Fill(cfg *config.Config) error {
	styles := md.HighlightStyles()
	styleOptions := make([]huh.Option[string], 0, len(styles))
	for _, s := range styles {
		styleOptions = append(styleOptions, huh.NewOption(s, s))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Deck title").
				Description("Used as the page title when front matter sets none").
				Value(&cfg.Title),

			huh.NewInput().
				Title("Theme").
				Description("reveal.js theme name").
				Placeholder("silver").
				Value(&cfg.Theme).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("theme is required")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Highlight style").
				Description("Color scheme for fenced code blocks").
				Options(styleOptions...).
				Height(8).
				Value(&cfg.HighlightStyle),

			huh.NewInput().
				Title("Asset base (optional)").
				Description("Path or URL prefix of the reveal.js files").
				Placeholder("https://cdn.jsdelivr.net/npm/reveal.js@3.9.2/").
				Value(&cfg.AssetBase),

			huh.NewConfirm().
				Title("Line numbers").
				Description("Number the lines of highlighted code blocks?").
				Value(&cfg.LineNumbers),
		),
	)

	return form.Run()
}
