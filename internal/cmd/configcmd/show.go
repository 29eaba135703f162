package configcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdslides/internal/config"
	"github.com/open-cli-collective/mdslides/internal/view"
	"github.com/open-cli-collective/mdslides/pkg/md"
)

type showOptions struct {
	format  string
	noColor bool
}

// field is one row of config show output.
type field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective mdslides deck settings with source indicators.`,
		Example: `  # Show current config
  mdslides config show

  # As JSON
  mdslides config show -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runShow(configPath(cmd), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.format, "output", "o", "table", "output format: table, json")

	return cmd
}

func runShow(configPath string, opts *showOptions, out io.Writer) error {
	if opts.format != "table" && opts.format != "json" {
		return fmt.Errorf("invalid output format %q (valid: table, json)", opts.format)
	}

	r := view.NewRenderer(view.Format(opts.format), opts.noColor)
	r.SetWriter(out)

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	deck := cfg.Deck()

	extensions := cfg.Extensions
	if extensions == nil {
		extensions = md.DefaultExtensions
	}

	fields := []field{
		newField("Title", deck.Title, fileCfg.Title, "MDSLIDES_TITLE"),
		newField("Theme", deck.Theme, fileCfg.Theme, "MDSLIDES_THEME"),
		newField("Highlight", deck.HighlightStyle, fileCfg.HighlightStyle, "MDSLIDES_HIGHLIGHT_STYLE"),
		newField("Asset base", deck.AssetBase, fileCfg.AssetBase, "MDSLIDES_ASSET_BASE"),
		newField("Line numbers", strconv.FormatBool(cfg.LineNumbers), boolSource(fileCfg.LineNumbers), ""),
		newField("Extensions", strings.Join(extensions, ", "), strings.Join(fileCfg.Extensions, ", "), ""),
		newField("Transition", deck.Transition, fileCfg.Reveal.Transition, ""),
	}

	if opts.format == "json" {
		return r.RenderJSON(map[string]interface{}{
			"config_file": configPath,
			"found":       fileErr == nil,
			"fields":      fields,
		})
	}

	for _, f := range fields {
		if f.Value == "" {
			r.RenderKeyValue(f.Name, "")
			continue
		}
		r.RenderKeyValue(f.Name, fmt.Sprintf("%s  (source: %s)", f.Value, f.Source))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Config file: %s\n", configPath)
	if fileErr != nil {
		fmt.Fprintln(out, "(file not found)")
	}

	return nil
}

// newField resolves where value came from: an env var, the config file, or the defaults.
func newField(name, value, fileValue, envVar string) field {
	source := "default"
	switch {
	case envVar != "" && os.Getenv(envVar) != "":
		source = envVar
	case fileValue != "":
		source = "config"
	}
	return field{Name: name, Value: value, Source: source}
}

func boolSource(v bool) string {
	if v {
		return "true"
	}
	return ""
}
