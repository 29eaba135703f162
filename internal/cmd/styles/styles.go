// Package styles provides the styles command, which lists code highlighting styles.
package styles

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdslides/internal/view"
	"github.com/open-cli-collective/mdslides/pkg/md"
)

type stylesOptions struct {
	format  string
	noColor bool
}

// NewCmdStyles creates the styles command.
func NewCmdStyles() *cobra.Command {
	opts := &stylesOptions{}

	cmd := &cobra.Command{
		Use:     "styles",
		Aliases: []string{"themes"},
		Short:   "List available code highlighting styles",
		Long: `List the syntax highlighting styles that can be used for fenced code
blocks, either as highlight_style in the config file, highlight_style in
front matter, or MDSLIDES_HIGHLIGHT_STYLE.`,
		Example: `  # List styles
  mdslides styles

  # As JSON
  mdslides styles --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runStyles(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.format, "output", "o", "table", "output format: table, json, plain")

	return cmd
}

func runStyles(opts *stylesOptions, out io.Writer) error {
	if err := view.ValidateFormat(opts.format); err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.format), opts.noColor)
	renderer.SetWriter(out)

	styles := md.HighlightStyles()
	rows := make([][]string, 0, len(styles))
	for _, name := range styles {
		def := ""
		if name == md.DefaultHighlightStyle {
			def = "yes"
		}
		rows = append(rows, []string{name, def})
	}

	renderer.RenderTable([]string{"NAME", "DEFAULT"}, rows)
	return nil
}
