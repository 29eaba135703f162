// Package unpack provides the unpack command, which turns a deck back into markdown.
package unpack

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/mdslides/internal/view"
	"github.com/open-cli-collective/mdslides/pkg/md"
)

type unpackOptions struct {
	output  string
	noColor bool
}

// NewCmdUnpack creates the unpack command.
func NewCmdUnpack() *cobra.Command {
	opts := &unpackOptions{}

	cmd := &cobra.Command{
		Use:   "unpack <deck.html>",
		Short: "Convert a reveal.js deck back into markdown",
		Long: `Convert the slides of a reveal.js HTML deck back into markdown.

Each top-level section under div.slides becomes one slide; slides are
separated by horizontal rules. Attributes attached with {: } markers are
not reconstructed.`,
		Example: `  # Print markdown to stdout
  mdslides unpack index.html

  # Write to a file
  mdslides unpack index.html -o talk.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runUnpack(args[0], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write markdown to a file instead of stdout")

	return cmd
}

func runUnpack(path string, opts *unpackOptions, stdout, stderr io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read deck: %w", err)
	}

	markdown, err := md.FromSlides(string(data))
	if err != nil {
		return fmt.Errorf("failed to unpack %s: %w", path, err)
	}

	if opts.output == "" {
		_, err := io.WriteString(stdout, markdown)
		return err
	}

	if err := os.WriteFile(opts.output, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	renderer := view.NewRenderer(view.FormatTable, opts.noColor)
	renderer.SetStatusWriter(stderr)
	renderer.Success(fmt.Sprintf("Wrote %s", opts.output))
	return nil
}
