package root

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/open-cli-collective/mdslides/internal/config"
	"github.com/open-cli-collective/mdslides/internal/view"
	"github.com/open-cli-collective/mdslides/pkg/md"
)

type convertOptions struct {
	configPath string
	output     string
	title      string
	theme      string
	noColor    bool
}

// runConvert reads a markdown file and writes the deck to stdout or opts.output.
// Settings are layered: defaults, config file, environment, front matter, flags.
func runConvert(path string, opts *convertOptions, stdout, stderr io.Writer) error {
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w (run 'mdslides init' to reconfigure)", err)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	fm, body, err := md.SplitFrontMatter(source)
	if err != nil {
		return err
	}

	deck := cfg.Deck()
	fm.Apply(&deck)
	if opts.title != "" {
		deck.Title = opts.title
	}
	if opts.theme != "" {
		deck.Theme = opts.theme
	}
	if err := md.ValidateTheme(deck.Theme); err != nil {
		return err
	}
	if !md.IsHighlightStyle(deck.HighlightStyle) {
		return fmt.Errorf("unknown highlight style %q", deck.HighlightStyle)
	}

	logger := slog.Default().With("input", path)
	logger.Debug("converting", "title", deck.Title, "theme", deck.Theme, "highlight_style", deck.HighlightStyle)

	converter := md.NewConverter(md.Options{
		Extensions:     cfg.Extensions,
		HighlightStyle: deck.HighlightStyle,
		LineNumbers:    cfg.LineNumbers,
		Logger:         logger,
	})

	slides, err := converter.Convert(body)
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := md.RenderDeck(&buf, deck, slides); err != nil {
		return err
	}

	if opts.output == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(opts.output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	renderer := view.NewRenderer(view.FormatTable, opts.noColor)
	renderer.SetStatusWriter(stderr)
	renderer.Success(fmt.Sprintf("Wrote %s", opts.output))
	return nil
}
