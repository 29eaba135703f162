// Package md converts markdown documents into reveal.js slide decks.
package md

import (
	"bytes"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/open-cli-collective/mdslides/pkg/attrlist"
	"github.com/open-cli-collective/mdslides/pkg/etree"
)

// DefaultHighlightStyle is the chroma style used for fenced code blocks.
const DefaultHighlightStyle = "monokai"

// DefaultExtensions mirrors the classic "extra" + "smarty" extension set.
var DefaultExtensions = []string{"table", "definition", "footnote", "typographer"}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"deflist":       extension.DefinitionList,
	"footnote":      extension.Footnote,
	"footnotes":     extension.Footnote,
	"typographer":   extension.Typographer,
	"smarty":        extension.Typographer,
}

// TreeProcessor transforms the element tree after block structure is final
// and before serialization.
type TreeProcessor interface {
	Run(root *etree.Element) *etree.Element
}

// PostProcessor transforms the serialized HTML.
type PostProcessor interface {
	Run(html string) string
}

// Options configures a Converter.
type Options struct {
	// Extensions lists goldmark extensions by name. Nil selects DefaultExtensions.
	Extensions []string
	// HighlightStyle is a chroma style name. Empty selects DefaultHighlightStyle.
	HighlightStyle string
	LineNumbers    bool
	Logger         *slog.Logger
}

// Converter renders markdown into slide markup.
type Converter struct {
	engine         goldmark.Markdown
	treeProcessors []TreeProcessor
	postProcessors []PostProcessor
	logger         *slog.Logger
}

// NewConverter creates a converter with the attribute-list tree processor and
// the section post-processor registered.
func NewConverter(opts Options) *Converter {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	style := opts.HighlightStyle
	if style == "" {
		style = DefaultHighlightStyle
	}

	names := opts.Extensions
	if names == nil {
		names = DefaultExtensions
	}

	exts := collectExtensions(names)
	exts = append(exts, highlighting.NewHighlighting(
		highlighting.WithStyle(style),
		highlighting.WithFormatOptions(
			chromahtml.WithClasses(false),
			chromahtml.WithLineNumbers(opts.LineNumbers),
		),
	))

	engine := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	return &Converter{
		engine:         engine,
		treeProcessors: []TreeProcessor{attrlist.NewWalker(attrlist.WithLogger(logger))},
		postProcessors: []PostProcessor{SectionSplitter{}},
		logger:         logger,
	}
}

// AddTreeProcessor appends a tree processor after the registered ones.
func (c *Converter) AddTreeProcessor(p TreeProcessor) {
	c.treeProcessors = append(c.treeProcessors, p)
}

// AddPostProcessor appends a post-processor after the registered ones.
func (c *Converter) AddPostProcessor(p PostProcessor) {
	c.postProcessors = append(c.postProcessors, p)
}

// Convert renders markdown to slide markup: one <section> per slide.
func (c *Converter) Convert(markdown []byte) (string, error) {
	var buf bytes.Buffer
	if err := c.engine.Convert(markdown, &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	c.logger.Debug("rendered markdown", "bytes", buf.Len())

	root, err := etree.Parse(&buf)
	if err != nil {
		return "", err
	}

	for _, p := range c.treeProcessors {
		root = p.Run(root)
	}

	out, err := root.InnerHTML()
	if err != nil {
		return "", fmt.Errorf("failed to serialize html: %w", err)
	}

	for _, p := range c.postProcessors {
		out = p.Run(out)
	}
	return out, nil
}

// ToSlides converts markdown to slide markup with default options.
func ToSlides(markdown []byte) (string, error) {
	return NewConverter(Options{}).Convert(markdown)
}

// KnownExtension reports whether name is a registered extension.
func KnownExtension(name string) bool {
	_, ok := extensionRegistry[normalizeName(name)]
	return ok
}

// ExtensionNames returns the registered extension names, sorted.
func ExtensionNames() []string {
	names := make([]string, 0, len(extensionRegistry))
	for name := range extensionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsHighlightStyle reports whether name is a chroma style.
func IsHighlightStyle(name string) bool {
	for _, s := range styles.Names() {
		if s == name {
			return true
		}
	}
	return false
}

// HighlightStyles returns the available chroma style names.
func HighlightStyles() []string {
	return styles.Names()
}

// collectExtensions resolves names to extenders, skipping unknown names and duplicates.
func collectExtensions(names []string) []goldmark.Extender {
	var extenders []goldmark.Extender
	seen := map[goldmark.Extender]struct{}{}

	for _, name := range names {
		ext, ok := extensionRegistry[normalizeName(name)]
		if !ok {
			continue
		}
		// aliases share an extender
		if _, dup := seen[ext]; dup {
			continue
		}
		extenders = append(extenders, ext)
		seen[ext] = struct{}{}
	}
	return extenders
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
