// Package view provides output formatting for mdslides commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Format represents an output format for listings.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ValidFormats returns the accepted output format names.
func ValidFormats() []string {
	return []string{string(FormatTable), string(FormatJSON), string(FormatPlain)}
}

// ValidateFormat returns an error if format is not a known format. Empty means table.
func ValidateFormat(format string) error {
	if format == "" {
		return nil
	}
	for _, f := range ValidFormats() {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid output format %q (valid: %s)", format, strings.Join(ValidFormats(), ", "))
}

// Renderer renders listings to out and status messages to status.
// Deck output goes to stdout, so status lines default to stderr.
type Renderer struct {
	format Format
	out    io.Writer
	status io.Writer
}

// NewRenderer creates a new renderer with the specified format.
func NewRenderer(format Format, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	if format == "" {
		format = FormatTable
	}
	return &Renderer{
		format: format,
		out:    os.Stdout,
		status: os.Stderr,
	}
}

// SetWriter sets the listing output writer.
func (r *Renderer) SetWriter(w io.Writer) {
	r.out = w
}

// SetStatusWriter sets the writer for status messages.
func (r *Renderer) SetStatusWriter(w io.Writer) {
	r.status = w
}

// RenderTable renders rows under headers in the renderer's format.
func (r *Renderer) RenderTable(headers []string, rows [][]string) {
	switch r.format {
	case FormatJSON:
		r.renderTableAsJSON(headers, rows)
		return
	case FormatPlain:
		r.renderTableAsPlain(rows)
		return
	}

	bold := color.New(color.Bold)
	_, _ = bold.Fprintln(r.out, strings.Join(headers, "  "))
	for _, row := range rows {
		fmt.Fprintln(r.out, strings.Join(row, "  "))
	}
}

func (r *Renderer) renderTableAsJSON(headers []string, rows [][]string) {
	result := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		item := make(map[string]string)
		for i, header := range headers {
			if i < len(row) {
				item[strings.ToLower(header)] = row[i]
			}
		}
		result = append(result, item)
	}

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Fprintln(r.out, string(data))
}

func (r *Renderer) renderTableAsPlain(rows [][]string) {
	for _, row := range rows {
		fmt.Fprintln(r.out, strings.Join(row, "\t"))
	}
}

// RenderJSON renders an object as JSON.
func (r *Renderer) RenderJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, string(data))
	return nil
}

// RenderKeyValue renders a labelled value.
func (r *Renderer) RenderKeyValue(key, value string) {
	bold := color.New(color.Bold)
	_, _ = bold.Fprintf(r.out, "%-16s", key+":")
	if value == "" {
		dim := color.New(color.Faint)
		_, _ = dim.Fprintln(r.out, "-")
		return
	}
	fmt.Fprintln(r.out, value)
}

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	green := color.New(color.FgGreen)
	_, _ = green.Fprintln(r.status, "✓ "+msg)
}

// Warning prints a warning message.
func (r *Renderer) Warning(msg string) {
	yellow := color.New(color.FgYellow)
	_, _ = yellow.Fprintln(r.status, "! "+msg)
}

// Error prints an error message.
func (r *Renderer) Error(msg string) {
	red := color.New(color.FgRed)
	_, _ = red.Fprintln(r.status, "✗ "+msg)
}
