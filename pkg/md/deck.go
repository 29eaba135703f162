package md

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/deck.html.tmpl
var deckTemplateSource string

var deckTemplate = template.Must(template.New("deck").Parse(deckTemplateSource))

// Deck holds the page-level settings of a generated reveal.js document.
type Deck struct {
	Title          string
	Theme          string
	HighlightStyle string
	// AssetBase prefixes every reveal.js asset path, e.g. "https://cdn.example/reveal/".
	AssetBase  string
	Transition string
	Progress   bool
	Center     bool
	Controls   bool
	Hash       bool
}

// DefaultDeck returns the stock deck settings.
func DefaultDeck() Deck {
	return Deck{
		Title:          "Slides",
		Theme:          "silver",
		HighlightStyle: DefaultHighlightStyle,
		Transition:     "slide",
		Progress:       true,
		Center:         false,
		Controls:       true,
		Hash:           true,
	}
}

// ValidateTheme rejects theme values that are paths rather than names.
func ValidateTheme(name string) error {
	if strings.ContainsAny(name, `/\`) {
		return errors.New("theme must be a name, not a path")
	}
	return nil
}

// deckView is the template data for a deck.
type deckView struct {
	Deck
	Slides template.HTML
}

// Plugin returns the path of a reveal.js plugin script.
func (v deckView) Plugin(path string) string {
	return v.AssetBase + "plugin/" + path
}

// PrintPDF returns the print stylesheet used for PDF export.
func (v deckView) PrintPDF() string {
	return v.AssetBase + "css/print/pdf.css"
}

// PrintPaper returns the print stylesheet used for paper output.
func (v deckView) PrintPaper() string {
	return v.AssetBase + "css/print/paper.css"
}

// RenderDeck writes a complete HTML document around already converted slide markup.
func RenderDeck(w io.Writer, deck Deck, slides string) error {
	view := deckView{Deck: deck, Slides: template.HTML(slides)}
	if err := deckTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render deck: %w", err)
	}
	return nil
}
