package md

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"
)

// FrontMatter holds per-deck settings from a TOML block delimited by "+++"
// at the top of the markdown source. YAML "---" front matter is not
// recognized because "---" separates slides.
type FrontMatter struct {
	Title          string `toml:"title"`
	Theme          string `toml:"theme"`
	HighlightStyle string `toml:"highlight_style"`
	Transition     string `toml:"transition"`
}

var tomlFormat = frontmatter.NewFormat("+++", "+++", toml.Unmarshal)

// SplitFrontMatter separates the front matter from the markdown body. Source
// without front matter is returned unchanged with an empty FrontMatter.
func SplitFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var fm FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &fm, tomlFormat)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("failed to parse front matter: %w", err)
	}
	return fm, body, nil
}

// Apply overrides deck settings with the non-empty front matter fields.
func (fm FrontMatter) Apply(deck *Deck) {
	if fm.Title != "" {
		deck.Title = fm.Title
	}
	if fm.Theme != "" {
		deck.Theme = fm.Theme
	}
	if fm.HighlightStyle != "" {
		deck.HighlightStyle = fm.HighlightStyle
	}
	if fm.Transition != "" {
		deck.Transition = fm.Transition
	}
}
