package md

import (
	"errors"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// SlideSeparator joins slides in markdown output.
const SlideSeparator = "\n\n---\n\n"

// ErrNoSlides is returned when a document has no reveal.js slide sections.
var ErrNoSlides = errors.New("no slides found (expected div.slides > section)")

var slideSelector = cascadia.MustCompile("div.slides > section")

// FromSlides converts a reveal.js deck back to markdown, one slide per
// top-level section, separated by horizontal rules. Attributes attached with
// markers are not reconstructed.
func FromSlides(deckHTML string) (string, error) {
	doc, err := html.Parse(strings.NewReader(deckHTML))
	if err != nil {
		return "", err
	}

	sections := slideSelector.MatchAll(doc)
	if len(sections) == 0 {
		return "", ErrNoSlides
	}

	slides := make([]string, 0, len(sections))
	for _, section := range sections {
		inner, err := innerHTML(section)
		if err != nil {
			return "", err
		}

		markdown, err := htmltomarkdown.ConvertString(inner)
		if err != nil {
			return "", err
		}
		slides = append(slides, strings.TrimSpace(markdown))
	}

	return strings.Join(slides, SlideSeparator) + "\n", nil
}

func innerHTML(n *html.Node) (string, error) {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}
