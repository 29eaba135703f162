package md

import "strings"

// renderedRule is how the serializer writes a thematic break.
const renderedRule = "<hr/>"

// SectionSplitter wraps the document in <section> elements, starting a new
// section at every horizontal rule.
type SectionSplitter struct{}

// Run implements PostProcessor.
func (SectionSplitter) Run(html string) string {
	html = strings.ReplaceAll(html, renderedRule, "</section><section>")
	return "<section>\n" + html + "\n</section>"
}
