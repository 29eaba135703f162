// Package attrlist attaches HTML attributes to elements of a parsed markdown
// tree from trailing annotation markers: {: ...} for the nearest block, header,
// list item or inline element, and {^ ...} for the enclosing list container.
package attrlist

import "regexp"

const (
	blockMarker  = `\{:([^}]*)\}`
	parentMarker = `\{\^([^}]*)\}`

	// endOfText also accepts a single trailing newline before the end.
	endOfText = `[ ]*\n?$`
)

var (
	// HeaderPattern matches a marker at the end of a single-line text (headers, dt).
	HeaderPattern = regexp.MustCompile(`[ ]+` + blockMarker + endOfText)
	// BlockPattern matches a marker on the last line of a multi-line text.
	BlockPattern = regexp.MustCompile(`\n[ ]*` + blockMarker + endOfText)
	// ListPattern matches a list-container marker on the last line of a text.
	ListPattern = regexp.MustCompile(`\n[ ]*` + parentMarker + endOfText)
	// InlinePattern matches a marker at the start of a tail.
	InlinePattern = regexp.MustCompile(`^` + blockMarker)
)

// Marker is a located annotation: Body is the raw attribute list, Start and
// End delimit the whole match within the searched string.
type Marker struct {
	Body  string
	Start int
	End   int
}

// Find searches s with re and returns the first marker found.
func Find(re *regexp.Regexp, s string) (Marker, bool) {
	m := re.FindStringSubmatchIndex(s)
	if m == nil {
		return Marker{}, false
	}
	return Marker{Body: s[m[2]:m[3]], Start: m[0], End: m[1]}, true
}
