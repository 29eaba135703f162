package attrlist

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		re      *regexp.Regexp
		input   string
		found   bool
		body    string
		start   int
		trimmed string
	}{
		{name: "header marker", re: HeaderPattern, input: "Title {: #intro .big }", found: true, body: " #intro .big ", start: 5, trimmed: "Title"},
		{name: "header trailing spaces", re: HeaderPattern, input: "Title {:.x}   ", found: true, body: ".x", start: 5, trimmed: "Title"},
		{name: "header needs space", re: HeaderPattern, input: "Title{:.x}", found: false},
		{name: "header marker not at end", re: HeaderPattern, input: "Title {:.x} more", found: false},
		{name: "block marker", re: BlockPattern, input: "Line one\n{: .lead}", found: true, body: " .lead", start: 8, trimmed: "Line one"},
		{name: "block marker indented", re: BlockPattern, input: "Line\n   {: .lead}  ", found: true, body: " .lead", start: 4, trimmed: "Line"},
		{name: "block marker trailing newline", re: BlockPattern, input: "Line\n{: .lead}\n", found: true, body: " .lead", start: 4, trimmed: "Line"},
		{name: "block needs own line", re: BlockPattern, input: "Line {: .lead}", found: false},
		{name: "block ignores list marker", re: BlockPattern, input: "Line\n{^ .deck}", found: false},
		{name: "list marker", re: ListPattern, input: "Item\n{^ .deck}", found: true, body: " .deck", start: 4, trimmed: "Item"},
		{name: "list ignores block marker", re: ListPattern, input: "Item\n{: .x}", found: false},
		{name: "inline marker", re: InlinePattern, input: "{: .highlight}more text", found: true, body: " .highlight", start: 0},
		{name: "inline needs start", re: InlinePattern, input: " {: .highlight}", found: false},
		{name: "absent", re: BlockPattern, input: "plain text", found: false},
		{name: "empty body", re: BlockPattern, input: "x\n{:}", found: true, body: "", start: 1, trimmed: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Find(tt.re, tt.input)
			assert.Equal(t, tt.found, ok)
			if !tt.found {
				return
			}
			assert.Equal(t, tt.body, m.Body)
			assert.Equal(t, tt.start, m.Start)
			assert.Equal(t, tt.trimmed, tt.input[:m.Start])
		})
	}
}

func TestFind_InlineEnd(t *testing.T) {
	input := "{: .highlight}more text"
	m, ok := Find(InlinePattern, input)
	assert.True(t, ok)
	assert.Equal(t, "more text", input[m.End:])
}
