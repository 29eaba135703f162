package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionSplitter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single slide",
			input:    "<h1>A</h1>",
			expected: "<section>\n<h1>A</h1>\n</section>",
		},
		{
			name:     "two slides",
			input:    "<h1>A</h1>\n<hr/>\n<h1>B</h1>",
			expected: "<section>\n<h1>A</h1>\n</section><section>\n<h1>B</h1>\n</section>",
		},
		{
			name:     "leading rule yields empty first slide",
			input:    "<hr/><p>x</p>",
			expected: "<section>\n</section><section><p>x</p>\n</section>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SectionSplitter{}.Run(tt.input))
		})
	}
}
