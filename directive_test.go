package nowiki

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanParseDirective(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Directive
	}{
		{
			name:     "test format with args",
			line:     "#!highlight python",
			expected: Directive{Name: "highlight", Args: "python", HasArgs: true},
		},
		{
			name:     "test format without args",
			line:     "#!csv",
			expected: Directive{Name: "csv"},
		},
		{
			name:     "test args keep internal spaces",
			line:     "#!wiki solid red dotted",
			expected: Directive{Name: "wiki", Args: "solid red dotted", HasArgs: true},
		},
		{
			name:     "test trailing whitespace is stripped",
			line:     "#!csv \t",
			expected: Directive{Name: "csv"},
		},
		{
			name:     "test missing sentinel routes to unknown",
			line:     "highlight python",
			expected: Directive{},
		},
		{
			name:     "test empty line routes to unknown",
			line:     "",
			expected: Directive{},
		},
		{
			name:     "test bare sentinel routes to unknown",
			line:     "#!",
			expected: Directive{},
		},
		{
			name:     "test mimetype format name",
			line:     "#!text/x-rst",
			expected: Directive{Name: "text/x-rst"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, ParseDirective(tc.line))
		})
	}
}

func TestLegacyDirectivesRewriteToHighlight(t *testing.T) {
	for _, name := range []string{"diff", "cplusplus", "python", "java", "pascal", "irc"} {
		t.Run(name, func(t *testing.T) {
			d := ParseDirective("#!" + name)
			assert.Equal(t, "highlight", d.Name)
			assert.Equal(t, name, d.Args)
			assert.True(t, d.HasArgs)
		})
	}

	// legacy rewriting only applies to the bare name
	d := ParseDirective("#!python3")
	assert.Equal(t, "python3", d.Name)
}

func TestCanResolveFormat(t *testing.T) {
	tests := []struct {
		name     string
		expected Format
	}{
		{"highlight", FormatHighlight},
		{"csv", FormatCSV},
		{"text/csv", FormatCSV},
		{"wiki", FormatWiki},
		{"text/x.moin.wiki", FormatWiki},
		{"creole", FormatCreole},
		{"text/x.moin.creole", FormatCreole},
		{"rst", FormatRST},
		{"text/x-rst", FormatRST},
		{"docbook", FormatDocBook},
		{"application/docbook+xml", FormatDocBook},
		{"markdown", FormatMarkdown},
		{"text/x-markdown", FormatMarkdown},
		{"mediawiki", FormatMediaWiki},
		{"text/x-mediawiki", FormatMediaWiki},
		{"", FormatUnknown},
		{"bogus-format", FormatUnknown},
		// matching is exact and case-sensitive
		{"Wiki", FormatUnknown},
		{"highlight python", FormatUnknown},
	}

	for _, tc := range tests {
		t.Run("resolve "+tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ResolveFormat(tc.name))
		})
	}
}
