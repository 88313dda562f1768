package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moinwiki/nowiki"
)

func parseWiki(t *testing.T, source string) *nowiki.Document {
	t.Helper()
	doc, err := NewWiki().ParseDocument(strings.NewReader(source), nowiki.MetaData{Source: "test.moin"})
	require.NoError(t, err)
	require.Equal(t, nowiki.TagPage, doc.Root.Tag)
	require.Len(t, doc.Root.Children, 1)
	return doc
}

func TestParseDocumentBlockStructure(t *testing.T) {
	source := `= Welcome =

This is a paragraph
over two lines.

 * first
 * second

----
`

	doc := parseWiki(t, source)
	body := doc.Root.Children[0]
	require.Equal(t, nowiki.TagBlock, body.Tag)
	require.Len(t, body.Children, 4)

	h := body.Children[0]
	assert.Equal(t, nowiki.TagHeading, h.Tag)
	assert.Equal(t, "1", h.Attr(nowiki.AttrOutlineLevel))
	assert.Equal(t, "Welcome", h.InnerText())

	p := body.Children[1]
	assert.Equal(t, nowiki.TagP, p.Tag)
	assert.Equal(t, "This is a paragraph over two lines.", p.InnerText())

	list := body.Children[2]
	require.Equal(t, nowiki.TagList, list.Tag)
	require.Len(t, list.Children, 2)
	assert.Equal(t, "first", list.Children[0].InnerText())
	assert.Equal(t, "second", list.Children[1].InnerText())

	assert.Equal(t, nowiki.TagSeparator, body.Children[3].Tag)
}

func TestParseDocumentFenceBecomesPlaceholder(t *testing.T) {
	source := "{{{#!highlight python\nprint(\"hi\")\n}}}\n"

	doc := parseWiki(t, source)
	body := doc.Root.Children[0]
	require.Len(t, body.Children, 1)

	elem := body.Children[0]
	require.Equal(t, nowiki.TagNoWiki, elem.Tag)
	require.Len(t, elem.Children, 3)
	assert.Equal(t, "{{{", elem.Children[0].Text)
	assert.Equal(t, nowiki.TagSpan, elem.Children[1].Tag)
	assert.Equal(t, "#!highlight python", elem.Children[1].InnerText())
	assert.Equal(t, `print("hi")`, elem.Children[2].InnerText())
}

func TestParseDocumentNestedFenceStaysRaw(t *testing.T) {
	source := `{{{{#!wiki note
inner text

{{{#!highlight python
x = 1
}}}
}}}}
`

	doc := parseWiki(t, source)
	body := doc.Root.Children[0]
	require.Len(t, body.Children, 1)

	elem := body.Children[0]
	require.Equal(t, nowiki.TagNoWiki, elem.Tag)
	assert.Equal(t, "{{{{", elem.Children[0].Text)
	assert.Equal(t, "#!wiki note", elem.Children[1].InnerText())

	content := elem.Children[2].InnerText()
	assert.Contains(t, content, "{{{#!highlight python")
	assert.Contains(t, content, "}}}")
	assert.Contains(t, content, "x = 1")
}

func TestParseDocumentInlineBracesStayInParagraph(t *testing.T) {
	doc := parseWiki(t, "Use {{{code}}} for literals.\n")

	body := doc.Root.Children[0]
	require.Len(t, body.Children, 1)
	assert.Equal(t, nowiki.TagP, body.Children[0].Tag)
	assert.Equal(t, 0, doc.Root.CountTag(nowiki.TagNoWiki))
}

func TestParseDocumentUnterminatedFenceRunsToEnd(t *testing.T) {
	doc := parseWiki(t, "{{{#!csv\na;b\n1;2")

	elem := doc.Root.FirstByTag(nowiki.TagNoWiki)
	require.NotNil(t, elem)
	assert.Equal(t, "a;b\n1;2", elem.Children[2].InnerText())
}

// A wiki raw block whose body holds another raw block is parsed, then the
// inner block is expanded too: one Expand call leaves no placeholder behind.
func TestExpandReachesBlocksInsideWikiBlocks(t *testing.T) {
	source := `= Prices =

{{{{#!wiki solid/red
Quarterly figures:

{{{#!csv
item;price
apple;3
}}}
}}}}
`

	doc := parseWiki(t, source)
	require.Equal(t, 1, doc.Root.CountTag(nowiki.TagNoWiki))

	_, err := nowiki.NewExpander(Default()).Expand(doc.Root)
	require.NoError(t, err)

	assert.Equal(t, 0, doc.Root.CountTag(nowiki.TagNoWiki))

	table := doc.Root.FirstByTag(nowiki.TagTable)
	require.NotNil(t, table)
	assert.Equal(t, "moin-csv-table moin-sortable", table.Attr(nowiki.AttrClass))
	assert.Equal(t, 2, table.CountTag(nowiki.TagTableRow))

	// residual args become a space-separated class on the parsed body
	var foundClass bool
	var walk func(n *nowiki.Node)
	walk = func(n *nowiki.Node) {
		if n.Tag == nowiki.TagBlock && n.Attr(nowiki.AttrClass) == "solid red" {
			foundClass = true
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(doc.Root)
	assert.True(t, foundClass, "wiki body should carry class %q", "solid red")
}
