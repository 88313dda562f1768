package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moinwiki/nowiki"
)

func parseRST(t *testing.T, source string) *nowiki.Node {
	t.Helper()
	page, err := NewRST().Parse(source, nowiki.ContentTypeRST)
	require.NoError(t, err)
	require.Equal(t, nowiki.TagPage, page.Tag)
	require.Len(t, page.Children, 1)
	return page.Children[0]
}

func TestRSTSectionsAndLiteralBlock(t *testing.T) {
	source := `Title
=====

Intro paragraph::

    literal line

- one
- two
`

	body := parseRST(t, source)
	require.Len(t, body.Children, 4)

	h := body.Children[0]
	assert.Equal(t, nowiki.TagHeading, h.Tag)
	assert.Equal(t, "1", h.Attr(nowiki.AttrOutlineLevel))
	assert.Equal(t, "Title", h.InnerText())

	p := body.Children[1]
	assert.Equal(t, nowiki.TagP, p.Tag)
	assert.Equal(t, "Intro paragraph:", p.InnerText())

	code := body.Children[2]
	require.Equal(t, nowiki.TagBlockcode, code.Tag)
	assert.Equal(t, "literal line", code.InnerText())

	assert.Equal(t, 2, body.Children[3].CountTag(nowiki.TagListItem))
}

// Adornment characters map to section levels in order of first use.
func TestRSTSectionLevelsFollowFirstUse(t *testing.T) {
	source := `Top
---

Sub
~~~

Again
-----
`

	body := parseRST(t, source)
	require.Len(t, body.Children, 3)
	assert.Equal(t, "1", body.Children[0].Attr(nowiki.AttrOutlineLevel))
	assert.Equal(t, "2", body.Children[1].Attr(nowiki.AttrOutlineLevel))
	assert.Equal(t, "1", body.Children[2].Attr(nowiki.AttrOutlineLevel))
}

func TestRSTLiteralBlockKeepsRelativeIndent(t *testing.T) {
	source := "code::\n\n    if x:\n        y()\n"

	body := parseRST(t, source)
	code := body.FirstByTag(nowiki.TagBlockcode)
	require.NotNil(t, code)
	assert.Equal(t, "if x:\n    y()", code.InnerText())
}

func TestRSTShortUnderlineIsNotASection(t *testing.T) {
	body := parseRST(t, "A long title\n==\n")

	assert.Equal(t, 0, body.CountTag(nowiki.TagHeading))
	assert.Equal(t, 1, body.CountTag(nowiki.TagP))
}
