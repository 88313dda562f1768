package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moinwiki/nowiki"
)

func TestMediaWikiBlockStructure(t *testing.T) {
	source := `== History ==

Early days.

* first
* second

----
`

	page, err := NewMediaWiki().Parse(source, "")
	require.NoError(t, err)
	require.Equal(t, nowiki.TagPage, page.Tag)
	require.Len(t, page.Children, 1)

	body := page.Children[0]
	require.Equal(t, nowiki.TagBlock, body.Tag)
	require.Len(t, body.Children, 4)

	h := body.Children[0]
	assert.Equal(t, "2", h.Attr(nowiki.AttrOutlineLevel))
	assert.Equal(t, "History", h.InnerText())

	assert.Equal(t, "Early days.", body.Children[1].InnerText())
	assert.Equal(t, 2, body.Children[2].CountTag(nowiki.TagListItem))
	assert.Equal(t, nowiki.TagSeparator, body.Children[3].Tag)
}

func TestMediaWikiOrderedList(t *testing.T) {
	page, err := NewMediaWiki().Parse("# one\n# two\n", "")
	require.NoError(t, err)

	list := page.FirstByTag(nowiki.TagList)
	require.NotNil(t, list)
	assert.Equal(t, "ordered", list.Attr(nowiki.AttrClass))
	require.Len(t, list.Children, 2)
}

func TestMediaWikiArgBecomesBodyClass(t *testing.T) {
	page, err := NewMediaWiki().Parse("text", "sidebar")
	require.NoError(t, err)

	body := page.Children[0]
	assert.Equal(t, "sidebar", body.Attr(nowiki.AttrClass))
}
