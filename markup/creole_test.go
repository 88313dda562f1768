package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moinwiki/nowiki"
)

func parseCreole(t *testing.T, source, args string) *nowiki.Node {
	t.Helper()
	body, err := NewCreole().ParseBlock(nowiki.NewLineCursor(nowiki.NormalizeSplit(source)), args)
	require.NoError(t, err)
	require.Equal(t, nowiki.TagBlock, body.Tag)
	return body
}

func TestCreoleBlockStructure(t *testing.T) {
	source := `== Section

First line
second line.

* one
* two

----

# alpha
# beta
`

	body := parseCreole(t, source, "")
	require.Len(t, body.Children, 5)

	h := body.Children[0]
	assert.Equal(t, nowiki.TagHeading, h.Tag)
	assert.Equal(t, "2", h.Attr(nowiki.AttrOutlineLevel))
	assert.Equal(t, "Section", h.InnerText())

	assert.Equal(t, "First line second line.", body.Children[1].InnerText())

	unordered := body.Children[2]
	require.Equal(t, nowiki.TagList, unordered.Tag)
	assert.Empty(t, unordered.Attr(nowiki.AttrClass))
	require.Len(t, unordered.Children, 2)

	assert.Equal(t, nowiki.TagSeparator, body.Children[3].Tag)

	ordered := body.Children[4]
	require.Equal(t, nowiki.TagList, ordered.Tag)
	assert.Equal(t, "ordered", ordered.Attr(nowiki.AttrClass))
	assert.Equal(t, "alpha", ordered.Children[0].InnerText())
	assert.Equal(t, "beta", ordered.Children[1].InnerText())
}

func TestCreoleArgsBecomeClass(t *testing.T) {
	body := parseCreole(t, "text", "note")
	assert.Equal(t, "note", body.Attr(nowiki.AttrClass))
}

func TestCreoleListBreaksOnMarkerChange(t *testing.T) {
	body := parseCreole(t, "* one\n# two\n", "")

	require.Len(t, body.Children, 2)
	assert.Empty(t, body.Children[0].Attr(nowiki.AttrClass))
	assert.Equal(t, "ordered", body.Children[1].Attr(nowiki.AttrClass))
}
