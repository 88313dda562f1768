package markup

import (
	"bytes"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/moinwiki/nowiki"
)

// Markdown converts CommonMark text into a document tree using goldmark's
// parser. Block structure, inline emphasis, code spans and links are
// mapped; anything else contributes its children transparently.
type Markdown struct {
	gm goldmark.Markdown
}

func NewMarkdown() *Markdown {
	return &Markdown{gm: goldmark.New()}
}

func (p *Markdown) Parse(input string, arg string) (*nowiki.Node, error) {
	source := []byte(input)
	root := p.gm.Parser().Parse(text.NewReader(source))

	page := nowiki.NewNode(nowiki.TagPage)
	p.convertChildren(page, root, source)
	return page, nil
}

func (p *Markdown) convertChildren(parent *nowiki.Node, n ast.Node, source []byte) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		p.convert(parent, child, source)
	}
}

func (p *Markdown) convert(parent *nowiki.Node, n ast.Node, source []byte) {
	switch node := n.(type) {
	case *ast.Heading:
		h := nowiki.NewNode(nowiki.TagHeading).
			SetAttr(nowiki.AttrOutlineLevel, strconv.Itoa(node.Level))
		parent.Append(h)
		p.convertChildren(h, node, source)

	case *ast.Paragraph, *ast.TextBlock:
		para := nowiki.NewNode(nowiki.TagP)
		parent.Append(para)
		p.convertChildren(para, n, source)

	case *ast.FencedCodeBlock:
		code := nowiki.NewNode(nowiki.TagBlockcode)
		if lang := node.Language(source); lang != nil {
			code.SetAttr(nowiki.AttrLanguage, string(lang))
		}
		code.Append(nowiki.NewText(blockLines(n, source)))
		parent.Append(code)

	case *ast.CodeBlock:
		parent.Append(nowiki.NewNode(nowiki.TagBlockcode).
			Append(nowiki.NewText(blockLines(n, source))))

	case *ast.List:
		list := nowiki.NewNode(nowiki.TagList)
		if node.IsOrdered() {
			list.SetAttr(nowiki.AttrClass, "ordered")
		}
		parent.Append(list)
		p.convertChildren(list, node, source)

	case *ast.ListItem:
		item := nowiki.NewNode(nowiki.TagListItem)
		parent.Append(item)
		p.convertChildren(item, node, source)

	case *ast.Blockquote:
		quote := nowiki.NewNode(nowiki.TagBlockquote)
		parent.Append(quote)
		p.convertChildren(quote, node, source)

	case *ast.ThematicBreak:
		parent.Append(nowiki.NewNode(nowiki.TagSeparator))

	case *ast.Emphasis:
		tag := nowiki.TagEmphasis
		if node.Level >= 2 {
			tag = nowiki.TagStrong
		}
		em := nowiki.NewNode(tag)
		parent.Append(em)
		p.convertChildren(em, node, source)

	case *ast.CodeSpan:
		code := nowiki.NewNode(nowiki.TagCode)
		parent.Append(code)
		p.convertChildren(code, node, source)

	case *ast.Link:
		link := nowiki.NewNode(nowiki.TagSpan).
			SetAttr(nowiki.AttrClass, "link").
			SetAttr(nowiki.AttrHref, string(node.Destination))
		parent.Append(link)
		p.convertChildren(link, node, source)

	case *ast.AutoLink:
		url := string(node.URL(source))
		parent.Append(nowiki.NewNode(nowiki.TagSpan).
			SetAttr(nowiki.AttrClass, "link").
			SetAttr(nowiki.AttrHref, url).
			Append(nowiki.NewText(url)))

	case *ast.Text:
		parent.Append(nowiki.NewText(string(node.Segment.Value(source))))
		if node.SoftLineBreak() || node.HardLineBreak() {
			parent.Append(nowiki.NewText(" "))
		}

	case *ast.String:
		parent.Append(nowiki.NewText(string(node.Value)))

	default:
		p.convertChildren(parent, n, source)
	}
}

// blockLines joins the source segments of a block-level node.
func blockLines(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}
