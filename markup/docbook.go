package markup

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/moinwiki/nowiki"
)

// DocBook converts a DocBook XML fragment into a document tree via a
// token-stream walk. Block containers, paragraphs, titles, lists and
// program listings are mapped to their tree counterparts; unrecognized
// elements become spans classed with the element name so no content is
// dropped.
type DocBook struct{}

func NewDocBook() *DocBook {
	return &DocBook{}
}

func (p *DocBook) Parse(text string, arg string) (*nowiki.Node, error) {
	page := nowiki.NewNode(nowiki.TagPage)

	dec := xml.NewDecoder(strings.NewReader(text))
	dec.Strict = false

	stack := []*nowiki.Node{page}
	sectionDepth := 0

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("docbook: %w", err)
		}

		top := stack[len(stack)-1]
		switch t := tok.(type) {
		case xml.StartElement:
			if isSectionElement(t.Name.Local) {
				sectionDepth++
			}
			node := p.elementNode(t, sectionDepth)
			top.Append(node)
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) > 1 {
				if isSectionElement(t.Name.Local) {
					sectionDepth--
				}
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			text := string(t)
			// whitespace-only runs between elements carry no content
			if top.Tag == nowiki.TagBlockcode || strings.TrimSpace(text) != "" {
				top.Append(nowiki.NewText(text))
			}
		}
	}

	return page, nil
}

func isSectionElement(name string) bool {
	switch name {
	case "section", "sect1", "sect2", "sect3", "chapter":
		return true
	}
	return false
}

func (p *DocBook) elementNode(t xml.StartElement, sectionDepth int) *nowiki.Node {
	switch t.Name.Local {
	case "para", "simpara":
		return nowiki.NewNode(nowiki.TagP)
	case "title":
		level := sectionDepth
		if level < 1 {
			level = 1
		}
		return nowiki.NewNode(nowiki.TagHeading).
			SetAttr(nowiki.AttrOutlineLevel, strconv.Itoa(level))
	case "section", "sect1", "sect2", "sect3", "chapter", "article":
		return nowiki.NewNode(nowiki.TagBlock).SetAttr(nowiki.AttrClass, t.Name.Local)
	case "programlisting", "screen", "literallayout":
		code := nowiki.NewNode(nowiki.TagBlockcode)
		for _, attr := range t.Attr {
			if attr.Name.Local == "language" {
				code.SetAttr(nowiki.AttrLanguage, attr.Value)
			}
		}
		return code
	case "itemizedlist", "orderedlist":
		list := nowiki.NewNode(nowiki.TagList)
		if t.Name.Local == "orderedlist" {
			list.SetAttr(nowiki.AttrClass, "ordered")
		}
		return list
	case "listitem":
		return nowiki.NewNode(nowiki.TagListItem)
	case "emphasis":
		for _, attr := range t.Attr {
			if attr.Name.Local == "role" && attr.Value == "strong" {
				return nowiki.NewNode(nowiki.TagStrong)
			}
		}
		return nowiki.NewNode(nowiki.TagEmphasis)
	case "code", "literal":
		return nowiki.NewNode(nowiki.TagCode)
	case "blockquote":
		return nowiki.NewNode(nowiki.TagBlockquote)
	default:
		return nowiki.NewNode(nowiki.TagSpan).SetAttr(nowiki.AttrClass, t.Name.Local)
	}
}
