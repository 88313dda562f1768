package nowiki

import "strings"

// Tag identifies the kind of a document tree node.
type Tag string

const (
	TagPage        Tag = "page"
	TagBlock       Tag = "div"
	TagP           Tag = "p"
	TagHeading     Tag = "h"
	TagList        Tag = "list"
	TagListItem    Tag = "list-item"
	TagBlockcode   Tag = "blockcode"
	TagCode        Tag = "code"
	TagTable       Tag = "table"
	TagTableHeader Tag = "table-header"
	TagTableBody   Tag = "table-body"
	TagTableRow    Tag = "table-row"
	TagTableCell   Tag = "table-cell"
	TagAdmonition  Tag = "admonition"
	TagBlockquote  Tag = "blockquote"
	TagSeparator   Tag = "separator"
	TagSpan        Tag = "span"
	TagEmphasis    Tag = "emphasis"
	TagStrong      Tag = "strong"

	// TagNoWiki marks an unexpanded {{{#!...}}} raw block awaiting
	// format-specific expansion.
	TagNoWiki Tag = "nowiki"

	// TagText marks a leaf text run. Text nodes carry no attributes
	// or children.
	TagText Tag = "text"
)

// Common attribute keys.
const (
	AttrClass        = "class"
	AttrOutlineLevel = "outline-level"
	AttrLanguage     = "language"
	AttrHref         = "href"
)

// Node is a tagged document tree node. Each node is owned by exactly one
// parent; trees are acyclic.
type Node struct {
	Tag      Tag
	Attrs    map[string]string
	Children []*Node
	// Text holds the text run for TagText leaves and is empty otherwise.
	Text string
}

// NewNode creates an empty element node with the given tag.
func NewNode(tag Tag) *Node {
	return &Node{Tag: tag}
}

// NewText creates a leaf text run.
func NewText(s string) *Node {
	return &Node{Tag: TagText, Text: s}
}

// NewRawBlock builds an unexpanded raw-block placeholder. The three
// children are the fence marker, the raw directive line wrapped in a
// one-element span, and the unparsed body text.
func NewRawBlock(marker, directive, content string) *Node {
	return NewNode(TagNoWiki).Append(
		NewText(marker),
		NewNode(TagSpan).Append(NewText(directive)),
		NewText(content),
	)
}

// SetAttr sets an attribute and returns the node for chaining.
func (n *Node) SetAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Attr returns the attribute value, or "" when unset.
func (n *Node) Attr(key string) string {
	return n.Attrs[key]
}

// Append adds children and returns the node for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// RemoveAll drops all children.
func (n *Node) RemoveAll() {
	n.Children = nil
}

// IsText reports whether the node is a leaf text run.
func (n *Node) IsText() bool {
	return n.Tag == TagText
}

// InnerText concatenates all text runs in the subtree in document order.
func (n *Node) InnerText() string {
	if n.IsText() {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.InnerText())
	}
	return b.String()
}

// CountTag returns the number of nodes in the subtree (including n itself)
// carrying the given tag.
func (n *Node) CountTag(tag Tag) int {
	count := 0
	if n.Tag == tag {
		count++
	}
	for _, c := range n.Children {
		count += c.CountTag(tag)
	}
	return count
}

// FirstByTag returns the first node with the given tag in pre-order, or nil.
func (n *Node) FirstByTag(tag Tag) *Node {
	if n.Tag == tag {
		return n
	}
	for _, c := range n.Children {
		if found := c.FirstByTag(tag); found != nil {
			return found
		}
	}
	return nil
}

// Document pairs a parsed tree with metadata about its source file.
type Document struct {
	// Metadata about the source file
	Metadata MetaData `json:"metadata"`
	// The document tree root
	Root *Node `json:"document"`
}

type MetaData struct {
	// The source file path
	Source string `json:"source"`
}
