package nowiki

import "strings"

// ParserID names one of the embedded-language parsers a registry can hold.
type ParserID string

const (
	ParserWiki      ParserID = "wiki"
	ParserCreole    ParserID = "creole"
	ParserRST       ParserID = "rst"
	ParserDocBook   ParserID = "docbook"
	ParserMarkdown  ParserID = "markdown"
	ParserMediaWiki ParserID = "mediawiki"
)

// Content-type tags passed to whole-text parsers.
const (
	ContentTypeRST      = "text/x-rst;charset=utf-8"
	ContentTypeDocBook  = "application/docbook+xml;charset=utf-8"
	ContentTypeMarkdown = "text/x-markdown;charset=utf-8"
)

// BlockParser is a line-oriented embedded-language parser. It consumes
// lines from the cursor and returns the body it parsed. The args string is
// parser-specific; the wiki parser applies it as a CSS class on its
// returned wrapper.
type BlockParser interface {
	ParseBlock(lines *LineCursor, args string) (*Node, error)
}

// TextParser is a whole-text embedded-language parser. It manages its own
// line splitting and returns a page node. The arg string is either a fixed
// content-type tag or a passed-through residual argument, depending on the
// format.
type TextParser interface {
	Parse(text string, arg string) (*Node, error)
}

// Registry holds the sub-parsers an Expander dispatches to. It is built
// once at startup and treated as read-only afterwards.
type Registry struct {
	block map[ParserID]BlockParser
	text  map[ParserID]TextParser
}

func NewRegistry() *Registry {
	return &Registry{
		block: make(map[ParserID]BlockParser),
		text:  make(map[ParserID]TextParser),
	}
}

func (r *Registry) RegisterBlock(id ParserID, p BlockParser) {
	r.block[id] = p
}

func (r *Registry) RegisterText(id ParserID, p TextParser) {
	r.text[id] = p
}

func (r *Registry) blockParser(id ParserID) (BlockParser, bool) {
	p, ok := r.block[id]
	return p, ok
}

func (r *Registry) textParser(id ParserID) (TextParser, bool) {
	p, ok := r.text[id]
	return p, ok
}

// NormalizeSplit normalizes line endings and splits text into lines.
func NormalizeSplit(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// LineCursor is a restartable cursor over a line sequence, handed to
// line-oriented sub-parsers.
type LineCursor struct {
	lines  []string
	pushed []string
}

func NewLineCursor(lines []string) *LineCursor {
	return &LineCursor{lines: lines}
}

// Next returns the next line, consuming it.
func (c *LineCursor) Next() (string, bool) {
	if n := len(c.pushed); n > 0 {
		line := c.pushed[n-1]
		c.pushed = c.pushed[:n-1]
		return line, true
	}
	if len(c.lines) == 0 {
		return "", false
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	return line, true
}

// Peek returns the next line without consuming it.
func (c *LineCursor) Peek() (string, bool) {
	if n := len(c.pushed); n > 0 {
		return c.pushed[n-1], true
	}
	if len(c.lines) == 0 {
		return "", false
	}
	return c.lines[0], true
}

// Push returns a line to the cursor so the next Next sees it again.
func (c *LineCursor) Push(line string) {
	c.pushed = append(c.pushed, line)
}
