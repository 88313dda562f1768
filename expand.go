package nowiki

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultMaxDepth caps traversal depth against pathological nesting from
// sub-parser output.
const DefaultMaxDepth = 512

const defaultInvalidArgsMessage = `Defaulting to plain text due to invalid arguments: "%s"`

// Expander rewrites a document tree in place, replacing every raw-block
// placeholder with highlighted code, a table, a parsed sub-document, or a
// diagnostic plus a plain-text fallback. A single Expander may be reused
// across documents, but each tree must be owned by one Expand call at a
// time.
type Expander struct {
	registry           *Registry
	maxDepth           int
	invalidArgsMessage string
}

type Option func(*Expander)

// WithMaxDepth overrides the defensive traversal depth cap.
func WithMaxDepth(depth int) Option {
	return func(e *Expander) { e.maxDepth = depth }
}

// WithInvalidArgsMessage overrides the diagnostic message template. The
// template receives the raw directive line as its single argument, so hosts
// can substitute a localized version.
func WithInvalidArgsMessage(format string) Option {
	return func(e *Expander) { e.invalidArgsMessage = format }
}

// NewExpander creates an Expander dispatching to the sub-parsers in
// registry. The registry may be nil when only highlight and csv blocks are
// expected; dispatching to an unregistered sub-parser is a terminal error.
func NewExpander(registry *Registry, opts ...Option) *Expander {
	e := &Expander{
		registry:           registry,
		maxDepth:           DefaultMaxDepth,
		invalidArgsMessage: defaultInvalidArgsMessage,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Expand walks the tree depth-first and expands every raw-block placeholder
// it finds, including placeholders introduced by sub-parser output. It
// mutates root in place and returns it for convenience. After a successful
// return no TagNoWiki node remains anywhere in the tree.
//
// Format-resolution failures are absorbed into inline diagnostics; only
// structural violations, missing parser registrations, sub-parser failures
// and depth overflow return an error.
func (e *Expander) Expand(root *Node) (*Node, error) {
	type frame struct {
		node  *Node
		depth int
	}

	// Explicit worklist: children are pushed after a node is expanded, so
	// content spliced in by a sub-parser is traversed as well.
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth > e.maxDepth {
			return nil, fmt.Errorf("nowiki: tree exceeds maximum depth %d", e.maxDepth)
		}

		if f.node.Tag == TagNoWiki {
			if err := e.expandBlock(f.node); err != nil {
				return nil, err
			}
		}

		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Children[i], f.depth + 1})
		}
	}
	return root, nil
}

// expandBlock consumes one placeholder: its children are fully replaced by
// the handler's output and its tag is rewritten so no placeholder survives
// expansion. The node keeps its identity and position in the parent.
func (e *Expander) expandBlock(elem *Node) error {
	if len(elem.Children) < 3 {
		return fmt.Errorf("nowiki: malformed raw block: %d children, want 3", len(elem.Children))
	}

	rawLine := strings.TrimRight(directiveLine(elem.Children[1]), " \t\r\n")
	content := elem.Children[2].InnerText()
	directive := ParseDirective(rawLine)

	slog.Debug("expanding raw block", "directive", rawLine, "format", directive.Name)

	elem.RemoveAll()
	elem.Tag = TagBlock

	switch ResolveFormat(directive.Name) {
	case FormatHighlight:
		lexer, ok := lexerFor(directive.Args)
		if !ok {
			e.reportInvalidArgs(elem, rawLine)
			lexer = plainLexer()
		}
		elem.Append(highlightBlock(content, lexer))

	case FormatCSV:
		sep := DefaultSeparator
		if directive.Args != "" {
			sep = directive.Args
		}
		elem.Append(buildTable(content, sep))

	case FormatWiki:
		// Residual args become a CSS class on the parsed body, with the
		// historical / separator mapped to spaces.
		args := strings.ReplaceAll(directive.Args, "/", " ")
		body, err := e.parseBlockFormat(ParserWiki, content, args)
		if err != nil {
			return err
		}
		elem.Append(NewNode(TagPage).Append(body))

	case FormatCreole:
		body, err := e.parseBlockFormat(ParserCreole, content, directive.Args)
		if err != nil {
			return err
		}
		elem.Append(NewNode(TagPage).Append(body))

	case FormatRST:
		return e.appendTextFormat(elem, ParserRST, content, ContentTypeRST)

	case FormatDocBook:
		return e.appendTextFormat(elem, ParserDocBook, content, ContentTypeDocBook)

	case FormatMarkdown:
		return e.appendTextFormat(elem, ParserMarkdown, content, ContentTypeMarkdown)

	case FormatMediaWiki:
		return e.appendTextFormat(elem, ParserMediaWiki, content, directive.Args)

	default:
		e.reportInvalidArgs(elem, rawLine)
		elem.Append(highlightBlock(content, plainLexer()))
	}
	return nil
}

// directiveLine extracts the raw directive text from a placeholder's second
// child, a one-element sequence holding the line.
func directiveLine(n *Node) string {
	if n.IsText() {
		return n.Text
	}
	if len(n.Children) > 0 {
		return n.Children[0].InnerText()
	}
	return ""
}

// parseBlockFormat invokes a line-oriented sub-parser over the block body.
func (e *Expander) parseBlockFormat(id ParserID, content, args string) (*Node, error) {
	parser, ok := e.parserRegistry().blockParser(id)
	if !ok {
		return nil, fmt.Errorf("nowiki: no %s parser registered", id)
	}
	lines := NewLineCursor(NormalizeSplit(content))
	body, err := parser.ParseBlock(lines, args)
	if err != nil {
		return nil, fmt.Errorf("nowiki: %s parser: %w", id, err)
	}
	return body, nil
}

// appendTextFormat invokes a whole-text sub-parser and splices its page in
// as the sole replacement content.
func (e *Expander) appendTextFormat(elem *Node, id ParserID, content, arg string) error {
	parser, ok := e.parserRegistry().textParser(id)
	if !ok {
		return fmt.Errorf("nowiki: no %s parser registered", id)
	}
	page, err := parser.Parse(content, arg)
	if err != nil {
		return fmt.Errorf("nowiki: %s parser: %w", id, err)
	}
	elem.Append(page)
	return nil
}

func (e *Expander) parserRegistry() *Registry {
	if e.registry == nil {
		return emptyRegistry
	}
	return e.registry
}

var emptyRegistry = NewRegistry()

// reportInvalidArgs appends an inline error admonition so the bad directive
// is visible in the rendered document instead of aborting the render.
func (e *Expander) reportInvalidArgs(elem *Node, rawLine string) {
	slog.Debug("invalid raw block arguments", "directive", rawLine)
	message := fmt.Sprintf(e.invalidArgsMessage, rawLine)
	elem.Append(
		NewNode(TagAdmonition).SetAttr(AttrClass, "error").Append(
			NewNode(TagP).Append(NewText(message)),
		),
	)
}
